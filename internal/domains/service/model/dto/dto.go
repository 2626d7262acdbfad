package dto

import (
	"mime/multipart"
	"regexp"
	"strings"

	"decor/internal/domains/service/model"
	"decor/shared"
	gDto "decor/shared/dto"
	gModel "decor/shared/model"
	"decor/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)

// Slugify normalizes a free-form identifier into a lowercase hyphenated slug.
func Slugify(raw string) string {
	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = strings.Trim(slug, "-")

	return slug
}

type UpsertServiceRequest struct {
	Title       string   `db:"title"       json:"title"       validate:"omitempty,max=100"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=2000"`
	Image       string   `db:"image"       json:"image"       validate:"omitempty,url"`
	PriceStart  int64    `db:"price_start" json:"price_start" validate:"omitempty,min=0"`
	Features    []string `json:"features"  validate:"omitempty,dive,max=100"`
}

func (c *UpsertServiceRequest) ToModel(slug, user string) model.Service {
	title := c.Title
	if title == "" {
		title = slug
	}

	return model.Service{
		ID:          uuid.NewString(),
		Slug:        slug,
		Title:       title,
		Description: c.Description,
		Image:       c.Image,
		PriceStart:  c.PriceStart,
		Features:    pq.StringArray(c.Features),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type ServiceResponse struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	PriceStart  int64    `json:"price_start"`
	Features    []string `json:"features"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Slug = model.Slug
	r.Title = model.Title
	r.Description = model.Description
	r.Image = model.Image
	r.PriceStart = model.PriceStart

	r.Features = model.Features
	if r.Features == nil {
		r.Features = []string{}
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
