package dto

import (
	"mime/multipart"

	"decor/internal/domains/moment/model"
	"decor/shared"
	gDto "decor/shared/dto"
	gModel "decor/shared/model"
	"decor/shared/timezone"

	"github.com/google/uuid"
)

type CreateMomentRequest struct {
	Name      string                `json:"name"      validate:"required,max=150"`
	Type      string                `json:"type"      validate:"omitempty,max=50"`
	ImageURL  string                `json:"image_url" validate:"omitempty,url"`
	Image     *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

func (c *CreateMomentRequest) ToModel(user, imageURL string) model.Moment {
	momentType := c.Type
	if momentType == "" {
		momentType = model.DefaultType
	}

	return model.Moment{
		ID:    uuid.NewString(),
		Name:  c.Name,
		Type:  momentType,
		Image: imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type MomentResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Image string `json:"image"`
	gDto.Metadata
}

func (r *MomentResponse) FromModel(model model.Moment) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetMomentsResponse struct {
	Moments   []MomentResponse `json:"moments"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetMomentsResponse) FromModels(models []model.Moment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Moments = make([]MomentResponse, len(models))
	for i, mod := range models {
		r.Moments[i].FromModel(mod)
	}
}
