package dto

import (
	"fmt"
	"net/url"

	"decor/internal/domains/testimonial/model"
	"decor/shared"
	gDto "decor/shared/dto"
	gModel "decor/shared/model"
	"decor/shared/timezone"

	"github.com/google/uuid"
)

type CreateTestimonialRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=1000"`
	Image   string `json:"image"   validate:"omitempty,url"`
}

func (c *CreateTestimonialRequest) ToModel(user string) model.Testimonial {
	image := c.Image
	if image == "" {
		image = fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(c.Name))
	}

	return model.Testimonial{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Rating:  c.Rating,
		Comment: c.Comment,
		Image:   image,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type TestimonialResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Image   string `json:"image"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(model model.Testimonial) {
	r.ID = model.ID
	r.Name = model.Name
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, mod := range models {
		r.Testimonials[i].FromModel(mod)
	}
}
