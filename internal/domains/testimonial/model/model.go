package model

import "decor/shared/model"

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID      = "id"
	FieldName    = "name"
	FieldRating  = "rating"
	FieldComment = "comment"
	FieldImage   = "image"
)

type Testimonial struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Rating  int    `db:"rating"`
	Comment string `db:"comment"`
	Image   string `db:"image"`
	model.Metadata
}
