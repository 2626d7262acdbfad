package model

import (
	"decor/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldSlug        = "slug"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldPriceStart  = "price_start"
	FieldFeatures    = "features"
)

type Service struct {
	ID          string         `db:"id"`
	Slug        string         `db:"slug"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Image       string         `db:"image"`
	PriceStart  int64          `db:"price_start"`
	Features    pq.StringArray `db:"features"`
	model.Metadata
}
