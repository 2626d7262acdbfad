package model

import (
	"decor/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "products"
	EntityName = "product"

	FieldID               = "id"
	FieldSlug             = "slug"
	FieldServiceSlug      = "service_slug"
	FieldName             = "name"
	FieldHeroImage        = "hero_image"
	FieldImages           = "images"
	FieldPrice            = "price"
	FieldOldPrice         = "old_price"
	FieldDiscountPercent  = "discount_percent"
	FieldDiscountText     = "discount_text"
	FieldShortDescription = "short_description"
	FieldFullDescription  = "full_description"
	FieldTags             = "tags"
	FieldStockQty         = "stock_qty"
	FieldRating           = "rating"
	FieldReviewsCount     = "reviews_count"
	FieldCurrency         = "currency"
	FieldAvailability     = "availability"
	FieldDeliveryEstimate = "delivery_estimate"
)

type Product struct {
	ID               string         `db:"id"`
	Slug             string         `db:"slug"`
	ServiceSlug      string         `db:"service_slug"`
	Name             string         `db:"name"`
	HeroImage        string         `db:"hero_image"`
	Images           pq.StringArray `db:"images"`
	Price            int64          `db:"price"`
	OldPrice         int64          `db:"old_price"`
	DiscountPercent  int            `db:"discount_percent"`
	DiscountText     string         `db:"discount_text"`
	ShortDescription string         `db:"short_description"`
	FullDescription  string         `db:"full_description"`
	Tags             pq.StringArray `db:"tags"`
	StockQty         int            `db:"stock_qty"`
	Rating           float64        `db:"rating"`
	ReviewsCount     int            `db:"reviews_count"`
	Currency         string         `db:"currency"`
	Availability     string         `db:"availability"`
	DeliveryEstimate string         `db:"delivery_estimate"`
	model.Metadata
}
