package dto

import (
	"fmt"
	"math"
	"mime/multipart"

	"decor/internal/domains/product/model"
	"decor/shared"
	gDto "decor/shared/dto"
	gModel "decor/shared/model"
	"decor/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ComputeDiscount derives the discount percentage from the previous and
// current price. It only applies when the product got cheaper.
func ComputeDiscount(oldPrice, price int64) (percent int, text string) {
	if oldPrice <= 0 || oldPrice <= price {
		return 0, ""
	}

	percent = int(math.Round(float64(oldPrice-price) * 100 / float64(oldPrice)))
	text = fmt.Sprintf("%d%% OFF", percent)

	return percent, text
}

type UpsertProductRequest struct {
	Name             string   `db:"name"              json:"name"              validate:"omitempty,max=150"`
	HeroImage        string   `db:"hero_image"        json:"hero_image"        validate:"omitempty,url"`
	Images           []string `json:"images"          validate:"omitempty,dive,url"`
	Price            int64    `db:"price"             json:"price"             validate:"omitempty,min=0"`
	OldPrice         int64    `db:"old_price"         json:"old_price"         validate:"omitempty,min=0"`
	ShortDescription string   `db:"short_description" json:"short_description" validate:"omitempty,max=300"`
	FullDescription  string   `db:"full_description"  json:"full_description"  validate:"omitempty,max=5000"`
	Tags             []string `json:"tags"            validate:"omitempty,dive,max=50"`
	StockQty         *int     `db:"stock_qty"         json:"stock_qty"         validate:"omitempty,min=0"`
	Rating           float64  `db:"rating"            json:"rating"            validate:"omitempty,min=0,max=5"`
	ReviewsCount     *int     `db:"reviews_count"     json:"reviews_count"     validate:"omitempty,min=0"`
	Currency         string   `db:"currency"          json:"currency"          validate:"omitempty,len=3"`
	Availability     string   `db:"availability"      json:"availability"      validate:"omitempty,max=50"`
	DeliveryEstimate string   `db:"delivery_estimate" json:"delivery_estimate" validate:"omitempty,max=50"`
}

func (c *UpsertProductRequest) ToModel(serviceSlug, slug, user, defaultCurrency, defaultDelivery string) model.Product {
	name := c.Name
	if name == "" {
		name = slug
	}

	currency := c.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	availability := c.Availability
	if availability == "" {
		availability = "available"
	}

	delivery := c.DeliveryEstimate
	if delivery == "" {
		delivery = defaultDelivery
	}

	rating := c.Rating
	if rating == 0 {
		rating = 5
	}

	stockQty := 0
	if c.StockQty != nil {
		stockQty = *c.StockQty
	}

	reviewsCount := 0
	if c.ReviewsCount != nil {
		reviewsCount = *c.ReviewsCount
	}

	percent, text := ComputeDiscount(c.OldPrice, c.Price)

	return model.Product{
		ID:               uuid.NewString(),
		Slug:             slug,
		ServiceSlug:      serviceSlug,
		Name:             name,
		HeroImage:        c.HeroImage,
		Images:           pq.StringArray(c.Images),
		Price:            c.Price,
		OldPrice:         c.OldPrice,
		DiscountPercent:  percent,
		DiscountText:     text,
		ShortDescription: c.ShortDescription,
		FullDescription:  c.FullDescription,
		Tags:             pq.StringArray(c.Tags),
		StockQty:         stockQty,
		Rating:           rating,
		ReviewsCount:     reviewsCount,
		Currency:         currency,
		Availability:     availability,
		DeliveryEstimate: delivery,
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

type ProductResponse struct {
	ID               string   `json:"id"`
	Slug             string   `json:"slug"`
	ServiceSlug      string   `json:"service_slug"`
	Name             string   `json:"name"`
	HeroImage        string   `json:"hero_image"`
	Images           []string `json:"images"`
	Price            int64    `json:"price"`
	OldPrice         int64    `json:"old_price"`
	DiscountPercent  int      `json:"discount_percent"`
	DiscountText     string   `json:"discount_text"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	Tags             []string `json:"tags"`
	StockQty         int      `json:"stock_qty"`
	Rating           float64  `json:"rating"`
	ReviewsCount     int      `json:"reviews_count"`
	Currency         string   `json:"currency"`
	Availability     string   `json:"availability"`
	DeliveryEstimate string   `json:"delivery_estimate"`
	gDto.Metadata
}

func (r *ProductResponse) FromModel(model model.Product) {
	r.ID = model.ID
	r.Slug = model.Slug
	r.ServiceSlug = model.ServiceSlug
	r.Name = model.Name
	r.HeroImage = model.HeroImage
	r.Price = model.Price
	r.OldPrice = model.OldPrice
	r.DiscountPercent = model.DiscountPercent
	r.DiscountText = model.DiscountText
	r.ShortDescription = model.ShortDescription
	r.FullDescription = model.FullDescription
	r.StockQty = model.StockQty
	r.Rating = model.Rating
	r.ReviewsCount = model.ReviewsCount
	r.Currency = model.Currency
	r.Availability = model.Availability
	r.DeliveryEstimate = model.DeliveryEstimate

	r.Images = model.Images
	if r.Images == nil {
		r.Images = []string{}
	}

	r.Tags = model.Tags
	if r.Tags == nil {
		r.Tags = []string{}
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProductsResponse) FromModels(models []model.Product, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Products = make([]ProductResponse, len(models))
	for i, mod := range models {
		r.Products[i].FromModel(mod)
	}
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
