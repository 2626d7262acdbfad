package catalog

import (
	momentModel "decor/internal/domains/moment/model"
	productModel "decor/internal/domains/product/model"
	serviceModel "decor/internal/domains/service/model"
	testimonialModel "decor/internal/domains/testimonial/model"
)

// Normalization maps stored rows onto the canonical catalog shapes. Rows can
// predate newer columns, so every field gets an explicit default here rather
// than leaking zero values to consumers.

func NormalizeService(row serviceModel.Service) Service {
	title := row.Title
	if title == "" {
		title = row.Slug
	}

	features := []string(row.Features)
	if features == nil {
		features = []string{}
	}

	return Service{
		ID:          row.ID,
		Slug:        row.Slug,
		Title:       title,
		Description: row.Description,
		Image:       row.Image,
		PriceStart:  row.PriceStart,
		Features:    features,
	}
}

func NormalizeProduct(row productModel.Product, defaultCurrency, defaultDelivery string) Product {
	name := row.Name
	if name == "" {
		name = row.Slug
	}

	images := []string(row.Images)
	if images == nil {
		images = []string{}
	}

	heroImage := row.HeroImage
	if heroImage == "" && len(images) > 0 {
		heroImage = images[0]
	}

	tags := []string(row.Tags)
	if tags == nil {
		tags = []string{}
	}

	rating := row.Rating
	if rating <= 0 {
		rating = 5
	}

	currency := row.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	availability := row.Availability
	if availability == "" {
		availability = "available"
	}

	delivery := row.DeliveryEstimate
	if delivery == "" {
		delivery = defaultDelivery
	}

	return Product{
		ID:               row.ID,
		Slug:             row.Slug,
		ServiceSlug:      row.ServiceSlug,
		Name:             name,
		HeroImage:        heroImage,
		Images:           images,
		Price:            row.Price,
		OldPrice:         row.OldPrice,
		DiscountPercent:  row.DiscountPercent,
		DiscountText:     row.DiscountText,
		ShortDescription: row.ShortDescription,
		FullDescription:  row.FullDescription,
		Tags:             tags,
		StockQty:         row.StockQty,
		Rating:           rating,
		ReviewsCount:     row.ReviewsCount,
		Currency:         currency,
		Availability:     availability,
		DeliveryEstimate: delivery,
	}
}

func NormalizeTestimonial(row testimonialModel.Testimonial) Testimonial {
	rating := row.Rating
	if rating < 1 {
		rating = 5
	}

	if rating > 5 {
		rating = 5
	}

	return Testimonial{
		ID:      row.ID,
		Name:    row.Name,
		Rating:  rating,
		Comment: row.Comment,
		Image:   row.Image,
	}
}

func NormalizeMoment(row momentModel.Moment) Moment {
	momentType := row.Type
	if momentType == "" {
		momentType = momentModel.DefaultType
	}

	return Moment{
		ID:        row.ID,
		Name:      row.Name,
		Type:      momentType,
		Image:     row.Image,
		Timestamp: row.CreatedAt,
	}
}
