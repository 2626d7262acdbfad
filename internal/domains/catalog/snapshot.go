package catalog

import "time"

// Service is the canonical catalog entry for a decoration service category.
type Service struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	PriceStart  int64    `json:"price_start"`
	Features    []string `json:"features"`
}

// Product is the canonical catalog entry for a bookable decoration package.
type Product struct {
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
}

// Testimonial is the canonical catalog entry for a customer review.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Image   string `json:"image"`
}

// Moment is the canonical catalog entry for a gallery photo.
type Moment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Image     string    `json:"image"`
	Timestamp time.Time `json:"timestamp"`
}

// Package is a static fallback offering. Packages are never stored; they only
// exist as seed data for installs that have not populated products yet.
type Package struct {
	ID          string   `json:"id"`
	ServiceSlug string   `json:"service_slug"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Image       string   `json:"image"`
	Includes    []string `json:"includes"`
}

// Snapshot is an immutable view over every catalog collection. Consumers get
// their own copy of the slice headers so a refresh never mutates a snapshot
// already handed out.
type Snapshot struct {
	Services     []Service     `json:"services"`
	Products     []Product     `json:"products"`
	Testimonials []Testimonial `json:"testimonials"`
	Moments      []Moment      `json:"moments"`
}

// SnapshotResponse is the wire shape of the aggregated catalog. The loading
// flag tells clients a refresh is in flight so they can retry for fresher data.
type SnapshotResponse struct {
	Loading bool `json:"loading"`
	Snapshot
}

// FindService looks a service up by slug.
func (s Snapshot) FindService(slug string) (Service, bool) {
	for _, svc := range s.Services {
		if svc.Slug == slug {
			return svc, true
		}
	}

	return Service{}, false
}

// FindProduct looks a product up by its slug.
func (s Snapshot) FindProduct(slug string) (Product, bool) {
	for _, product := range s.Products {
		if product.Slug == slug {
			return product, true
		}
	}

	return Product{}, false
}
