package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"decor/internal/domains/catalog"
	momentModel "decor/internal/domains/moment/model"
	productModel "decor/internal/domains/product/model"
	serviceModel "decor/internal/domains/service/model"
	testimonialModel "decor/internal/domains/testimonial/model"
	gModel "decor/shared/model"
	"decor/shared/timezone"
)

func TestNormalizeService(t *testing.T) {
	t.Run("fills missing title and features", func(t *testing.T) {
		got := catalog.NormalizeService(serviceModel.Service{
			ID:   "id-1",
			Slug: "baby-shower",
		})

		assert.Equal(t, "baby-shower", got.Title)
		assert.NotNil(t, got.Features)
		assert.Empty(t, got.Features)
	})

	t.Run("keeps populated fields", func(t *testing.T) {
		got := catalog.NormalizeService(serviceModel.Service{
			ID:          "id-1",
			Slug:        "wedding",
			Title:       "Wedding Decorations",
			Description: "Elegant stages",
			Image:       "https://example.com/w.jpg",
			PriceStart:  15000,
			Features:    []string{"Floral Mandap"},
		})

		assert.Equal(t, "Wedding Decorations", got.Title)
		assert.Equal(t, int64(15000), got.PriceStart)
		assert.Equal(t, []string{"Floral Mandap"}, got.Features)
	})
}

func TestNormalizeProduct(t *testing.T) {
	t.Run("applies all defaults", func(t *testing.T) {
		got := catalog.NormalizeProduct(productModel.Product{
			ID:          "p-1",
			Slug:        "bday-basic",
			ServiceSlug: "birthday",
		}, "INR", "24-48 hours")

		assert.Equal(t, "bday-basic", got.Name)
		assert.NotNil(t, got.Images)
		assert.NotNil(t, got.Tags)
		assert.Equal(t, float64(5), got.Rating)
		assert.Equal(t, "INR", got.Currency)
		assert.Equal(t, "available", got.Availability)
		assert.Equal(t, "24-48 hours", got.DeliveryEstimate)
	})

	t.Run("hero image falls back to first image", func(t *testing.T) {
		got := catalog.NormalizeProduct(productModel.Product{
			Slug:   "bday-basic",
			Images: []string{"https://example.com/a.jpg", "https://example.com/b.jpg"},
		}, "INR", "24-48 hours")

		assert.Equal(t, "https://example.com/a.jpg", got.HeroImage)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		got := catalog.NormalizeProduct(productModel.Product{
			Slug:             "wed-royal",
			Name:             "Royal Floral Stage",
			HeroImage:        "https://example.com/hero.jpg",
			Rating:           4.5,
			Currency:         "USD",
			Availability:     "out_of_stock",
			DeliveryEstimate: "1 week",
		}, "INR", "24-48 hours")

		assert.Equal(t, "Royal Floral Stage", got.Name)
		assert.Equal(t, "https://example.com/hero.jpg", got.HeroImage)
		assert.Equal(t, 4.5, got.Rating)
		assert.Equal(t, "USD", got.Currency)
		assert.Equal(t, "out_of_stock", got.Availability)
		assert.Equal(t, "1 week", got.DeliveryEstimate)
	})
}

func TestNormalizeTestimonial(t *testing.T) {
	tests := []struct {
		name       string
		rating     int
		wantRating int
	}{
		{name: "zero rating defaults to five", rating: 0, wantRating: 5},
		{name: "negative rating defaults to five", rating: -2, wantRating: 5},
		{name: "overflow clamps to five", rating: 9, wantRating: 5},
		{name: "valid rating survives", rating: 4, wantRating: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.NormalizeTestimonial(testimonialModel.Testimonial{
				ID:     "t-1",
				Name:   "Priya Singh",
				Rating: tt.rating,
			})

			assert.Equal(t, tt.wantRating, got.Rating)
		})
	}
}

func TestNormalizeMoment(t *testing.T) {
	now := timezone.Now()

	got := catalog.NormalizeMoment(momentModel.Moment{
		ID:    "m-1",
		Name:  "Haldi ceremony",
		Image: "https://example.com/m.jpg",
		Metadata: gModel.Metadata{
			CreatedAt: now,
		},
	})

	assert.Equal(t, momentModel.DefaultType, got.Type)
	assert.Equal(t, now, got.Timestamp)

	typed := catalog.NormalizeMoment(momentModel.Moment{Type: "Wedding"})
	assert.Equal(t, "Wedding", typed.Type)
}

func TestSnapshotFind(t *testing.T) {
	snapshot := catalog.Snapshot{
		Services: []catalog.Service{{Slug: "birthday", Title: "Birthday Celebrations"}},
		Products: []catalog.Product{{Slug: "bday-basic", Name: "Basic Balloon Bliss"}},
	}

	svc, ok := snapshot.FindService("birthday")
	assert.True(t, ok)
	assert.Equal(t, "Birthday Celebrations", svc.Title)

	_, ok = snapshot.FindService("unknown")
	assert.False(t, ok)

	product, ok := snapshot.FindProduct("bday-basic")
	assert.True(t, ok)
	assert.Equal(t, "Basic Balloon Bliss", product.Name)

	_, ok = snapshot.FindProduct("unknown")
	assert.False(t, ok)
}
