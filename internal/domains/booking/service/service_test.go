package service_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"decor/config"
	"decor/infras/geo"
	geoMocks "decor/infras/geo/mocks"
	kafkaMocks "decor/infras/kafka/mocks"
	"decor/infras/otel/mocks"
	"decor/internal/domains/booking/model/dto"
	"decor/internal/domains/booking/service"
	"decor/internal/domains/catalog"
	catalogMocks "decor/internal/domains/catalog/mocks"
	"decor/shared/constant"
	"decor/shared/timezone"
)

func newBookingService(t *testing.T) (service.Booking, *catalogMocks.MockCatalog, *geoMocks.MockLocator) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockLocator := geoMocks.NewMockLocator(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	mockEvents.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.App.Business.WhatsAppPhone = "919250333876"
	cfg.Kafka.EventTopic = "decor.events"

	return service.New(mockCatalog, mockLocator, mockEvents, cfg, mockOtel), mockCatalog, mockLocator
}

func futureDate() string {
	return timezone.Now().AddDate(0, 0, 14).Format(dto.DateLayout)
}

func TestBookingService_Submit_MessageLines(t *testing.T) {
	svc, mockCatalog, _ := newBookingService(t)

	mockCatalog.EXPECT().Snapshot().Return(catalog.Snapshot{
		Services: []catalog.Service{
			{Slug: "birthday", Title: "Birthday Celebrations"},
		},
		Products: []catalog.Product{
			{Slug: "bday-premium", Name: "Premium Theme Setup", Price: 4999},
		},
	})

	date := futureDate()
	lat, lon := 25.3176, 82.9739

	res, err := svc.Submit(context.Background(), dto.CreateBookingRequest{
		Name:      "Priya Kumar",
		Phone:     "9876543210",
		ServiceID: "birthday",
		PackageID: "bday-premium",
		Date:      date,
		Time:      "18:00",
		Address:   "12 Assi Ghat, Varanasi",
		Guests:    40,
		Message:   "Please include a photo corner",
		Latitude:  &lat,
		Longitude: &lon,
	})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)

	wantLines := []string{
		"*New Booking - TheDecoratingVaranasi*",
		"--------------------------------",
		"Name: Priya Kumar",
		"Phone: 9876543210",
		"Email: N/A",
		"Service: Birthday Celebrations",
		"Package: Premium Theme Setup (₹4999)",
		"Date: " + date,
		"Time: 18:00",
		"Venue: 12 Assi Ghat, Varanasi",
		"Guests: 40",
		"Location: https://maps.google.com/?q=25.3176,82.9739",
		"Note: Please include a photo corner",
		"--------------------------------",
		"Source: Website",
	}

	assert.Equal(t, strings.Join(wantLines, "\n"), res.Message)
}

func TestBookingService_Submit_Defaults(t *testing.T) {
	svc, mockCatalog, _ := newBookingService(t)

	mockCatalog.EXPECT().Snapshot().Return(catalog.Snapshot{})

	res, err := svc.Submit(context.Background(), dto.CreateBookingRequest{
		Name:      "Amit Gupta",
		Phone:     "7012345678",
		ServiceID: "inauguration",
		Date:      futureDate(),
		Address:   "Shop 4, Lanka Road",
		Guests:    10,
	})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Contains(t, res.Message, "Email: N/A")
	assert.Contains(t, res.Message, "Time: Flexible")
	assert.Contains(t, res.Message, "Package: Custom / Not Selected")
	assert.Contains(t, res.Message, "Location: Not shared by user")
	assert.Contains(t, res.Message, "Note: None")
	// Unknown service slugs pass through verbatim.
	assert.Contains(t, res.Message, "Service: inauguration")
}

func TestBookingService_Submit_PackageResolution(t *testing.T) {
	tests := []struct {
		name      string
		packageID string
		snapshot  catalog.Snapshot
		wantLine  string
	}{
		{
			name:      "live product wins",
			packageID: "bday-basic",
			snapshot: catalog.Snapshot{
				Products: []catalog.Product{
					{Slug: "bday-basic", Name: "Deluxe Balloon Bliss", Price: 2499},
				},
			},
			wantLine: "Package: Deluxe Balloon Bliss (₹2499)",
		},
		{
			name:      "seed package fallback",
			packageID: "bday-basic",
			snapshot:  catalog.Snapshot{},
			wantLine:  "Package: Basic Balloon Bliss (₹1999)",
		},
		{
			name:      "unknown package",
			packageID: "mystery-package",
			snapshot:  catalog.Snapshot{},
			wantLine:  "Package: Contact for pricing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockCatalog, _ := newBookingService(t)

			mockCatalog.EXPECT().Snapshot().Return(tt.snapshot)

			res, err := svc.Submit(context.Background(), dto.CreateBookingRequest{
				Name:      "Priya Kumar",
				Phone:     "9876543210",
				ServiceID: "birthday",
				PackageID: tt.packageID,
				Date:      futureDate(),
				Address:   "12 Assi Ghat, Varanasi",
				Guests:    25,
			})

			time.Sleep(10 * time.Millisecond)

			assert.NoError(t, err)
			assert.Contains(t, res.Message, tt.wantLine)
		})
	}
}

func TestBookingService_Submit_WhatsAppURL(t *testing.T) {
	svc, mockCatalog, _ := newBookingService(t)

	mockCatalog.EXPECT().Snapshot().Return(catalog.Snapshot{})

	res, err := svc.Submit(context.Background(), dto.CreateBookingRequest{
		Name:      "Priya Kumar",
		Phone:     "9876543210",
		ServiceID: "birthday",
		Date:      futureDate(),
		Address:   "12 Assi Ghat, Varanasi",
		Guests:    25,
	})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/919250333876?text="))

	// Spaces are encoded as %20, never as +, so WhatsApp renders them.
	encoded := strings.TrimPrefix(res.WhatsAppURL, "https://wa.me/919250333876?text=")
	assert.NotContains(t, encoded, "+")
	assert.Contains(t, encoded, "%20")

	decoded, err := url.QueryUnescape(encoded)
	assert.NoError(t, err)
	assert.Equal(t, res.Message, decoded)
}

func TestBookingService_Submit_ValidationError(t *testing.T) {
	svc, _, _ := newBookingService(t)

	_, err := svc.Submit(context.Background(), dto.CreateBookingRequest{
		Name:      "Priya Kumar",
		Phone:     "12345",
		ServiceID: "birthday",
		Date:      futureDate(),
		Address:   "12 Assi Ghat, Varanasi",
		Guests:    25,
	})

	assert.EqualError(t, err, "Please enter a valid 10-digit Indian number")
}

func TestBookingService_Submit_LocationFromClientIP(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(locator *geoMocks.MockLocator)
		wantLine  string
	}{
		{
			name: "geo lookup succeeds",
			setupMock: func(locator *geoMocks.MockLocator) {
				locator.EXPECT().
					Locate(gomock.Any(), "203.0.113.10").
					Return(geo.Location{Latitude: 25.3176, Longitude: 82.9739}, nil)
			},
			wantLine: "Location: https://maps.google.com/?q=25.3176,82.9739",
		},
		{
			name: "geo lookup fails",
			setupMock: func(locator *geoMocks.MockLocator) {
				locator.EXPECT().
					Locate(gomock.Any(), "203.0.113.10").
					Return(geo.Location{}, errors.New("service unavailable"))
			},
			wantLine: "Location: Not shared by user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockCatalog, mockLocator := newBookingService(t)

			mockCatalog.EXPECT().Snapshot().Return(catalog.Snapshot{})
			tt.setupMock(mockLocator)

			ctx := context.WithValue(context.Background(), constant.ContextKeyClientIP, "203.0.113.10")

			res, err := svc.Submit(ctx, dto.CreateBookingRequest{
				Name:      "Priya Kumar",
				Phone:     "9876543210",
				ServiceID: "birthday",
				Date:      futureDate(),
				Address:   "12 Assi Ghat, Varanasi",
				Guests:    25,
			})

			time.Sleep(10 * time.Millisecond)

			assert.NoError(t, err)
			assert.Contains(t, res.Message, tt.wantLine)
		})
	}
}

func TestBookingService_Inquire(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateInquiryRequest
		wantLines []string
		wantErr   string
	}{
		{
			name: "full inquiry",
			req: dto.CreateInquiryRequest{
				Name:         "Rahul Verma",
				Phone:        "8123456789",
				InterestedIn: "Wedding Decorations",
				Message:      "Looking for a mandap setup in December",
			},
			wantLines: []string{
				"New Inquiry from Website:",
				"Name: Rahul Verma",
				"Phone: 8123456789",
				"Interested In: Wedding Decorations",
				"Message: Looking for a mandap setup in December",
			},
		},
		{
			name: "interest defaults to general inquiry",
			req: dto.CreateInquiryRequest{
				Name:    "Rahul Verma",
				Phone:   "8123456789",
				Message: "Do you serve areas outside Varanasi?",
			},
			wantLines: []string{
				"New Inquiry from Website:",
				"Name: Rahul Verma",
				"Phone: 8123456789",
				"Interested In: General Inquiry",
				"Message: Do you serve areas outside Varanasi?",
			},
		},
		{
			name: "invalid inquiry",
			req: dto.CreateInquiryRequest{
				Name:    "Rahul Verma",
				Phone:   "8123456789",
				Message: "short",
			},
			wantErr: "Message must be at least 10 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newBookingService(t)

			res, err := svc.Inquire(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, strings.Join(tt.wantLines, "\n"), res.Message)
			assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/919250333876?text="))
		})
	}
}
