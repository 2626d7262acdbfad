package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"decor/config"
	"decor/infras/geo"
	"decor/infras/kafka"
	"decor/infras/otel"
	"decor/internal/domains/booking/model/dto"
	"decor/internal/domains/catalog"
	"decor/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	messageSeparator    = "--------------------------------"
	locationNotShared   = "Not shared by user"
	packageNotSelected  = "Custom / Not Selected"
	packageContactPrice = "Contact for pricing"

	eventBookingSubmitted = "booking.submitted"
	eventInquirySubmitted = "inquiry.submitted"
)

// Booking composes WhatsApp handoff messages. It never writes to the catalog
// store: the only side effect is the event published for the back office.
type Booking interface {
	Submit(ctx context.Context, req dto.CreateBookingRequest) (dto.HandoffResponse, error)
	Inquire(ctx context.Context, req dto.CreateInquiryRequest) (dto.HandoffResponse, error)
}

type serviceImpl struct {
	catalog catalog.Catalog
	locator geo.Locator
	events  kafka.Client
	cfg     *config.Config
	otel    otel.Otel
}

func New(cat catalog.Catalog, locator geo.Locator, events kafka.Client, cfg *config.Config, otl otel.Otel) Booking {
	return &serviceImpl{
		catalog: cat,
		locator: locator,
		events:  events,
		cfg:     cfg,
		otel:    otl,
	}
}

// Submit validates the booking form, resolves the selected item against the
// current catalog snapshot, and returns the composed WhatsApp deep link.
func (s *serviceImpl) Submit(ctx context.Context, req dto.CreateBookingRequest) (res dto.HandoffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = req.Validate(); err != nil {
		return res, err // nolint:wrapcheck
	}

	snapshot := s.catalog.Snapshot()

	serviceTitle := req.ServiceID
	if svc, ok := snapshot.FindService(req.ServiceID); ok {
		serviceTitle = svc.Title
	}

	packageLine := s.resolvePackage(snapshot, req.PackageID)
	locationLine := s.resolveLocation(ctx, req)

	email := req.Email
	if email == "" {
		email = "N/A"
	}

	eventTime := req.Time
	if eventTime == "" {
		eventTime = "Flexible"
	}

	note := strings.TrimSpace(req.Message)
	if note == "" {
		note = "None"
	}

	lines := []string{
		"*New Booking - TheDecoratingVaranasi*",
		messageSeparator,
		"Name: " + req.Name,
		"Phone: " + req.Phone,
		"Email: " + email,
		"Service: " + serviceTitle,
		"Package: " + packageLine,
		"Date: " + req.Date,
		"Time: " + eventTime,
		"Venue: " + req.Address,
		fmt.Sprintf("Guests: %d", req.Guests),
		"Location: " + locationLine,
		"Note: " + note,
		messageSeparator,
		"Source: Website",
	}

	res.Message = strings.Join(lines, "\n")
	res.WhatsAppURL = s.whatsAppURL(res.Message)

	s.publish(ctx, eventBookingSubmitted, map[string]string{
		"name":    req.Name,
		"phone":   req.Phone,
		"service": req.ServiceID,
		"package": req.PackageID,
		"date":    req.Date,
	})

	return res, nil
}

// Inquire composes the lightweight contact-form handoff.
func (s *serviceImpl) Inquire(ctx context.Context, req dto.CreateInquiryRequest) (res dto.HandoffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inquire")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = req.Validate(); err != nil {
		return res, err // nolint:wrapcheck
	}

	interestedIn := req.InterestedIn
	if interestedIn == "" {
		interestedIn = "General Inquiry"
	}

	lines := []string{
		"New Inquiry from Website:",
		"Name: " + req.Name,
		"Phone: " + req.Phone,
		"Interested In: " + interestedIn,
		"Message: " + req.Message,
	}

	res.Message = strings.Join(lines, "\n")
	res.WhatsAppURL = s.whatsAppURL(res.Message)

	s.publish(ctx, eventInquirySubmitted, map[string]string{
		"name":          req.Name,
		"phone":         req.Phone,
		"interested_in": interestedIn,
	})

	return res, nil
}

// resolvePackage resolves the selected item: live products win, then the
// static seed packages, then a generic contact-for-pricing line.
func (s *serviceImpl) resolvePackage(snapshot catalog.Snapshot, packageID string) string {
	if packageID == "" {
		return packageNotSelected
	}

	if product, ok := snapshot.FindProduct(packageID); ok {
		return fmt.Sprintf("%s (₹%d)", product.Name, product.Price)
	}

	for _, pkg := range catalog.SeedPackages() {
		if pkg.ID == packageID {
			return fmt.Sprintf("%s (₹%d)", pkg.Name, pkg.Price)
		}
	}

	return packageContactPrice
}

// resolveLocation prefers coordinates shared by the browser; otherwise it
// asks the geo service for a best-effort lookup of the client address. Any
// failure degrades to a placeholder, never an error.
func (s *serviceImpl) resolveLocation(ctx context.Context, req dto.CreateBookingRequest) string {
	if req.Latitude != nil && req.Longitude != nil {
		return geo.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}.MapsURL()
	}

	clientIP, _ := ctx.Value(constant.ContextKeyClientIP).(string)
	if clientIP == "" {
		return locationNotShared
	}

	loc, err := s.locator.Locate(ctx, clientIP)
	if err != nil {
		log.Warn().Err(err).Msg("location lookup failed, continuing without it")

		return locationNotShared
	}

	return loc.MapsURL()
}

// whatsAppURL percent-encodes the message the way encodeURIComponent does so
// spaces survive the wa.me round trip.
func (s *serviceImpl) whatsAppURL(message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return fmt.Sprintf("https://wa.me/%s?text=%s", s.cfg.App.Business.WhatsAppPhone, encoded)
}

func (s *serviceImpl) publish(ctx context.Context, event string, payload map[string]string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.events.SendMessages(c, s.cfg.Kafka.EventTopic, kafka.Message{
			Key:   event,
			Value: payload,
		}); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish handoff event")
		}
	}()
}
