package booking

import (
	"net/http"

	"decor/infras/otel"
	"decor/internal/domains/booking/model/dto"
	"decor/internal/domains/booking/service"
	"decor/shared/constant"
	"decor/shared/validator"
	"decor/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings", handler.CreateBooking)
	router.Post("/inquiries", handler.CreateInquiry)
}

// CreateBooking composes the WhatsApp handoff for a booking request.
// @Summary Submit a booking request
// @Description Validate the booking form and compose the WhatsApp deep link the visitor is redirected to. Nothing is persisted.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} response.Data[dto.HandoffResponse] "Composed WhatsApp handoff"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking handoff composed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CreateInquiry composes the WhatsApp handoff for a contact-form inquiry.
// @Summary Submit an inquiry
// @Description Validate the contact form and compose the WhatsApp deep link the visitor is redirected to. Nothing is persisted.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Create Inquiry Request"
// @Success 200 {object} response.Data[dto.HandoffResponse] "Composed WhatsApp handoff"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [post]
func (handler *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Inquire(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry handoff composed successfully")

	response.WithJSON(w, http.StatusOK, res)
}
