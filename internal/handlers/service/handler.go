package service

import (
	"net/http"

	"decor/infras/otel"
	"decor/internal/domains/service/model"
	"decor/internal/domains/service/model/dto"
	"decor/internal/domains/service/service"
	"decor/shared/constant"
	gDto "decor/shared/dto"
	"decor/shared/validator"
	"decor/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Service
	otel    otel.Otel
}

func New(service service.Service, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Routes are registered path by path because the product handler shares the
// /services subtree.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/services", handler.GetServices)
	router.Get("/services/{slug}", handler.GetServiceBySlug)
	router.Put("/services/{slug}", handler.UpsertService)
	router.Post("/services/{slug}/image", handler.UploadHeroImage)
}

// GetServices retrieves all services.
// @Summary Get all services
// @Description Retrieve all decoration services with optional filtering and pagination.
// @Tags Service
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Success 200 {object} response.Data[dto.GetServicesResponse] "List of services"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if title := r.URL.Query().Get(model.FieldTitle); title != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	services, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Services retrieved successfully")

	response.WithJSON(w, http.StatusOK, services)
}

// GetServiceBySlug retrieves a service by its slug.
// @Summary Get a service by slug
// @Description Retrieve a decoration service by its slug.
// @Tags Service
// @Accept json
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} response.Data[dto.ServiceResponse] "Service details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{slug} [get]
func (handler *Handler) GetServiceBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	svc, err := handler.service.Get(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service retrieved successfully")

	response.WithJSON(w, http.StatusOK, svc)
}

// UpsertService creates or updates a service identified by slug.
// @Summary Upsert a service
// @Description Create or merge a decoration service. The slug in the path is the identity and never changes.
// @Tags Service
// @Accept json
// @Produce json
// @Param slug path string true "Service slug"
// @Param request body dto.UpsertServiceRequest true "Upsert Service Request"
// @Success 200 {object} response.Message "Service saved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{slug} [put]
// @Security BearerAuth
func (handler *Handler) UpsertService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertService")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	req := dto.UpsertServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Upsert(ctx, req, slug); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service saved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service saved successfully")
}

// UploadHeroImage uploads the hero image of a service.
// @Summary Upload a service hero image
// @Description Upload the hero image for a service. The row is only updated once the object is stored.
// @Tags Service
// @Accept multipart/form-data
// @Produce json
// @Param slug path string true "Service slug"
// @Param file formData file true "Image file to upload"
// @Success 200 {object} response.Data[dto.UploadImageResponse] "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{slug}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadHeroImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadHeroImage")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadHeroImage(ctx, req, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload hero image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service hero image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
