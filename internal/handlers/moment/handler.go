package moment

import (
	"net/http"

	"decor/infras/otel"
	"decor/internal/domains/moment/model"
	"decor/internal/domains/moment/model/dto"
	"decor/internal/domains/moment/service"
	"decor/shared/constant"
	gDto "decor/shared/dto"
	"decor/shared/validator"
	"decor/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Moment
	otel    otel.Otel
}

func New(service service.Moment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/moments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMoment)
		routerGroup.Get("/", handler.GetMoments)
		routerGroup.Delete("/{id}", handler.DeleteMoment)
	})
}

// CreateMoment handles the creation of a new gallery moment.
// @Summary Create a new moment
// @Description Create a gallery moment from an uploaded file or an external image URL.
// @Tags Moment
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Moment name"
// @Param type formData string false "Moment type"
// @Param image_url formData string false "External image URL"
// @Param file formData file false "Image file to upload"
// @Success 201 {object} response.Message "Moment created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/moments [post]
// @Security BearerAuth
func (handler *Handler) CreateMoment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMoment")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	req := dto.CreateMomentRequest{
		Name:     r.FormValue("name"),
		Type:     r.FormValue("type"),
		ImageURL: r.FormValue("image_url"),
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create moment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Moment created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Moment created successfully")
}

// GetMoments retrieves all gallery moments.
// @Summary Get all moments
// @Description Retrieve all gallery moments with optional filtering and pagination.
// @Tags Moment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by type"
// @Success 200 {object} response.Data[dto.GetMomentsResponse] "List of moments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/moments [get]
func (handler *Handler) GetMoments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMoments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if momentType := r.URL.Query().Get(model.FieldType); momentType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    momentType,
			Table:    model.TableName,
		})
	}

	moments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get moments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Moments retrieved successfully")

	response.WithJSON(w, http.StatusOK, moments)
}

// DeleteMoment deletes a moment by its ID.
// @Summary Delete a moment by ID
// @Description Delete a gallery moment using its unique identifier.
// @Tags Moment
// @Accept json
// @Produce json
// @Param id path string true "Moment ID"
// @Success 200 {object} response.Message "Moment deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/moments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMoment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMoment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete moment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Moment deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Moment deleted successfully")
}
