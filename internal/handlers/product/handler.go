package product

import (
	"net/http"

	"decor/infras/otel"
	"decor/internal/domains/product/model"
	"decor/internal/domains/product/model/dto"
	"decor/internal/domains/product/service"
	"decor/shared/constant"
	gDto "decor/shared/dto"
	"decor/shared/validator"
	"decor/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Product
	otel    otel.Otel
}

func New(service service.Product, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/services/{slug}/items", handler.GetProducts)
	router.Get("/services/{slug}/items/{itemSlug}", handler.GetProductBySlug)
	router.Put("/services/{slug}/items/{itemSlug}", handler.UpsertProduct)
	router.Post("/services/{slug}/items/{itemSlug}/image", handler.UploadImage)
}

// GetProducts retrieves all products of a service.
// @Summary Get the products of a service
// @Description Retrieve all bookable packages under a service.
// @Tags Product
// @Accept json
// @Produce json
// @Param slug path string true "Service slug"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetProductsResponse] "List of products"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{slug}/items [get]
func (handler *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProducts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	serviceSlug := chi.URLParam(r, constant.RequestParamSlug)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    serviceSlug,
				Table:    model.TableName,
			},
		},
	}

	products, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get products")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Products retrieved successfully")

	response.WithJSON(w, http.StatusOK, products)
}

// GetProductBySlug retrieves a product by its slug.
// @Summary Get a product by slug
// @Description Retrieve a bookable package by its service and item slug.
// @Tags Product
// @Accept json
// @Produce json
// @Param slug path string true "Service slug"
// @Param itemSlug path string true "Item slug"
// @Success 200 {object} response.Data[dto.ProductResponse] "Product details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{slug}/items/{itemSlug} [get]
func (handler *Handler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProductBySlug")
	defer scope.End()

	serviceSlug := chi.URLParam(r, constant.RequestParamSlug)
	itemSlug := chi.URLParam(r, constant.RequestParamItemSlug)

	product, err := handler.service.Get(ctx, serviceSlug, itemSlug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get product by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Product retrieved successfully")

	response.WithJSON(w, http.StatusOK, product)
}

// UpsertProduct creates or updates a product under a service.
// @Summary Upsert a product
// @Description Create or merge a bookable package under a service. The discount is recomputed from the effective prices on every write.
// @Tags Product
// @Accept json
// @Produce json
// @Param slug path string true "Service slug"
// @Param itemSlug path string true "Item slug"
// @Param request body dto.UpsertProductRequest true "Upsert Product Request"
// @Success 200 {object} response.Message "Product saved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{slug}/items/{itemSlug} [put]
// @Security BearerAuth
func (handler *Handler) UpsertProduct(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertProduct")
	defer scope.End()

	serviceSlug := chi.URLParam(r, constant.RequestParamSlug)
	itemSlug := chi.URLParam(r, constant.RequestParamItemSlug)

	req := dto.UpsertProductRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Upsert(ctx, req, serviceSlug, itemSlug); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert product")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Product saved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Product saved successfully")
}

// UploadImage uploads the image of a product.
// @Summary Upload a product image
// @Description Upload the hero image for a product. The row is only updated once the object is stored.
// @Tags Product
// @Accept multipart/form-data
// @Produce json
// @Param slug path string true "Service slug"
// @Param itemSlug path string true "Item slug"
// @Param file formData file true "Image file to upload"
// @Success 200 {object} response.Data[dto.UploadImageResponse] "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{slug}/items/{itemSlug}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	serviceSlug := chi.URLParam(r, constant.RequestParamSlug)
	itemSlug := chi.URLParam(r, constant.RequestParamItemSlug)

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

	res, err := handler.service.UploadImage(ctx, req, serviceSlug, itemSlug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload product image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Product image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
