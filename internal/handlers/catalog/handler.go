package catalog

import (
	"net/http"

	"decor/infras/otel"
	"decor/internal/domains/catalog"
	"decor/shared/constant"
	"decor/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	catalog catalog.Catalog
	otel    otel.Otel
}

func New(cat catalog.Catalog, otel otel.Otel) Handler {
	return Handler{
		catalog: cat,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/catalog", handler.GetCatalog)
	router.Post("/catalog/refresh", handler.RefreshCatalog)
}

// GetCatalog returns the aggregated catalog snapshot.
// @Summary Get the catalog
// @Description Return every public catalog collection in one payload. Always succeeds; seeded data is served until storage has been read.
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[catalog.SnapshotResponse] "Aggregated catalog"
// @Router /v1/catalog [get]
func (handler *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCatalog")
	defer scope.End()

	res := catalog.SnapshotResponse{
		Loading:  handler.catalog.Loading(),
		Snapshot: handler.catalog.Snapshot(),
	}

	scope.AddEvent("Catalog snapshot served")

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshCatalog forces a reload of every catalog collection from storage.
// @Summary Refresh the catalog
// @Description Reload every catalog collection from storage. Collections that fail to load keep their previous state.
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Catalog refreshed successfully"
// @Router /v1/catalog/refresh [post]
// @Security BearerAuth
func (handler *Handler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshCatalog")
	defer scope.End()

	handler.catalog.Refresh(ctx)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Catalog refreshed by user " + user)

	response.WithMessage(w, http.StatusOK, "Catalog refreshed successfully")
}
