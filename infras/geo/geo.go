package geo

//go:generate go run go.uber.org/mock/mockgen -source=./geo.go -destination=./mocks/geo_mock.go -package=mocks

import (
	"context"
	"decor/config"
	"decor/infras/otel"
	"decor/shared/constant"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	otelScopeName   = "geo"
	otelAttrAddress = "address"
)

// Location is a resolved coordinate pair.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// MapsURL renders the location as a shareable map link.
func (l Location) MapsURL() string {
	return fmt.Sprintf("https://maps.google.com/?q=%g,%g", l.Latitude, l.Longitude)
}

// Locator resolves a best-effort location for a client address. Callers are
// expected to treat every error as "location not available" rather than a
// failure of their own operation.
type Locator interface {
	Locate(ctx context.Context, address string) (Location, error)
}

type locatorImpl struct {
	client *http.Client
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Locator {
	timeout := time.Duration(cfg.External.Geo.TimeoutSeconds) * time.Second

	return &locatorImpl{
		client: &http.Client{Timeout: timeout},
		config: cfg,
		otel:   otl,
	}
}

type lookupResponse struct {
	Status    string  `json:"status"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Message   string  `json:"message"`
}

func (svc *locatorImpl) Locate(ctx context.Context, address string) (loc Location, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Locate")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrAddress, address)

	endpoint := svc.config.External.Geo.Endpoint
	if endpoint == constant.Empty {
		return loc, fmt.Errorf("geo lookup endpoint is not configured")
	}

	lookupURL := fmt.Sprintf("%s/%s", endpoint, url.PathEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return loc, fmt.Errorf("failed to build geo lookup request: %w", err)
	}

	res, err := svc.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("address", address).Msg("geo lookup failed")

		return loc, fmt.Errorf("geo lookup failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return loc, fmt.Errorf("geo lookup returned status %d", res.StatusCode)
	}

	var lookup lookupResponse
	if err = json.NewDecoder(res.Body).Decode(&lookup); err != nil {
		return loc, fmt.Errorf("failed to decode geo lookup response: %w", err)
	}

	if lookup.Status != "success" {
		return loc, fmt.Errorf("geo lookup rejected: %s", lookup.Message)
	}

	loc.Latitude = lookup.Latitude
	loc.Longitude = lookup.Longitude

	return loc, nil
}
