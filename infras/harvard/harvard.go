package harvard

//go:generate go run go.uber.org/mock/mockgen -source=./harvard.go -destination=./mocks/harvard_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"museum/config"
	"museum/infras/otel"
	"museum/shared/constant"
	"museum/shared/failure"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Harvard reads the Harvard Art Museums collection API. Every call returns the decoded
// JSON body untouched; numbers are kept as json.Number.
type Harvard interface {
	FetchJSON(ctx context.Context, path string, params url.Values) (any, error)
	ListGalleries(ctx context.Context) (any, error)
	ListGalleryObjects(ctx context.Context, galleryID string) (any, error)
	GetObject(ctx context.Context, objectID string) (any, error)
}

type harvardImpl struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	gallerySize int
	otel        otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Harvard {
	harvardCfg := cfg.External.Harvard

	return &harvardImpl{
		client: &http.Client{
			Timeout:   time.Duration(harvardCfg.TimeoutSeconds) * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:     strings.TrimRight(harvardCfg.BaseURL, "/"),
		apiKey:      harvardCfg.APIKey,
		gallerySize: harvardCfg.GallerySize,
		otel:        otel,
	}
}

// FetchJSON issues GET <base><path>?<params>&apikey=<key> and decodes the response.
func (h *harvardImpl) FetchJSON(ctx context.Context, path string, params url.Values) (body any, err error) {
	ctx, scope := h.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".harvard.FetchJSON")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{}
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}

	// the key is kept out of the span attribute
	scope.SetAttribute(constant.OtelURLAttributeKey, h.baseURL+path+"?"+query.Encode())

	query.Set(constant.HarvardParamAPIKey, h.apiKey)
	endpoint := h.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, failure.Network(err)
	}
	defer resp.Body.Close()

	scope.SetStatusCode(resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, failure.RemoteAPI(resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	if err = decoder.Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return body, nil
}

func (h *harvardImpl) ListGalleries(ctx context.Context) (any, error) {
	params := url.Values{}
	params.Set(constant.HarvardParamSize, strconv.Itoa(h.gallerySize))

	return h.FetchJSON(ctx, constant.HarvardPathGallery, params)
}

func (h *harvardImpl) ListGalleryObjects(ctx context.Context, galleryID string) (any, error) {
	params := url.Values{}
	params.Set(constant.HarvardParamGallery, galleryID)

	return h.FetchJSON(ctx, constant.HarvardPathObject, params)
}

func (h *harvardImpl) GetObject(ctx context.Context, objectID string) (any, error) {
	return h.FetchJSON(ctx, constant.HarvardPathObject+"/"+url.PathEscape(objectID), nil)
}
