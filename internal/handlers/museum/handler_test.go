package museum_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"museum/infras/otel/mocks"
	commentDto "museum/internal/domains/comment/model/dto"
	"museum/internal/domains/museum/model/dto"
	museumMocks "museum/internal/domains/museum/service/mocks"
	"museum/internal/handlers/museum"
	"museum/shared/failure"
)

type renderCall struct {
	name string
	data any
}

type stubRenderer struct {
	calls []renderCall
	err   error
}

func (s *stubRenderer) Render(w io.Writer, name string, data any) error {
	if s.err != nil {
		return s.err
	}

	s.calls = append(s.calls, renderCall{name: name, data: data})
	_, err := fmt.Fprintf(w, "<html>%s</html>", name)

	return err
}

func setup(t *testing.T) (*museumMocks.MockMuseum, *stubRenderer, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := museumMocks.NewMockMuseum(ctrl)
	renderer := &stubRenderer{}

	handler := museum.New(mockService, renderer, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, renderer, router
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestListGalleries(t *testing.T) {
	mockService, renderer, router := setup(t)

	page := dto.GalleriesPage{Galleries: []any{map[string]any{"id": "2200"}}}
	mockService.EXPECT().ListGalleries(gomock.Any()).Return(page, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<html>index</html>", rec.Body.String())
	require.Len(t, renderer.calls, 1)
	assert.Equal(t, page, renderer.calls[0].data)
}

func TestListGalleries_RemoteFailure(t *testing.T) {
	mockService, renderer, router := setup(t)

	mockService.EXPECT().ListGalleries(gomock.Any()).Return(dto.GalleriesPage{}, failure.RemoteAPI(http.StatusUnauthorized))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Response from api not ok: 401"}`, rec.Body.String())
	assert.Empty(t, renderer.calls)
}

func TestListGalleryObjects(t *testing.T) {
	mockService, renderer, router := setup(t)

	page := dto.GalleryPage{
		GalleryObjects: []dto.GalleryObject{{ID: "1", Title: "Vase", Image: "http://img/x.jpg?height=150&width=150", People: " A, B"}},
		Images:         []string{"http://img/x.jpg"},
		Image1:         "http://img/x.jpg",
	}
	mockService.EXPECT().ListGalleryObjects(gomock.Any(), "42").Return(page, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/gallery/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, renderer.calls, 1)
	assert.Equal(t, "gallery", renderer.calls[0].name)
	assert.Equal(t, page, renderer.calls[0].data)
}

func TestListGalleryObjects_NetworkFailure(t *testing.T) {
	mockService, _, router := setup(t)

	mockService.EXPECT().
		ListGalleryObjects(gomock.Any(), "42").
		Return(dto.GalleryPage{}, failure.Network(errors.New("dial tcp: connection refused")))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/gallery/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"network error: dial tcp: connection refused"}`, rec.Body.String())
}

func TestGetObject_BothRoutes(t *testing.T) {
	for _, path := range []string{"/object/99", "/objects/99/comment"} {
		t.Run(path, func(t *testing.T) {
			mockService, renderer, router := setup(t)

			page := dto.ObjectPage{
				Object:      map[string]any{"id": "99", "primaryimageurl": "No image"},
				ObjComments: []string{},
			}
			mockService.EXPECT().GetObject(gomock.Any(), "99").Return(page, nil)

			rec := serve(router, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			require.Len(t, renderer.calls, 1)
			assert.Equal(t, "object", renderer.calls[0].name)
			assert.Equal(t, page, renderer.calls[0].data)
		})
	}
}

func TestGetObject_RemoteFailure(t *testing.T) {
	mockService, _, router := setup(t)

	mockService.EXPECT().GetObject(gomock.Any(), "0").Return(dto.ObjectPage{}, failure.RemoteAPI(http.StatusNotFound))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/object/0", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"Response from api not ok: 404"}`, rec.Body.String())
}

func TestSubmitComment(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
	}{
		{name: "urlencoded", body: url.Values{"comment": {"Lovely"}}.Encode(), contentType: "application/x-www-form-urlencoded"},
		{name: "json", body: `{"comment":"Lovely"}`, contentType: "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, renderer, router := setup(t)

			page := dto.ObjectPage{Object: map[string]any{"id": "99"}, ObjComments: []string{"Lovely"}}
			mockService.EXPECT().
				SubmitComment(gomock.Any(), commentDto.StoreCommentRequest{ObjectID: "99", Comment: "Lovely"}).
				Return(page, nil)

			req := httptest.NewRequest(http.MethodPost, "/object/99", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			rec := serve(router, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			require.Len(t, renderer.calls, 1)
			assert.Equal(t, []string{"Lovely"}, renderer.calls[0].data.(dto.ObjectPage).ObjComments)
		})
	}
}

func TestSubmitComment_StorageFailure(t *testing.T) {
	mockService, renderer, router := setup(t)

	mockService.EXPECT().
		SubmitComment(gomock.Any(), gomock.Any()).
		Return(dto.ObjectPage{}, fmt.Errorf("failed to store comment: %w", failure.Storage(errors.New("disk full"))))

	req := httptest.NewRequest(http.MethodPost, "/object/99", strings.NewReader("comment=Lovely"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := serve(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"failed to store comment: storage error: disk full"}`, rec.Body.String())
	assert.Empty(t, renderer.calls)
}

func TestSubmitComment_InvalidJSON(t *testing.T) {
	_, _, router := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/object/99", strings.NewReader(`{"comment":`))
	req.Header.Set("Content-Type", "application/json")

	rec := serve(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"failed to decode request body`)
}

func TestRenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := museumMocks.NewMockMuseum(ctrl)
	handler := museum.New(mockService, &stubRenderer{err: errors.New("template: index: boom")}, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	mockService.EXPECT().ListGalleries(gomock.Any()).Return(dto.GalleriesPage{}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"template: index: boom"}`, rec.Body.String())
}
