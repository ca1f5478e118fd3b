package museum

import (
	"bytes"
	"museum/infras/otel"
	commentDto "museum/internal/domains/comment/model/dto"
	"museum/internal/domains/museum/service"
	"museum/shared/constant"
	"museum/shared/validator"
	"museum/transport/http/response"
	"museum/transport/http/view"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves the collection pages. Every failure is answered with 200 {"error": msg}
// rather than an error page.
type Handler struct {
	service  service.Museum
	renderer view.Renderer
	otel     otel.Otel
}

func New(service service.Museum, renderer view.Renderer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		renderer: renderer,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.ListGalleries)
	router.Get("/gallery/{"+constant.RequestParamGalleryID+"}", handler.ListGalleryObjects)
	router.Get("/object/{"+constant.RequestParamObjectID+"}", handler.GetObject)
	router.Post("/object/{"+constant.RequestParamObjectID+"}", handler.SubmitComment)
	router.Get("/objects/{"+constant.RequestParamObjectID+"}/comment", handler.GetObject)
}

// ListGalleries renders the gallery index.
func (handler *Handler) ListGalleries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListGalleries")
	defer scope.End()

	page, err := handler.service.ListGalleries(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list galleries")

		response.WithInlineError(w, err)

		return
	}

	handler.render(w, constant.ViewIndex, page)
}

// ListGalleryObjects renders the objects currently shown in one gallery.
func (handler *Handler) ListGalleryObjects(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListGalleryObjects")
	defer scope.End()

	galleryID := chi.URLParam(r, constant.RequestParamGalleryID)

	page, err := handler.service.ListGalleryObjects(ctx, galleryID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("galleryId", galleryID).Msg("failed to list gallery objects")

		response.WithInlineError(w, err)

		return
	}

	handler.render(w, constant.ViewGallery, page)
}

// GetObject renders an object with its comments. It also serves /objects/{objectId}/comment.
func (handler *Handler) GetObject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetObject")
	defer scope.End()

	objectID := chi.URLParam(r, constant.RequestParamObjectID)

	page, err := handler.service.GetObject(ctx, objectID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("objectId", objectID).Msg("failed to get object")

		response.WithInlineError(w, err)

		return
	}

	handler.render(w, constant.ViewObject, page)
}

// SubmitComment stores the posted comment and renders the object page again.
func (handler *Handler) SubmitComment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitComment")
	defer scope.End()

	req := commentDto.StoreCommentRequest{}
	if err := validator.Decode(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode comment")

		response.WithInlineError(w, err)

		return
	}

	req.ObjectID = chi.URLParam(r, constant.RequestParamObjectID)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate comment")

		response.WithInlineError(w, err)

		return
	}

	page, err := handler.service.SubmitComment(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("objectId", req.ObjectID).Msg("failed to submit comment")

		response.WithInlineError(w, err)

		return
	}

	scope.AddEvent("Comment submitted for object " + req.ObjectID)

	handler.render(w, constant.ViewObject, page)
}

// render buffers the page so a template failure can still be answered with the JSON error.
func (handler *Handler) render(w http.ResponseWriter, name string, data any) {
	var page bytes.Buffer

	if err := handler.renderer.Render(&page, name, data); err != nil {
		log.Error().Err(err).Str("view", name).Msg("failed to render view")

		response.WithInlineError(w, err)

		return
	}

	response.WithHTML(w, http.StatusOK, &page)
}
