package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"museum/infras/harvard"
	"museum/infras/otel"
	commentDto "museum/internal/domains/comment/model/dto"
	commentService "museum/internal/domains/comment/service"
	"museum/internal/domains/museum/model/dto"
	"museum/shared/constant"
)

// Museum builds the page view-models. Errors from the collection API are returned unwrapped
// so their message reaches the client as-is.
type Museum interface {
	ListGalleries(ctx context.Context) (dto.GalleriesPage, error)
	ListGalleryObjects(ctx context.Context, galleryID string) (dto.GalleryPage, error)
	GetObject(ctx context.Context, objectID string) (dto.ObjectPage, error)
	SubmitComment(ctx context.Context, req commentDto.StoreCommentRequest) (dto.ObjectPage, error)
}

type serviceImpl struct {
	harvard  harvard.Harvard
	comments commentService.Comment
	otel     otel.Otel
}

func New(harvard harvard.Harvard, comments commentService.Comment, otel otel.Otel) Museum {
	return &serviceImpl{
		harvard:  harvard,
		comments: comments,
		otel:     otel,
	}
}

func (s *serviceImpl) ListGalleries(ctx context.Context) (page dto.GalleriesPage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".museum.ListGalleries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err := s.harvard.ListGalleries(ctx)
	if err != nil {
		return dto.GalleriesPage{}, err
	}

	return dto.NewGalleriesPage(body), nil
}

func (s *serviceImpl) ListGalleryObjects(ctx context.Context, galleryID string) (page dto.GalleryPage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".museum.ListGalleryObjects")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.RequestParamGalleryID, galleryID)

	body, err := s.harvard.ListGalleryObjects(ctx, galleryID)
	if err != nil {
		return dto.GalleryPage{}, err
	}

	page, err = dto.NewGalleryPage(body)
	if err != nil {
		return dto.GalleryPage{}, err
	}

	return page, nil
}

// GetObject fetches the object and its stored comments.
func (s *serviceImpl) GetObject(ctx context.Context, objectID string) (page dto.ObjectPage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".museum.GetObject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.RequestParamObjectID, objectID)

	body, err := s.harvard.GetObject(ctx, objectID)
	if err != nil {
		return dto.ObjectPage{}, err
	}

	comments, err := s.comments.List(ctx, objectID)
	if err != nil {
		return dto.ObjectPage{}, err
	}

	page, err = dto.NewObjectPage(body, comments)
	if err != nil {
		return dto.ObjectPage{}, err
	}

	return page, nil
}

// SubmitComment stores the comment and then builds the object page, which includes it.
func (s *serviceImpl) SubmitComment(ctx context.Context, req commentDto.StoreCommentRequest) (page dto.ObjectPage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".museum.SubmitComment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.comments.Store(ctx, req); err != nil {
		return dto.ObjectPage{}, err
	}

	return s.GetObject(ctx, req.ObjectID)
}
