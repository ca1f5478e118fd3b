package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"museum/infras/otel"
	"museum/internal/domains/comment/model/dto"
	"museum/internal/domains/comment/repository"
	"museum/shared/constant"
)

type Comment interface {
	Store(ctx context.Context, req dto.StoreCommentRequest) error
	List(ctx context.Context, objectID string) ([]string, error)
}

type serviceImpl struct {
	repo repository.Comment
	otel otel.Otel
}

func New(repo repository.Comment, otel otel.Otel) Comment {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Store appends a new comment row for the request's object id.
func (s *serviceImpl) Store(ctx context.Context, req dto.StoreCommentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.Store")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		return fmt.Errorf("failed to store comment: %w", err)
	}

	scope.AddEvent("Comment stored for object " + req.ObjectID)

	return nil
}

// List returns every comment body stored for objectID, oldest first.
func (s *serviceImpl) List(ctx context.Context, objectID string) (comments []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetByObjectID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return dto.FromModels(models), nil
}
