package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"museum/infras/otel"
	"museum/infras/sqlite"
	"museum/internal/domains/comment/model"
	"museum/shared/constant"
	gRepo "museum/shared/repository"
)

type Comment interface {
	Insert(ctx context.Context, comment model.Comment) error
	GetByObjectID(ctx context.Context, objectID string) ([]model.Comment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Comment]
	otel otel.Otel
}

func New(db *sqlite.Connection, otel otel.Otel) Comment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Comment](model.EntityName, model.TableName, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, comment model.Comment) error {
	return r.Repository.Insert(ctx, comment)
}

// GetByObjectID returns the stored comments for objectID in insertion order.
func (r *repositoryImpl) GetByObjectID(ctx context.Context, objectID string) ([]model.Comment, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".comment.GetByObjectID")
	defer scope.End()

	scope.SetAttribute(model.FieldObjectID, objectID)

	return r.GetAll(ctx, gRepo.Filter{model.FieldObjectID: objectID}, model.FieldComment)
}
