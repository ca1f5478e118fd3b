package dto

import (
	"museum/internal/domains/comment/model"
	"museum/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// StoreCommentRequest is the submitted comment form. ObjectID comes from the route.
type StoreCommentRequest struct {
	ObjectID string `json:"-"       form:"-"       validate:"required"`
	Comment  string `json:"comment" form:"comment"`
}

func (r *StoreCommentRequest) ToModel() model.Comment {
	return model.Comment{
		ID:        uuid.NewString(),
		ObjectID:  r.ObjectID,
		Comment:   r.Comment,
		CreatedAt: timezone.Format(timezone.Now(), time.RFC3339Nano),
	}
}

// FromModels returns the comment bodies in the order given, never nil.
func FromModels(models []model.Comment) []string {
	comments := make([]string, 0, len(models))
	for _, m := range models {
		comments = append(comments, m.Comment)
	}

	return comments
}
