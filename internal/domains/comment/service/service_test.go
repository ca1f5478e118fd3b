package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"museum/infras/otel/mocks"
	commentMocks "museum/internal/domains/comment/mocks"
	"museum/internal/domains/comment/model"
	"museum/internal/domains/comment/model/dto"
	"museum/internal/domains/comment/service"
	"museum/shared/failure"
)

func TestCommentService_Store(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := commentMocks.NewMockComment(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.StoreCommentRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful store",
			req:  dto.StoreCommentRequest{ObjectID: "99", Comment: "Lovely"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Cond(func(x any) bool {
						c, ok := x.(model.Comment)

						return ok && c.ObjectID == "99" && c.Comment == "Lovely" && c.ID != ""
					})).
					Return(nil)
			},
		},
		{
			name: "storage error",
			req:  dto.StoreCommentRequest{ObjectID: "99", Comment: "Lovely"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(failure.Storage(errors.New("disk I/O error")))
			},
			wantErr: failure.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Store(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := commentMocks.NewMockComment(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		objectID  string
		setupMock func()
		want      []string
		wantErr   bool
	}{
		{
			name:     "comments in stored order",
			objectID: "1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByObjectID(gomock.Any(), "1").
					Return([]model.Comment{{Comment: "b"}, {Comment: "a"}}, nil)
			},
			want: []string{"b", "a"},
		},
		{
			name:     "no comments",
			objectID: "2",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByObjectID(gomock.Any(), "2").
					Return([]model.Comment{}, nil)
			},
			want: []string{},
		},
		{
			name:     "repository error",
			objectID: "3",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByObjectID(gomock.Any(), "3").
					Return(nil, failure.Storage(errors.New("no such table: comments")))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.List(context.Background(), tt.objectID)

			if tt.wantErr {
				assert.ErrorIs(t, err, failure.ErrStorage)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
