package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"museum/config"
	"museum/helper"
	harvardMocks "museum/infras/harvard/mocks"
	"museum/infras/otel/mocks"
	"museum/infras/sqlite"
	commentDto "museum/internal/domains/comment/model/dto"
	commentRepository "museum/internal/domains/comment/repository"
	commentService "museum/internal/domains/comment/service"
	commentMocks "museum/internal/domains/comment/service/mocks"
	"museum/internal/domains/museum/model"
	"museum/internal/domains/museum/model/dto"
	"museum/internal/domains/museum/service"
	"museum/shared/failure"
)

func newCommentService(t *testing.T) commentService.Comment {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "museum.db")
	cfg.DB.SQLite.MigrationTable = "schema_migrations"

	require.NoError(t, helper.Up(cfg))

	conn, err := sqlite.Open(cfg.DB.SQLite.Path, 2)
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	return commentService.New(commentRepository.New(conn, mocks.NewOtel()), mocks.NewOtel())
}

func TestMuseumService_ListGalleries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHarvard := harvardMocks.NewMockHarvard(ctrl)
	svc := service.New(mockHarvard, commentMocks.NewMockComment(ctrl), mocks.NewOtel())

	t.Run("records passed through", func(t *testing.T) {
		records := []any{map[string]any{"id": "2200", "name": "European Art"}}

		mockHarvard.EXPECT().
			ListGalleries(gomock.Any()).
			Return(map[string]any{"records": records}, nil)

		page, err := svc.ListGalleries(context.Background())
		require.NoError(t, err)

		assert.Equal(t, records, page.Galleries)
	})

	t.Run("remote failure", func(t *testing.T) {
		mockHarvard.EXPECT().
			ListGalleries(gomock.Any()).
			Return(nil, failure.RemoteAPI(401))

		_, err := svc.ListGalleries(context.Background())

		assert.EqualError(t, err, "Response from api not ok: 401")
	})
}

func TestMuseumService_ListGalleryObjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHarvard := harvardMocks.NewMockHarvard(ctrl)
	svc := service.New(mockHarvard, commentMocks.NewMockComment(ctrl), mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		want      dto.GalleryPage
		wantErr   error
	}{
		{
			name: "gallery 42",
			setupMock: func() {
				mockHarvard.EXPECT().
					ListGalleryObjects(gomock.Any(), "42").
					Return(map[string]any{"records": []any{map[string]any{
						"id":              "1",
						"title":           "Vase",
						"primaryimageurl": "http://img/x.jpg",
						"people":          []any{map[string]any{"name": "A"}, map[string]any{"name": "B"}},
					}}}, nil)
			},
			want: dto.GalleryPage{
				GalleryObjects: []dto.GalleryObject{{
					ID:     "1",
					Title:  "Vase",
					Image:  "http://img/x.jpg?height=150&width=150",
					People: " A, B",
				}},
				Images: []string{"http://img/x.jpg"},
				Image1: "http://img/x.jpg",
			},
		},
		{
			name: "network failure",
			setupMock: func() {
				mockHarvard.EXPECT().
					ListGalleryObjects(gomock.Any(), "42").
					Return(nil, failure.Network(errors.New("connection refused")))
			},
			wantErr: failure.ErrNetwork,
		},
		{
			name: "records missing",
			setupMock: func() {
				mockHarvard.EXPECT().
					ListGalleryObjects(gomock.Any(), "42").
					Return(map[string]any{"error": "bad gallery"}, nil)
			},
			wantErr: model.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			page, err := svc.ListGalleryObjects(context.Background(), "42")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, page)
		})
	}
}

func TestMuseumService_GetObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHarvard := harvardMocks.NewMockHarvard(ctrl)
	mockComments := commentMocks.NewMockComment(ctrl)
	svc := service.New(mockHarvard, mockComments, mocks.NewOtel())

	t.Run("object with comments", func(t *testing.T) {
		mockHarvard.EXPECT().
			GetObject(gomock.Any(), "99").
			Return(map[string]any{"id": "99", "title": "Vase", "primaryimageurl": nil}, nil)
		mockComments.EXPECT().
			List(gomock.Any(), "99").
			Return([]string{"Nice", "Lovely"}, nil)

		page, err := svc.GetObject(context.Background(), "99")
		require.NoError(t, err)

		assert.Equal(t, "No image", page.Object["primaryimageurl"])
		assert.Equal(t, []string{"Nice", "Lovely"}, page.ObjComments)
	})

	t.Run("remote failure skips comments", func(t *testing.T) {
		mockHarvard.EXPECT().
			GetObject(gomock.Any(), "99").
			Return(nil, failure.RemoteAPI(404))

		_, err := svc.GetObject(context.Background(), "99")

		var remote *failure.RemoteAPIError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, 404, remote.Status)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockHarvard.EXPECT().
			GetObject(gomock.Any(), "99").
			Return(map[string]any{"id": "99"}, nil)
		mockComments.EXPECT().
			List(gomock.Any(), "99").
			Return(nil, failure.Storage(errors.New("database is locked")))

		_, err := svc.GetObject(context.Background(), "99")

		assert.ErrorIs(t, err, failure.ErrStorage)
	})
}

func TestMuseumService_SubmitComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHarvard := harvardMocks.NewMockHarvard(ctrl)
	svc := service.New(mockHarvard, newCommentService(t), mocks.NewOtel())

	mockHarvard.EXPECT().
		GetObject(gomock.Any(), "99").
		Return(map[string]any{"id": "99", "primaryimageurl": "http://img/99.jpg"}, nil).
		Times(2)

	page, err := svc.SubmitComment(context.Background(), commentDto.StoreCommentRequest{ObjectID: "99", Comment: "Lovely"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Lovely"}, page.ObjComments)
	assert.Equal(t, "http://img/99.jpg", page.Object["primaryimageurl"])

	page, err = svc.GetObject(context.Background(), "99")
	require.NoError(t, err)

	assert.Equal(t, []string{"Lovely"}, page.ObjComments)
}

func TestMuseumService_SubmitComment_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockComments := commentMocks.NewMockComment(ctrl)
	svc := service.New(harvardMocks.NewMockHarvard(ctrl), mockComments, mocks.NewOtel())

	mockComments.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		Return(failure.Storage(errors.New("no such table: comments")))

	_, err := svc.SubmitComment(context.Background(), commentDto.StoreCommentRequest{ObjectID: "99", Comment: "Lovely"})

	assert.ErrorIs(t, err, failure.ErrStorage)
}
