// media_controller_test.go
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitness-platform-api/internal/application/ports"
	"fitness-platform-api/internal/application/services"
	"fitness-platform-api/internal/domain/media"
	domain "fitness-platform-api/internal/domain/user"
	jwtSvc "fitness-platform-api/internal/infrastructure/jwt"
	"fitness-platform-api/internal/interface/api/rest/middleware"
)

const testMaxUpload = 2 << 20

func setupRouterMC(t *testing.T, ms ports.MediaService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	j := jwtSvc.New("test-secret")
	mc := &MediaController{
		logger:         zap.NewNop(),
		mediaService:   ms,
		maxUploadBytes: testMaxUpload,
	}

	authed := r.Group("", middleware.AuthMiddleware(j))
	authed.POST("/users/me/profile-image", mc.UploadProfileImageHandler)
	authed.DELETE("/users/me/profile-image", mc.RemoveProfileImageHandler)
	authed.POST("/users/me/cover-image", mc.UploadCoverImageHandler)
	authed.DELETE("/users/me/cover-image", mc.RemoveCoverImageHandler)

	return r
}

// doImageUpload posts a multipart body with an explicit part content type,
// the way browsers submit file inputs.
func doImageUpload(t *testing.T, r *gin.Engine, path, field, fileName, contentType string, fileBytes []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	if field != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, fileName))
		h.Set("Content-Type", contentType)
		fw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, _ = fw.Write(fileBytes)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, path, &b)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func bearer(t *testing.T, sub string) map[string]string {
	t.Helper()
	tok, err := SignJWT("test-secret", sub, domain.TypeUser, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func TestMediaController_Upload(t *testing.T) {
	okID := uuid.New()
	newKey := "profile-images/new.webp"

	okService := func() ports.MediaService {
		return &FakeMediaService{
			ReplaceSlotImageFunc: func(ctx context.Context, userUUID domain.UUID, slot media.Slot, data []byte) (*domain.User, error) {
				return &domain.User{UUID: userUUID, Name: "Jane", IsActive: true, ProfileImageKey: &newKey}, nil
			},
		}
	}

	tests := []struct {
		name        string
		path        string
		field       string
		fileName    string
		contentType string
		fileBytes   []byte
		headers     map[string]string
		mockMS      func() ports.MediaService
		wantStatus  int
		wantErr     string
	}{
		{
			name:       "401 missing Authorization",
			path:       "/users/me/profile-image",
			field:      "profile_image",
			fileName:   "a.jpg",
			fileBytes:  []byte("x"),
			mockMS:     func() ports.MediaService { return &FakeMediaService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "422 file is required",
			path:       "/users/me/profile-image",
			field:      "",
			headers:    bearer(t, okID.String()),
			mockMS:     func() ports.MediaService { return &FakeMediaService{} },
			wantStatus: http.StatusUnprocessableEntity,
			wantErr:    "validation failed",
		},
		{
			name:        "422 file too large",
			path:        "/users/me/profile-image",
			field:       "profile_image",
			fileName:    "big.jpg",
			contentType: "image/jpeg",
			fileBytes:   bytes.Repeat([]byte("a"), testMaxUpload+1),
			headers:     bearer(t, okID.String()),
			mockMS:      func() ports.MediaService { return &FakeMediaService{} },
			wantStatus:  http.StatusUnprocessableEntity,
			wantErr:     "validation failed",
		},
		{
			name:        "422 disallowed extension",
			path:        "/users/me/profile-image",
			field:       "profile_image",
			fileName:    "anim.gif",
			contentType: "image/gif",
			fileBytes:   []byte("GIF89a"),
			headers:     bearer(t, okID.String()),
			mockMS:      func() ports.MediaService { return &FakeMediaService{} },
			wantStatus:  http.StatusUnprocessableEntity,
			wantErr:     "validation failed",
		},
		{
			name:        "422 declared type mismatch",
			path:        "/users/me/cover-image",
			field:       "cover_image",
			fileName:    "cover.jpg",
			contentType: "application/octet-stream",
			fileBytes:   []byte("x"),
			headers:     bearer(t, okID.String()),
			mockMS:      func() ports.MediaService { return &FakeMediaService{} },
			wantStatus:  http.StatusUnprocessableEntity,
			wantErr:     "validation failed",
		},
		{
			name:        "422 undecodable body",
			path:        "/users/me/profile-image",
			field:       "profile_image",
			fileName:    "fake.jpg",
			contentType: "image/jpeg",
			fileBytes:   []byte("not really a jpeg"),
			headers:     bearer(t, okID.String()),
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					ReplaceSlotImageFunc: func(ctx context.Context, userUUID domain.UUID, slot media.Slot, data []byte) (*domain.User, error) {
						return nil, fmt.Errorf("%w: bad magic", media.ErrDecode)
					},
				}
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantErr:    "file is not a valid image",
		},
		{
			name:        "422 unsupported format",
			path:        "/users/me/profile-image",
			field:       "profile_image",
			fileName:    "sneaky.jpg",
			contentType: "image/jpeg",
			fileBytes:   []byte("GIF89a..."),
			headers:     bearer(t, okID.String()),
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					ReplaceSlotImageFunc: func(ctx context.Context, userUUID domain.UUID, slot media.Slot, data []byte) (*domain.User, error) {
						return nil, fmt.Errorf("%w: gif", media.ErrUnsupportedFormat)
					},
				}
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantErr:    "unsupported image format",
		},
		{
			name:        "404 user not found",
			path:        "/users/me/profile-image",
			field:       "profile_image",
			fileName:    "a.jpg",
			contentType: "image/jpeg",
			fileBytes:   []byte("x"),
			headers:     bearer(t, okID.String()),
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					ReplaceSlotImageFunc: func(ctx context.Context, userUUID domain.UUID, slot media.Slot, data []byte) (*domain.User, error) {
						return nil, services.ErrUserNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "user not found",
		},
		{
			name:        "500 storage failure",
			path:        "/users/me/cover-image",
			field:       "cover_image",
			fileName:    "c.png",
			contentType: "image/png",
			fileBytes:   []byte("png"),
			headers:     bearer(t, okID.String()),
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					ReplaceSlotImageFunc: func(ctx context.Context, userUUID domain.UUID, slot media.Slot, data []byte) (*domain.User, error) {
						return nil, fmt.Errorf("%w: s3 down", media.ErrStorageWrite)
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to process image",
		},
		{
			name:        "200 success",
			path:        "/users/me/profile-image",
			field:       "profile_image",
			fileName:    "Photo.JPG",
			contentType: "image/jpeg",
			fileBytes:   []byte("jpeg-bytes"),
			headers:     bearer(t, okID.String()),
			mockMS:      okService,
			wantStatus:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouterMC(t, tt.mockMS())
			rr := doImageUpload(t, r, tt.path, tt.field, tt.fileName, tt.contentType, tt.fileBytes, tt.headers)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}

			assert.Equal(t, "profile_image updated successfully", resp["message"])
			user, ok := resp["user"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, newKey, user["profile_image"])
			assert.Equal(t, "https://cdn.test/media/"+newKey, user["profile_image_url"])
		})
	}
}

func TestMediaController_Remove(t *testing.T) {
	okID := uuid.New()

	tests := []struct {
		name       string
		path       string
		headers    map[string]string
		mockMS     func() ports.MediaService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing Authorization",
			path:       "/users/me/cover-image",
			mockMS:     func() ports.MediaService { return &FakeMediaService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:    "404 user not found",
			path:    "/users/me/profile-image",
			headers: bearer(t, okID.String()),
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					RemoveSlotImageFunc: func(ctx context.Context, userUUID domain.UUID, slot media.Slot) (*domain.User, error) {
						return nil, services.ErrUserNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "user not found",
		},
		{
			name:    "500 repository error",
			path:    "/users/me/profile-image",
			headers: bearer(t, okID.String()),
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					RemoveSlotImageFunc: func(ctx context.Context, userUUID domain.UUID, slot media.Slot) (*domain.User, error) {
						return nil, errors.New("db down")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to process image",
		},
		{
			name:    "200 success clears slot",
			path:    "/users/me/cover-image",
			headers: bearer(t, okID.String()),
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					RemoveSlotImageFunc: func(ctx context.Context, userUUID domain.UUID, slot media.Slot) (*domain.User, error) {
						return &domain.User{UUID: userUUID, Name: "Jane", IsActive: true}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouterMC(t, tt.mockMS())

			req, err := http.NewRequest(http.MethodDelete, tt.path, nil)
			require.NoError(t, err)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}

			assert.Equal(t, "cover_image removed successfully", resp["message"])
			user, ok := resp["user"].(map[string]any)
			require.True(t, ok)
			assert.Nil(t, user["cover_image"])
			assert.NotEmpty(t, user["cover_image_url"], "placeholder URL after removal")
		})
	}
}
