package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"fitness-platform-api/config"
	"fitness-platform-api/internal/application/ports"
	"fitness-platform-api/internal/domain/media"
	domain "fitness-platform-api/internal/domain/user"
	"fitness-platform-api/internal/infrastructure/mq"
	userDTO "fitness-platform-api/internal/interface/api/rest/dto/user"
	"fitness-platform-api/pkg/imageproc"
)

const (
	webpContentType = "image/webp"
	randomNameLen   = 10
	maxBaseNameLen  = 100
)

const nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MediaService owns the upload pipeline and the image slot keys.
//
// Concurrent replaces of the same user's same slot are last-writer-wins;
// a caller that needs strict ordering must serialize per user above this
// service.
type MediaService struct {
	blob           ports.BlobStorage
	userRepository domain.Repository
	proc           *imageproc.Processor
	cfg            config.Media
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
	logger         *zap.Logger
}

func NewMediaService(
	blob ports.BlobStorage,
	userRepository domain.Repository,
	proc *imageproc.Processor,
	cfg config.Media,
	mqPort ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.MediaService {
	return &MediaService{
		blob:           blob,
		userRepository: userRepository,
		proc:           proc,
		cfg:            cfg,
		mq:             mqPort,
		mCounter:       mCounter,
		logger:         logger,
	}
}

func (ms *MediaService) ReplaceSlotImage(ctx context.Context, userUUID domain.UUID, slot media.Slot, data []byte) (*domain.User, error) {
	spec := slot.Spec()

	img, err := ms.proc.Normalize(data, imageproc.Constraints{
		MaxWidth:  spec.MaxWidth,
		MaxHeight: spec.MaxHeight,
		Sharpen:   spec.Sharpen,
	})
	if err != nil {
		return nil, err
	}
	encoded, err := ms.proc.EncodeWebP(img, spec.Quality)
	if err != nil {
		return nil, err
	}

	cur, err := ms.userRepository.FetchUserByID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, ErrUserNotFound
	}
	prevKey := slotKey(cur, slot)

	// New blob must exist before the slot moves and before anything is
	// deleted. A failed write leaves the previous state untouched.
	key, err := ms.Store(ctx, encoded, slot.Category(), "")
	if err != nil {
		return nil, err
	}

	u, err := ms.userRepository.UpdateImageSlot(ctx, userUUID, slot, &key)
	if err != nil {
		ms.logger.Error("slot update failed, new blob orphaned",
			zap.String("slot", slot.String()),
			zap.String("key", key),
			zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if prevKey != nil && *prevKey != key {
		ms.removeStale(ctx, slot, *prevKey)
	}

	ms.mCounter.WithLabelValues("image_replaced_total").Inc()
	ms.publish(ctx, http.MethodPut, u)

	return u, nil
}

func (ms *MediaService) RemoveSlotImage(ctx context.Context, userUUID domain.UUID, slot media.Slot) (*domain.User, error) {
	cur, err := ms.userRepository.FetchUserByID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, ErrUserNotFound
	}
	prevKey := slotKey(cur, slot)

	u, err := ms.userRepository.UpdateImageSlot(ctx, userUUID, slot, nil)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	// The slot is already cleared; a failed blob delete only leaks.
	if prevKey != nil {
		ms.removeStale(ctx, slot, *prevKey)
	}

	ms.mCounter.WithLabelValues("image_removed_total").Inc()
	ms.publish(ctx, http.MethodDelete, u)

	return u, nil
}

func (ms *MediaService) Store(ctx context.Context, encoded []byte, category, explicitName string) (string, error) {
	name := explicitName
	if name == "" {
		name = objectName()
	}
	key := media.Key(category, name)

	if err := ms.blob.Put(ctx, key, encoded, webpContentType); err != nil {
		return "", fmt.Errorf("%w: %v", media.ErrStorageWrite, err)
	}

	ms.mCounter.WithLabelValues("images_stored_total").Inc()

	return key, nil
}

func (ms *MediaService) Remove(ctx context.Context, key string) error {
	return ms.blob.Delete(ctx, key)
}

func (ms *MediaService) PublicURL(key *string, displayName string, slot media.Slot) string {
	if key != nil && *key != "" {
		return ms.blob.PublicURL(*key)
	}

	switch slot {
	case media.SlotCover:
		return ms.cfg.CoverFallback
	default:
		q := url.Values{}
		q.Set("name", displayName)
		q.Set("size", "256")
		q.Set("background", "4F46E5")
		q.Set("color", "fff")
		return ms.cfg.AvatarAPIBase + "/?" + q.Encode()
	}
}

func (ms *MediaService) GenerateThumbnail(ctx context.Context, data []byte, category, sourceName string) (string, error) {
	img, err := ms.proc.Normalize(data, imageproc.Constraints{
		MaxWidth:  media.ThumbMaxEdge,
		MaxHeight: media.ThumbMaxEdge,
		Sharpen:   1,
	})
	if err != nil {
		return "", err
	}
	encoded, err := ms.proc.EncodeWebP(img, media.ThumbQuality)
	if err != nil {
		return "", err
	}

	base := sanitizeBaseName(sourceName)
	if base == "" {
		base = objectName()
	}

	return ms.Store(ctx, encoded, category, media.ThumbPrefix+base)
}

// removeStale deletes a superseded blob. By the time it runs the slot
// already points elsewhere, so a failure is counted and logged, never
// surfaced.
func (ms *MediaService) removeStale(ctx context.Context, slot media.Slot, key string) {
	if err := ms.blob.Delete(ctx, key); err != nil {
		ms.mCounter.WithLabelValues("stale_blob_delete_failed_total").Inc()
		ms.logger.Warn("stale blob delete failed",
			zap.String("slot", slot.String()),
			zap.String("key", key),
			zap.Error(err))
	}
}

func (ms *MediaService) publish(ctx context.Context, method string, u *domain.User) {
	urls := userDTO.ImageURLs{
		Profile: ms.PublicURL(u.ProfileImageKey, u.Name, media.SlotProfile),
		Cover:   ms.PublicURL(u.CoverImageKey, u.Name, media.SlotCover),
	}
	ms.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		UserID:  u.UUID.String(),
		Payload: userDTO.ToResponseUser(*u, urls),
	}
}

func slotKey(u *domain.User, slot media.Slot) *string {
	switch slot {
	case media.SlotProfile:
		return u.ProfileImageKey
	case media.SlotCover:
		return u.CoverImageKey
	}
	return nil
}

// objectName: "<unix-seconds>_<10 random alphanumerics>". Collision-safe
// for this write volume, not cryptographically unique.
func objectName() string {
	return fmt.Sprintf("%d_%s", time.Now().Unix(), randAlphanumeric(randomNameLen))
}

func randAlphanumeric(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = nameAlphabet[int(b[i])%len(nameAlphabet)]
	}
	return string(b)
}

// sanitizeBaseName folds a caller-supplied source filename into a safe
// object base name: basename only, extension dropped, ASCII-folded and
// slugged. Returns "" when nothing safe remains.
func sanitizeBaseName(original string) string {
	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)
	if s == "." || s == ".." || s == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := path.Ext(s)
	base := strings.TrimSuffix(s, ext)

	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if len(base) > maxBaseNameLen {
		base = base[:maxBaseNameLen]
	}

	return base
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
