package ports

import (
	"context"

	"fitness-platform-api/internal/domain/media"
	"fitness-platform-api/internal/domain/user"
)

// MediaService runs the image pipeline (decode, downscale, sharpen, webp)
// and manages slot storage keys. Concurrent replaces of the same slot are
// last-writer-wins; callers needing strict per-user ordering must serialize
// above this service.
type MediaService interface {
	// ReplaceSlotImage normalizes and stores the upload, swaps the slot to
	// the new key, then best-effort deletes the previous blob. The new blob
	// always exists before the old one is removed.
	ReplaceSlotImage(ctx context.Context, userUUID user.UUID, slot media.Slot, data []byte) (*user.User, error)
	// RemoveSlotImage clears the slot and best-effort deletes its blob.
	RemoveSlotImage(ctx context.Context, userUUID user.UUID, slot media.Slot) (*user.User, error)
	// Store writes already-encoded bytes under category. An empty
	// explicitName generates a collision-resistant one.
	Store(ctx context.Context, encoded []byte, category, explicitName string) (string, error)
	// Remove deletes the blob at key; missing keys are a no-op.
	Remove(ctx context.Context, key string) error
	// PublicURL never returns an empty string: a nil key yields a
	// deterministic placeholder derived from the display name (profile)
	// or the configured fallback banner (cover).
	PublicURL(key *string, displayName string, slot media.Slot) string
	// GenerateThumbnail runs the pipeline with the 400px long-edge bound
	// and stores under {category}/thumb_{base}.webp.
	GenerateThumbnail(ctx context.Context, data []byte, category, sourceName string) (string, error)
}
