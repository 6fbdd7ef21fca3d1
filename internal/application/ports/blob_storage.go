package ports

import "context"

// BlobStorage is the storage collaborator for media blobs. A returned nil
// from Put means the write is durable. Delete is idempotent: deleting a
// missing key is not an error.
type BlobStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
	GetBucket() string
}
