package media

import "errors"

var (
	// ErrDecode: the bytes are not a decodable raster. Retrying the same
	// bytes cannot succeed.
	ErrDecode = errors.New("image decode failed")
	// ErrUnsupportedFormat: the bytes decode but the format is outside the
	// accepted set (jpeg, png).
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrStorageWrite: the blob store failed to persist the new asset. The
	// owning slot must not change when this is returned.
	ErrStorageWrite = errors.New("blob storage write failed")
	// ErrUnknownSlot: slot value outside the defined set.
	ErrUnknownSlot = errors.New("unknown image slot")
)
