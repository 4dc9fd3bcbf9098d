package port

import "context"

// BlobStore persists named collections as opaque blobs.
type BlobStore interface {
	// Load returns the blob stored in a slot, or (nil, nil) when the slot
	// has never been written.
	Load(ctx context.Context, slot string) ([]byte, error)

	// Save overwrites a slot with the given blob.
	Save(ctx context.Context, slot string, data []byte) error
}
