package ports

import "context"

// BlobStore is content-addressed storage: Put derives the reference from
// the bytes, so identical payloads share one reference.
type BlobStore interface {
	Put(ctx context.Context, data []byte) (ref string, err error)
	Get(ctx context.Context, ref string) ([]byte, error)
}
