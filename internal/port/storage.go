package port

import "context"

// ObjectStorage abstracts the object store that holds uploaded export files.
type ObjectStorage interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}
