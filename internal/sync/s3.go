package sync

import (
	"context"
	"fmt"
)

// ObjectPutter uploads one object. *specsource.S3Store satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// S3Destination writes each export to a fixed object key.
type S3Destination struct {
	objects ObjectPutter
	bucket  string
	key     string
}

// NewS3Destination returns a destination that overwrites bucket/key on
// every sync.
func NewS3Destination(objects ObjectPutter, bucket, key string) *S3Destination {
	return &S3Destination{objects: objects, bucket: bucket, key: key}
}

func (d *S3Destination) String() string {
	return "s3://" + d.bucket + "/" + d.key
}

// Write uploads data as the configured object key.
func (d *S3Destination) Write(ctx context.Context, data []byte) error {
	if err := d.objects.PutObject(ctx, d.bucket, d.key, data, "application/x-ndjson"); err != nil {
		return fmt.Errorf("uploading %s: %w", d, err)
	}
	return nil
}
