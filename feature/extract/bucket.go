package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"

	"gamedata-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Bucket reads the extract documents from an object storage prefix, for
// pipelines where the exporter uploads extracts instead of writing them to a
// shared directory.
type Bucket struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucket returns a Source reading from the given bucket and prefix. The
// caller is expected to have verified the bucket exists.
func NewBucket(client storage.Client, bucket, prefix string) *Bucket {
	return &Bucket{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// LocalizationTable fetches strings.json. Like the directory source, an
// extract without a localization bundle yields an empty table; the document
// is probed first so its absence never surfaces as a download error.
func (b *Bucket) LocalizationTable(ctx context.Context) (map[string]string, error) {
	exists, err := b.exists(ctx, StringsDoc)
	if err != nil {
		return nil, err
	}
	if !exists {
		return map[string]string{}, nil
	}
	var table map[string]string
	if err := b.readDoc(ctx, StringsDoc, &table); err != nil {
		return nil, err
	}
	if table == nil {
		table = map[string]string{}
	}
	return table, nil
}

// ShapeTable fetches plugs.json.
func (b *Bucket) ShapeTable(ctx context.Context) (map[string]PlugShape, error) {
	var plugs map[string]PlugShape
	if err := b.readDoc(ctx, PlugsDoc, &plugs); err != nil {
		return nil, err
	}
	return plugs, nil
}

// RawComponents fetches components.json.
func (b *Bucket) RawComponents(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := b.readDoc(ctx, ComponentsDoc, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// exists probes for one document without downloading it.
func (b *Bucket) exists(ctx context.Context, name string) (bool, error) {
	objectName := b.objectName(name)
	opts := minio.ListObjectsOptions{
		Prefix:    objectName,
		Recursive: false,
		MaxKeys:   1,
	}
	for obj := range b.client.ListObjects(ctx, b.bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to probe %s: %w", objectName, obj.Err)
		}
		return obj.Key == objectName, nil
	}
	return false, nil
}

func (b *Bucket) readDoc(ctx context.Context, name string, v any) error {
	objectName := b.objectName(name)
	obj, err := b.client.GetObject(ctx, b.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get extract document %s: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return fmt.Errorf("failed to read extract document %s: %w", objectName, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse extract document %s: %w", objectName, err)
	}
	return nil
}

func (b *Bucket) objectName(doc string) string {
	return path.Join(b.prefix, doc)
}
