// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the sync pipeline performs: probing for extract documents,
// downloading them, and publishing generated catalogs. The abstraction
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the extract bucket.
//   - GetObject: Retrieves an extract document as a stream.
//   - PutObject: Uploads a generated catalog (with size and options).
//   - ListObjects: Probes for optional extract documents by prefix.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "game-assets")
package storage
