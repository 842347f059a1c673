// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the operations the
// reconciliation service needs: fetching input workbooks that were dropped into a bucket
// and publishing the merged workbook of a run. This abstraction supports both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	data, err := storage.Fetch(ctx, client, "planilhas", "entrada/antiga.xlsx")
//	name, err := storage.Publish(ctx, client, "planilhas", "reconciliacoes", "meta2.xlsx", contentType, out)
package storage
