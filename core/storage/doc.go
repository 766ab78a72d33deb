// Package storage provides the object storage configuration section and a
// Minio-backed client for uploaded files.
//
// The Client interface abstracts the subset of Minio operations the upload
// feature needs, which keeps handlers testable through the mock in
// storage/mocks.
package storage
