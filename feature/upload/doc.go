// Package upload implements the multipart file upload endpoint backed by
// object storage. Files are size- and type-checked against the storage
// configuration before being written under a UUID object name.
package upload
