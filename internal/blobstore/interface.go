package blobstore

import "errors"

// ErrNotFound is returned when a document does not exist. Absence of a
// document is a normal condition for most callers and should be handled,
// not logged as a failure.
var ErrNotFound = errors.New("document not found")

// BlobStore is the document store accessor. Every domain entity is a JSON
// blob addressed by (collection, key).
type BlobStore interface {
	Get(collection, key string) ([]byte, error)
	Put(collection, key string, value []byte) error
	Delete(collection, key string) error
	Keys(collection string) ([]string, error)
	Clear() error
}
