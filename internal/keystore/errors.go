package keystore

import "errors"

var (
	// ErrKeyNotFound is returned by Get when no key is stored under the name.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyAlreadyExists is returned by stores that refuse to overwrite a
	// key. The stores in this package delete before adding, so callers only
	// see it from third-party implementations.
	ErrKeyAlreadyExists = errors.New("key already exists")

	// ErrUnsupportedBackend is returned by [New] for an unknown backend name.
	ErrUnsupportedBackend = errors.New("unsupported keystore backend")
)
