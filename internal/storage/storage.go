// Package storage provides the blob store behind document files. Keys map
// to object names inside a single bucket; the public URL saved on the
// document record must round-trip back to the key so deletes can find the
// underlying object.
package storage

import (
	"context"
	"io"
)

type Driver string

const (
	DriverS3     Driver = "s3"
	DriverMemory Driver = "memory"
)

// Info describes a stored blob.
type Info struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

type Store interface {
	Driver() Driver
	// Put stores the blob under key and returns its public reference.
	Put(ctx context.Context, key string, r io.Reader, contentType string) (Info, error)
	// Delete removes the blob. The bool reports whether a delete was issued;
	// a missing object is not an error.
	Delete(ctx context.Context, key string) (bool, error)
	// KeyFromURL derives the object key from a public URL previously
	// returned by Put.
	KeyFromURL(rawURL string) (string, error)
}
