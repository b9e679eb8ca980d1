// Package storage talks to the two object stores holding product images:
// Cloudflare R2 (S3-compatible) for new uploads and Firebase Storage for
// images that predate the R2 migration. Deletions are dispatched by URL
// pattern; URLs matching neither backend are a silent no-op.
package storage

import (
	"context"
	"errors"
	"io"
	"log"
	"net/url"
	"strings"
)

const firebaseHost = "firebasestorage.googleapis.com"

type Backend int

const (
	BackendNone Backend = iota
	BackendFirebase
	BackendR2
)

var ErrNotConfigured = errors.New("storage backend not configured")

// Store bundles the configured backends. Either client may be nil when its
// environment is absent; deletes against a nil client are skipped.
type Store struct {
	r2       *r2Client
	firebase *firebaseClient
}

// New builds a Store from the environment. Missing backends are logged,
// not fatal, so local development works without cloud credentials.
func New(ctx context.Context) *Store {
	s := &Store{}

	r2, err := newR2Client(ctx)
	if err != nil {
		log.Printf("⚠️ R2 storage disabled: %v", err)
	} else {
		s.r2 = r2
	}

	fb, err := newFirebaseClient(ctx)
	if err != nil {
		log.Printf("⚠️ Firebase storage disabled: %v", err)
	} else {
		s.firebase = fb
	}

	return s
}

// BackendFor matches an image URL to the store that holds it.
func (s *Store) BackendFor(rawURL string) Backend {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return BackendNone
	}
	if u.Host == firebaseHost {
		return BackendFirebase
	}
	if s.r2 != nil && s.r2.publicBaseURL != "" && strings.HasPrefix(rawURL, s.r2.publicBaseURL) {
		return BackendR2
	}
	return BackendNone
}

// UploadR2 stores an object in R2 and returns its public URL.
func (s *Store) UploadR2(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if s.r2 == nil {
		return "", ErrNotConfigured
	}
	return s.r2.upload(ctx, key, contentType, body)
}

// DeleteImage removes the object behind an image URL from whichever backend
// the URL matches. Unknown hosts are ignored.
func (s *Store) DeleteImage(ctx context.Context, rawURL string) error {
	switch s.BackendFor(rawURL) {
	case BackendFirebase:
		if s.firebase == nil {
			return nil
		}
		bucket, object, ok := ParseFirebaseURL(rawURL)
		if !ok {
			return nil
		}
		return s.firebase.delete(ctx, bucket, object)
	case BackendR2:
		key, ok := R2Key(rawURL, s.r2.publicBaseURL)
		if !ok {
			return nil
		}
		return s.r2.delete(ctx, key)
	}
	return nil
}

// IsFirebaseURL reports whether a URL points at Firebase Storage.
func IsFirebaseURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	return err == nil && u.Host == firebaseHost
}

// ParseFirebaseURL extracts bucket and object name from a download URL of
// the form https://firebasestorage.googleapis.com/v0/b/{bucket}/o/{object}.
// The object segment is URL-encoded in download links.
func ParseFirebaseURL(rawURL string) (bucket, object string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host != firebaseHost {
		return "", "", false
	}
	parts := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	// v0 / b / {bucket} / o / {object}
	if len(parts) < 5 || parts[0] != "v0" || parts[1] != "b" || parts[3] != "o" {
		return "", "", false
	}
	object, err = url.PathUnescape(strings.Join(parts[4:], "/"))
	if err != nil || object == "" {
		return "", "", false
	}
	return parts[2], object, true
}

// R2Key extracts the object key from a public R2 URL.
func R2Key(rawURL, publicBaseURL string) (string, bool) {
	if publicBaseURL == "" || !strings.HasPrefix(rawURL, publicBaseURL) {
		return "", false
	}
	key := strings.TrimPrefix(strings.TrimPrefix(rawURL, publicBaseURL), "/")
	return key, key != ""
}
