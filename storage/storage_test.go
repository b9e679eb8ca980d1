package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fbURL = "https://firebasestorage.googleapis.com/v0/b/neokudilonga.appspot.com/o/products%2Fdobble.jpg?alt=media&token=abc"

func TestBackendForDispatch(t *testing.T) {
	s := &Store{r2: &r2Client{publicBaseURL: "https://images.neokudilonga.ao"}}

	assert.Equal(t, BackendFirebase, s.BackendFor(fbURL))
	assert.Equal(t, BackendR2, s.BackendFor("https://images.neokudilonga.ao/products/123_dobble.jpg"))
	assert.Equal(t, BackendNone, s.BackendFor("https://cdn.example.com/other.jpg"))
	assert.Equal(t, BackendNone, s.BackendFor("not a url"))
}

func TestBackendForWithoutR2(t *testing.T) {
	s := &Store{}
	assert.Equal(t, BackendFirebase, s.BackendFor(fbURL))
	assert.Equal(t, BackendNone, s.BackendFor("https://images.neokudilonga.ao/products/x.jpg"))
}

func TestIsFirebaseURL(t *testing.T) {
	assert.True(t, IsFirebaseURL(fbURL))
	assert.False(t, IsFirebaseURL("https://images.neokudilonga.ao/products/x.jpg"))
}

func TestParseFirebaseURL(t *testing.T) {
	bucket, object, ok := ParseFirebaseURL(fbURL)
	require.True(t, ok)
	assert.Equal(t, "neokudilonga.appspot.com", bucket)
	assert.Equal(t, "products/dobble.jpg", object)
}

func TestParseFirebaseURLRejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		"https://firebasestorage.googleapis.com/v0/b/bucket",
		"https://firebasestorage.googleapis.com/other/path/entirely/x/y",
		"https://example.com/v0/b/bucket/o/object",
	} {
		_, _, ok := ParseFirebaseURL(raw)
		assert.False(t, ok, "should reject %q", raw)
	}
}

func TestR2Key(t *testing.T) {
	base := "https://images.neokudilonga.ao"

	key, ok := R2Key(base+"/products/123_dobble.jpg", base)
	require.True(t, ok)
	assert.Equal(t, "products/123_dobble.jpg", key)

	_, ok = R2Key("https://elsewhere.example.com/x.jpg", base)
	assert.False(t, ok)

	_, ok = R2Key(base+"/", base)
	assert.False(t, ok)
}

func TestDeleteImageUnknownURLIsNoop(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.DeleteImage(context.Background(), "https://cdn.example.com/other.jpg"))
}
