package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileFromUrl(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	content, err := ReadFileFromUrl(context.Background(), server.URL+"/shirt.png")
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))

	_, err = ReadFileFromUrl(context.Background(), server.URL+"/missing")
	assert.ErrorContains(t, err, "404")
}

func TestStrPointer(t *testing.T) {
	assert.Nil(t, StrPointer(""))
	assert.Equal(t, "x", *StrPointer("x"))
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger("local"))
	assert.NotNil(t, NewLogger("production"))
}
