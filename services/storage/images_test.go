package storage

import (
	"strings"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImages(t *testing.T) *CloudinaryImages {
	t.Helper()
	cld, err := cloudinary.NewFromParams("demo", "key", "secret")
	require.NoError(t, err)
	return NewCloudinaryImages(cld)
}

func TestResolveImagePublicID(t *testing.T) {
	url, err := newImages(t).ResolveImage("equipamentos/pula-pula")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://"), url)
	assert.Contains(t, url, "demo/image/upload")
	assert.True(t, strings.HasSuffix(url, "equipamentos/pula-pula"), url)
}

func TestResolveImageKeepsURLs(t *testing.T) {
	in := "https://res.cloudinary.com/demo/image/upload/v1/slides_p/hero.jpg"
	url, err := newImages(t).ResolveImage(in)
	require.NoError(t, err)
	assert.Equal(t, in, url)
}

func TestResolveImageEmpty(t *testing.T) {
	_, err := newImages(t).ResolveImage("  ")
	assert.Error(t, err)
}
