package storage

import (
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/asset"
)

// CloudinaryImages resolves catalog image references against the Cloudinary account the
// admin panel uploads to. References that are already URLs are returned unchanged.
type CloudinaryImages struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryImages wraps an initialised Cloudinary client; delivery URLs are always https.
func NewCloudinaryImages(cld *cloudinary.Cloudinary) *CloudinaryImages {
	cld.Config.URL.Secure = true
	return &CloudinaryImages{cld: cld}
}

// ResolveImage implements catalog.ImageResolver.
func (s *CloudinaryImages) ResolveImage(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("CloudinaryImages: empty image reference")
	}
	if strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "http://") {
		return ref, nil
	}

	a, err := s.getAsset(ref)
	if err != nil {
		return "", fmt.Errorf("CloudinaryImages: failed to get asset: %w", err)
	}
	url, err := a.String()
	if err != nil {
		return "", fmt.Errorf("CloudinaryImages: failed to get URL string: %w", err)
	}
	return url, nil
}

func (s *CloudinaryImages) getAsset(publicID string) (*asset.Asset, error) {
	return s.cld.Image(publicID)
}
