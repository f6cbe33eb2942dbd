package utils

import (
	"fmt"

	"festquote/config"
	"festquote/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary builds the equipment image resolver. It returns nil, nil when no cloud is
// configured, in which case image references are served as stored.
func Cloudinary() (*storage.CloudinaryImages, error) {
	cloudName := config.AppConfig.CloudinaryCloudName
	if cloudName == "" {
		return nil, nil
	}
	apiKey := config.AppConfig.CloudinaryAPIKey
	apiSecret := config.AppConfig.CloudinaryAPISecret
	if apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	return storage.NewCloudinaryImages(cld), nil
}
