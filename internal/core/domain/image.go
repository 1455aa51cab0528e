package domain

const (
	// MaxImageSize is 8 MiB.
	MaxImageSize = 8 << 20

	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
)

// ImageRef is a product image uploaded by the user. Data holds the raw bytes
// and is never serialized into views.
type ImageRef struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}

// ValidateImage checks the format first and the size second.
func ValidateImage(contentType string, size int64) error {
	switch contentType {
	case MIMEJPEG, MIMEPNG:
	default:
		return ErrInvalidImageFormat
	}
	if size > MaxImageSize {
		return ErrImageTooLarge
	}
	return nil
}
