package domain

import "fmt"

// MaxImageBytes is the upload size ceiling for hostel photos and profile
// pictures.
const MaxImageBytes = 5 * 1024 * 1024

// Accepted image MIME types for uploads.
var ImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}

var imageTypeSet = func() map[string]bool {
	m := make(map[string]bool, len(ImageTypes))
	for _, t := range ImageTypes {
		m[t] = true
	}
	return m
}()

// ValidImageType returns true if the given MIME type is an accepted image
// format.
func ValidImageType(mime string) bool {
	return imageTypeSet[mime]
}

// CheckImage validates an upload candidate by MIME type and size.
func CheckImage(name, mime string, size int64) error {
	if !ValidImageType(mime) {
		return fmt.Errorf("%s is not a valid image format", name)
	}
	if size > MaxImageBytes {
		return fmt.Errorf("%s is too large (max 5MB)", name)
	}
	return nil
}
