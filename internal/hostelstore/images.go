package hostelstore

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/hostelhut/hostelhut/pkg/domain"
)

// ImageInput is one image handed to the store: either an
// already-encoded URL, passed through unchanged, or raw file bytes to
// inline. The mock store has no blob storage, so file bytes become
// data URLs.
type ImageInput struct {
	URL  string // set for pass-through
	Name string // original filename, for error messages
	Data []byte // set for raw file content
}

// LoadImageFile reads an image from disk and validates it against the
// upload contract (accepted formats, 5 MB cap).
func LoadImageFile(path string) (ImageInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImageInput{}, fmt.Errorf("load image: %w", err)
	}
	name := filepath.Base(path)
	mime := http.DetectContentType(data)
	if err := domain.CheckImage(name, mime, int64(len(data))); err != nil {
		return ImageInput{}, err
	}
	return ImageInput{Name: name, Data: data}, nil
}

// normalizeImages converts each input to its stored string form: URLs
// pass through, raw bytes become base64 data URLs.
func normalizeImages(inputs []ImageInput) ([]string, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		switch {
		case in.URL != "":
			out = append(out, in.URL)
		case len(in.Data) > 0:
			mime := http.DetectContentType(in.Data)
			out = append(out, "data:"+mime+";base64,"+base64.StdEncoding.EncodeToString(in.Data))
		default:
			return nil, fmt.Errorf("image %q has no content", in.Name)
		}
	}
	return out, nil
}
