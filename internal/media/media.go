// Package media turns uploaded product images into self-describing data URLs
// that embed directly in a product record.
package media

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"
)

// MaxImageBytes caps the raw upload before encoding. Caller-side policy; the
// store does not enforce it.
const MaxImageBytes = 2 << 20

var (
	ErrTooLarge = errors.New("image exceeds 2MB limit")
	ErrNotImage = errors.New("file is not a supported image")
)

// EncodeDataURL reads an uploaded file and returns a data: URL with the
// sniffed content type. Rejects oversized payloads and non-image content.
func EncodeDataURL(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", err
	}
	if len(raw) > MaxImageBytes {
		return "", ErrTooLarge
	}
	if len(raw) == 0 {
		return "", ErrNotImage
	}
	mime := http.DetectContentType(raw)
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrNotImage
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
