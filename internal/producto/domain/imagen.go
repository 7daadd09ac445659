package domain

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// fallback when the blob does not sniff as a known image format
const defaultImageMime = "image/svg+xml"

// ImageDataURI renders raw image bytes as an inline data URI, sniffing
// the MIME type from magic bytes. Absent image yields nil, not an
// error.
func ImageDataURI(image []byte) *string {
	if len(image) == 0 {
		return nil
	}

	mime := mimetype.Detect(image).String()
	if idx := strings.IndexByte(mime, ';'); idx >= 0 {
		mime = mime[:idx]
	}
	if !strings.HasPrefix(mime, "image/") {
		mime = defaultImageMime
	}

	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(image)
	return &uri
}
