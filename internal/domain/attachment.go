package domain

import (
	"encoding/base64"
	"strings"
)

type MediaKind string

const (
	MediaImage   MediaKind = "image"
	MediaUnknown MediaKind = "unknown"
)

var imageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"webp": true,
}

// Attachment is a file uploaded alongside a chat message.
type Attachment struct {
	Name string
	Data []byte
}

// Kind classifies the attachment by its file extension. Anything outside the
// image allow-list is MediaUnknown and has no outgoing representation.
func (a Attachment) Kind() MediaKind {
	if imageExts[a.ext()] {
		return MediaImage
	}
	return MediaUnknown
}

// DataURI encodes the attachment as a base64 data: URI. Only meaningful for
// image attachments; the jpg extension maps to the jpeg MIME subtype.
func (a Attachment) DataURI() string {
	subtype := a.ext()
	if subtype == "jpg" {
		subtype = "jpeg"
	}
	return "data:image/" + subtype + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

func (a Attachment) ext() string {
	name := strings.ToLower(a.Name)
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
