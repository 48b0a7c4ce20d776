package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachment_Kind(t *testing.T) {
	tests := []struct {
		name string
		want MediaKind
	}{
		{"photo.jpg", MediaImage},
		{"photo.JPEG", MediaImage},
		{"anim.gif", MediaImage},
		{"pic.webp", MediaImage},
		{"notes.txt", MediaUnknown},
		{"clip.mp4", MediaUnknown},
		{"noextension", MediaUnknown},
		{"archive.tar.gz", MediaUnknown},
	}
	for _, tt := range tests {
		att := Attachment{Name: tt.name}
		assert.Equal(t, tt.want, att.Kind(), tt.name)
	}
}

func TestAttachment_DataURI(t *testing.T) {
	att := Attachment{Name: "photo.jpg", Data: []byte("hello")}
	uri := att.DataURI()

	// jpg is normalized to the jpeg MIME subtype
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"), uri)
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", uri)

	png := Attachment{Name: "pic.PNG", Data: []byte("hello")}
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", png.DataURI())
}
