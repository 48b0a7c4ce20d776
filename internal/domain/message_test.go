package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_PlainTextWireFormat(t *testing.T) {
	m := TextMessage(RoleAssistant, "你好")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"assistant","content":"你好"}`, string(data))

	var back Message
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)
}

func TestMessage_MultimodalWireFormat(t *testing.T) {
	m := MultimodalMessage(RoleUser,
		TextPart("look at this"),
		ImagePart("data:image/png;base64,aGVsbG8="),
	)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"role": "user",
		"content": [
			{"type": "text", "text": "look at this"},
			{"type": "image_url", "image_url": {"url": "data:image/png;base64,aGVsbG8="}}
		]
	}`, string(data))

	var back Message
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)
}

func TestMessage_UnmarshalVideoPart(t *testing.T) {
	raw := `{"role":"user","content":[{"type":"video_url","video_url":{"url":"https://example.com/v.mp4"}}]}`

	var m Message
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	require.Len(t, m.Parts, 1)
	assert.Equal(t, PartVideoURL, m.Parts[0].Type)
	assert.Equal(t, "https://example.com/v.mp4", m.Parts[0].URL)
}

func TestMessage_UnmarshalInvalidContent(t *testing.T) {
	var m Message
	err := json.Unmarshal([]byte(`{"role":"user","content":42}`), &m)
	assert.Error(t, err)
}

func TestMessage_EmptyPartsStayMultimodal(t *testing.T) {
	m := MultimodalMessage(RoleUser)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"user","content":[]}`, string(data))
}
