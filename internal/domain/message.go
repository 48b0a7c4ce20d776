package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

type PartType string

const (
	PartText     PartType = "text"
	PartImageURL PartType = "image_url"
	PartVideoURL PartType = "video_url"
)

// Part is one fragment of a multimodal message. URL carries a data: URI for
// uploaded media.
type Part struct {
	Type PartType
	Text string
	URL  string
}

// Message is either a plain text message (Parts is nil) or a multimodal one
// composed of ordered parts. The distinction survives round-trips through the
// on-disk format and the completion API wire format.
type Message struct {
	Role  Role
	Text  string
	Parts []Part
}

func TextMessage(role Role, text string) Message {
	return Message{Role: role, Text: text}
}

func MultimodalMessage(role Role, parts ...Part) Message {
	if parts == nil {
		parts = []Part{}
	}
	return Message{Role: role, Parts: parts}
}

func TextPart(text string) Part {
	return Part{Type: PartText, Text: text}
}

func ImagePart(url string) Part {
	return Part{Type: PartImageURL, URL: url}
}

// wire shapes: content is either a plain string or a list of typed parts,
// matching the OpenAI-compatible chat format.
type wireMessage struct {
	Role    Role `json:"role"`
	Content any  `json:"content"`
}

type wirePart struct {
	Type     PartType `json:"type"`
	Text     string   `json:"text,omitempty"`
	ImageURL *wireURL `json:"image_url,omitempty"`
	VideoURL *wireURL `json:"video_url,omitempty"`
}

type wireURL struct {
	URL string `json:"url"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	if m.Parts == nil {
		return json.Marshal(wireMessage{Role: m.Role, Content: m.Text})
	}
	parts := make([]wirePart, 0, len(m.Parts))
	for _, p := range m.Parts {
		wp := wirePart{Type: p.Type}
		switch p.Type {
		case PartText:
			wp.Text = p.Text
		case PartImageURL:
			wp.ImageURL = &wireURL{URL: p.URL}
		case PartVideoURL:
			wp.VideoURL = &wireURL{URL: p.URL}
		}
		parts = append(parts, wp)
	}
	return json.Marshal(wireMessage{Role: m.Role, Content: parts})
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    Role            `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Role = raw.Role
	m.Text = ""
	m.Parts = nil

	content := bytes.TrimSpace(raw.Content)
	if len(content) == 0 || bytes.Equal(content, []byte("null")) {
		return nil
	}
	if content[0] == '"' {
		return json.Unmarshal(content, &m.Text)
	}

	var parts []wirePart
	if err := json.Unmarshal(content, &parts); err != nil {
		return fmt.Errorf("message content: %w", err)
	}
	m.Parts = make([]Part, 0, len(parts))
	for _, wp := range parts {
		p := Part{Type: wp.Type, Text: wp.Text}
		switch {
		case wp.ImageURL != nil:
			p.URL = wp.ImageURL.URL
		case wp.VideoURL != nil:
			p.URL = wp.VideoURL.URL
		}
		m.Parts = append(m.Parts, p)
	}
	return nil
}
