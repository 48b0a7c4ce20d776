package service

import (
	"context"
	"sync"

	"github.com/jinian-0/web-AI-cs1/internal/config"
	"github.com/jinian-0/web-AI-cs1/internal/domain"
	"github.com/jinian-0/web-AI-cs1/internal/repository"
)

// Snapshot is a copy of the conversation state for rendering.
type Snapshot struct {
	Persona     string           `json:"persona"`
	SessionID   string           `json:"session_id"`
	Model       string           `json:"model"`
	Messages    []domain.Message `json:"messages"`
	UploadEpoch int              `json:"upload_epoch"`
}

// ConversationService owns the single in-process conversation: the active
// session id, persona, ordered message log, and the upload epoch counter that
// forces the file picker to reset. A mutex serializes operations; the
// application remains logically single-user.
type ConversationService struct {
	store        *repository.SessionStore
	gateway      Gateway
	persistEmpty bool
	newID        func() string

	mu          sync.Mutex
	persona     string
	model       string
	sessionID   string
	messages    []domain.Message
	uploadEpoch int
}

func NewConversationService(cfg *config.Config, store *repository.SessionStore, gateway Gateway) *ConversationService {
	return &ConversationService{
		store:        store,
		gateway:      gateway,
		persistEmpty: cfg.PersistEmptySessions,
		newID:        GenerateSessionID,
		persona:      config.DefaultPersona,
		model:        cfg.DefaultModel,
		sessionID:    GenerateSessionID(),
	}
}

func (s *ConversationService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SetPersona updates the persona name. Empty input is ignored, matching the
// text field behavior of keeping the previous value.
func (s *ConversationService) SetPersona(persona string) {
	if persona == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persona = persona
}

func (s *ConversationService) SetModel(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = model
}

// StartNew archives the current conversation and, when it holds at least one
// message, begins a fresh empty one. The fresh session is written to disk
// immediately when eager persistence is enabled.
func (s *ConversationService) StartNew() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveLocked(); err != nil {
		return Snapshot{}, err
	}

	if len(s.messages) > 0 {
		s.messages = nil
		s.sessionID = s.newID()
		s.uploadEpoch++
		if err := s.saveLocked(); err != nil {
			return Snapshot{}, err
		}
	}
	return s.snapshotLocked(), nil
}

// SwitchTo loads a stored session and replaces the active conversation with
// it. On any load failure the in-memory state is left untouched.
func (s *ConversationService) SwitchTo(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.store.Load(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.messages = record.Messages
	s.persona = record.NickName
	s.sessionID = record.SessionID
	s.uploadEpoch++
	return s.snapshotLocked(), nil
}

// Delete removes a stored session. Deleting the active session additionally
// clears the message log and assigns a fresh session id.
func (s *ConversationService) Delete(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(id); err != nil {
		return Snapshot{}, err
	}
	if id == s.sessionID {
		s.messages = nil
		s.sessionID = s.newID()
		s.uploadEpoch++
	}
	return s.snapshotLocked(), nil
}

// Submit appends the user's turn, streams the assistant reply fragment by
// fragment, and persists the completed exchange. When the stream fails the
// partial reply is discarded and nothing is written to disk; the user message
// appended first is kept in memory.
func (s *ConversationService) Submit(ctx context.Context, text string, att *domain.Attachment, onFragment FragmentFunc) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if text == "" && att == nil {
		return domain.Message{}, domain.ErrEmptyMessage
	}

	userMsg := buildUserMessage(text, att)
	if att != nil && len(userMsg.Parts) == 0 {
		// non-image attachment with no text: nothing survives classification
		return domain.Message{}, domain.ErrEmptyMessage
	}

	s.messages = append(s.messages, userMsg)
	if att != nil {
		s.uploadEpoch++
	}

	log := make([]domain.Message, 0, len(s.messages)+1)
	log = append(log, domain.TextMessage(domain.RoleSystem, PersonaPrompt(s.persona)))
	log = append(log, s.messages...)

	full, err := s.gateway.Stream(ctx, s.model, log, onFragment)
	if err != nil {
		return domain.Message{}, err
	}

	reply := domain.TextMessage(domain.RoleAssistant, full)
	s.messages = append(s.messages, reply)
	if err := s.saveLocked(); err != nil {
		return reply, err
	}
	return reply, nil
}

// buildUserMessage assembles the outgoing user message. A surviving
// attachment forces the multimodal form; plain text stays a string message.
func buildUserMessage(text string, att *domain.Attachment) domain.Message {
	if att == nil {
		return domain.TextMessage(domain.RoleUser, text)
	}
	var parts []domain.Part
	if text != "" {
		parts = append(parts, domain.TextPart(text))
	}
	if att.Kind() == domain.MediaImage {
		parts = append(parts, domain.ImagePart(att.DataURI()))
	}
	return domain.MultimodalMessage(domain.RoleUser, parts...)
}

func (s *ConversationService) saveLocked() error {
	if s.sessionID == "" {
		return nil
	}
	// the lazy-persistence variant skips writing sessions with no exchanges
	if len(s.messages) == 0 && !s.persistEmpty {
		return nil
	}
	msgs := s.messages
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return s.store.Save(domain.SessionRecord{
		NickName:  s.persona,
		SessionID: s.sessionID,
		Messages:  msgs,
	})
}

func (s *ConversationService) snapshotLocked() Snapshot {
	msgs := make([]domain.Message, len(s.messages))
	copy(msgs, s.messages)
	return Snapshot{
		Persona:     s.persona,
		SessionID:   s.sessionID,
		Model:       s.model,
		Messages:    msgs,
		UploadEpoch: s.uploadEpoch,
	}
}
