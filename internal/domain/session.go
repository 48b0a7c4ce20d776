package domain

// SessionRecord is the persisted unit, one JSON file per session. The field
// names are part of the on-disk contract; renaming them breaks previously
// saved sessions.
type SessionRecord struct {
	NickName  string    `json:"nick_name"`
	SessionID string    `json:"current_session"`
	Messages  []Message `json:"messages"`
}
