package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinian-0/web-AI-cs1/internal/domain"
)

func testRecord(id string) domain.SessionRecord {
	return domain.SessionRecord{
		NickName:  "编程高手",
		SessionID: id,
		Messages: []domain.Message{
			domain.TextMessage(domain.RoleUser, "你好"),
			domain.MultimodalMessage(domain.RoleUser,
				domain.TextPart("看图"),
				domain.ImagePart("data:image/png;base64,aGVsbG8="),
			),
			domain.TextMessage(domain.RoleAssistant, "hello <world> & more"),
		},
	}
}

func TestSessionStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "sessions"))
	record := testRecord("2025-01-02_03-04-05")

	require.NoError(t, store.Save(record))

	loaded, err := store.Load(record.SessionID)
	require.NoError(t, err)
	assert.Equal(t, record, *loaded)
}

func TestSessionStore_SaveKeepsNonASCIILiteral(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	store := NewSessionStore(dir)
	require.NoError(t, store.Save(testRecord("2025-01-02_03-04-05")))

	data, err := os.ReadFile(filepath.Join(dir, "2025-01-02_03-04-05.json"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "编程高手")
	assert.Contains(t, content, "<world> & more")
	assert.NotContains(t, content, `\u`)
	// human-readable indented output
	assert.Contains(t, content, "  \"nick_name\"")
}

func TestSessionStore_SaveEmptyIDIsNoOp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	store := NewSessionStore(dir)

	require.NoError(t, store.Save(domain.SessionRecord{NickName: "x"}))

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestSessionStore_SaveNilMessagesAsEmptyList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	store := NewSessionStore(dir)
	require.NoError(t, store.Save(domain.SessionRecord{
		NickName:  "x",
		SessionID: "2025-01-02_03-04-05",
	}))

	data, err := os.ReadFile(filepath.Join(dir, "2025-01-02_03-04-05.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"messages": []`)

	loaded, err := store.Load("2025-01-02_03-04-05")
	require.NoError(t, err)
	assert.Empty(t, loaded.Messages)
}

func TestSessionStore_ListRecent(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "sessions"))
	for _, id := range []string{
		"2025-01-01_10-00-00",
		"2025-01-03_10-00-00",
		"2025-01-02_10-00-00",
		"2025-01-05_10-00-00",
		"2025-01-04_10-00-00",
	} {
		require.NoError(t, store.Save(domain.SessionRecord{SessionID: id, Messages: []domain.Message{}}))
	}

	ids, err := store.ListRecent(3)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-01-05_10-00-00",
		"2025-01-04_10-00-00",
		"2025-01-03_10-00-00",
	}, ids)
}

func TestSessionStore_ListRecentMissingDir(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "nope"))

	ids, err := store.ListRecent(3)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSessionStore_ListRecentIgnoresForeignFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	store := NewSessionStore(dir)
	require.NoError(t, store.Save(domain.SessionRecord{SessionID: "2025-01-01_10-00-00", Messages: []domain.Message{}}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644))

	ids, err := store.ListRecent(10)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01_10-00-00"}, ids)
}

func TestSessionStore_LoadMissing(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "sessions"))

	_, err := store.Load("2025-01-01_10-00-00")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_LoadCorrupt(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	store := NewSessionStore(dir)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))
	_, err := store.Load("bad")
	assert.ErrorIs(t, err, domain.ErrSessionCorrupt)

	// syntactically valid but missing the messages field
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.json"), []byte("{}"), 0o644))
	_, err = store.Load("empty")
	assert.ErrorIs(t, err, domain.ErrSessionCorrupt)
}

func TestSessionStore_LoadNormalizesSessionID(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	store := NewSessionStore(dir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "2025-01-01_10-00-00.json"),
		[]byte(`{"nick_name":"x","current_session":"something-else","messages":[]}`),
		0o644,
	))

	loaded, err := store.Load("2025-01-01_10-00-00")
	require.NoError(t, err)
	// the storage key wins over whatever the record claims
	assert.Equal(t, "2025-01-01_10-00-00", loaded.SessionID)
}

func TestSessionStore_DeleteIsIdempotent(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "sessions"))
	record := testRecord("2025-01-02_03-04-05")
	require.NoError(t, store.Save(record))

	require.NoError(t, store.Delete(record.SessionID))
	require.NoError(t, store.Delete(record.SessionID))

	_, err := store.Load(record.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_RejectsPathEscapingIDs(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "sessions"))

	_, err := store.Load("../outside")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.NoError(t, store.Delete("../outside"))
}
