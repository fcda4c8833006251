package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackjack/internal/database"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "blackjack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db.DB)
}

func TestGetOrCreate(t *testing.T) {
	repo := newTestRepository(t)

	chat, err := repo.GetOrCreate(42, "en")
	require.NoError(t, err)
	assert.Equal(t, &Chat{ChatID: 42, Locale: "en"}, chat)

	chat, err = repo.GetOrCreate(42, "sv")
	require.NoError(t, err)
	assert.Equal(t, "en", chat.Locale, "existing row wins over the default")
}

func TestSave(t *testing.T) {
	repo := newTestRepository(t)

	chat, err := repo.GetOrCreate(7, "en")
	require.NoError(t, err)

	chat.Locale = "sv"
	require.NoError(t, repo.Save(chat))

	again, err := repo.GetOrCreate(7, "en")
	require.NoError(t, err)
	assert.Equal(t, "sv", again.Locale)
}
