package settings

import (
	"database/sql"
	"errors"
	"fmt"
)

// Chat holds what a Telegram chat has chosen for itself.
type Chat struct {
	ChatID int64
	Locale string
}

type Repository interface {
	GetOrCreate(chatID int64, defaultLocale string) (*Chat, error)
	Save(chat *Chat) error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(chatID int64, defaultLocale string) (*Chat, error) {
	chat := &Chat{ChatID: chatID}

	err := r.db.QueryRow(`
		SELECT locale FROM chat_settings WHERE chat_id = ?
	`, chatID).Scan(&chat.Locale)

	if errors.Is(err, sql.ErrNoRows) {
		chat.Locale = defaultLocale

		_, err = r.db.Exec(`
			INSERT INTO chat_settings (chat_id, locale)
			VALUES (?, ?)
		`, chatID, chat.Locale)

		if err != nil {
			return nil, fmt.Errorf("failed to create chat settings: %w", err)
		}
		return chat, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get chat settings: %w", err)
	}

	return chat, nil
}

func (r *SQLiteRepository) Save(chat *Chat) error {
	_, err := r.db.Exec(`
		UPDATE chat_settings SET
			locale = ?, updated_at = CURRENT_TIMESTAMP
		WHERE chat_id = ?
	`, chat.Locale, chat.ChatID)

	if err != nil {
		return fmt.Errorf("failed to save chat settings: %w", err)
	}
	return nil
}
