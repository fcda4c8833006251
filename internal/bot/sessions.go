package bot

import (
	"log/slog"
	"sync"

	"blackjack/internal/game"
)

// dealtCounter counts notifications between resets. After a hit or a
// stand every notification is one card.
type dealtCounter struct {
	updates int
}

func (c *dealtCounter) Update()    { c.updates++ }
func (c *dealtCounter) CardDealt() { c.Update() }
func (c *dealtCounter) GameOver()  {}

func (c *dealtCounter) reset() { c.updates = 0 }

// session is one chat's table. Hold mu for every call into game.
type session struct {
	mu    sync.Mutex
	game  *game.Game
	dealt *dealtCounter
}

// sessions keeps one game per chat for the lifetime of the process.
type sessions struct {
	mu    sync.RWMutex
	games map[int64]*session
	rules game.RulesFactory
	opts  []game.Option
}

func newSessions(rules game.RulesFactory, logger *slog.Logger, opts ...game.Option) *sessions {
	return &sessions{
		games: make(map[int64]*session),
		rules: rules,
		opts:  append([]game.Option{game.WithLogger(logger)}, opts...),
	}
}

func (s *sessions) get(chatID int64) *session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[chatID]
}

func (s *sessions) getOrCreate(chatID int64) *session {
	if sess := s.get(chatID); sess != nil {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.games[chatID]; ok {
		return sess
	}

	sess := &session{
		game:  game.New(s.rules, s.opts...),
		dealt: &dealtCounter{},
	}
	sess.game.Attach(sess.dealt)
	s.games[chatID] = sess
	return sess
}

func (s *sessions) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
