package library

import (
	"log/slog"

	"github.com/mmcdole/bookshelf/internal/domain"
)

// Library owns the book collection and the action registry.
// Implements domain.Store and domain.ActionRegistry.
type Library struct {
	books   []domain.Book
	actions []domain.Action
	logger  *slog.Logger
}

// New creates an empty library.
func New(logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{logger: logger}
}

var (
	_ domain.Store          = (*Library)(nil)
	_ domain.ActionRegistry = (*Library)(nil)
)

// AddAction appends a to the registry. Labels are not checked for duplicates.
func (l *Library) AddAction(a domain.Action) {
	l.actions = append(l.actions, a)
	l.logger.Debug("registered action", "label", a.Label, "index", len(l.actions))
}

// Actions returns the registry in registration order.
func (l *Library) Actions() []domain.Action {
	out := make([]domain.Action, len(l.actions))
	copy(out, l.actions)
	return out
}
