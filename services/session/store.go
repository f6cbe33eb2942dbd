package session

import (
	"context"
	"errors"

	"festquote/models"
)

var (
	ErrSessionNotFound  = errors.New("quote session not found or expired")
	ErrSubmitInFlight   = errors.New("a submission is already in progress for this session")
	ErrSubmitNotAllowed = errors.New("the request cannot be submitted yet")
)

// Store persists quote sessions. Update is an atomic read-modify-write: fn sees the current
// session and its changes are saved only when it returns nil.
type Store interface {
	Create(ctx context.Context, s *models.QuoteSession) error
	Get(ctx context.Context, id string) (*models.QuoteSession, error)
	Update(ctx context.Context, id string, fn func(*models.QuoteSession) error) (*models.QuoteSession, error)
	Delete(ctx context.Context, id string) error
	// AcquireSubmit takes the per-session submit lock. The returned func releases it.
	AcquireSubmit(ctx context.Context, id string) (func(), error)
}

func cloneSession(s models.QuoteSession) models.QuoteSession {
	s.Draft = s.Draft.Clone()
	s.Reference = models.ReferenceDataSet{
		EventTypes: append([]models.EventType{}, s.Reference.EventTypes...),
		Equipment:  append([]models.Equipment{}, s.Reference.Equipment...),
		Services:   append([]models.AdditionalService{}, s.Reference.Services...),
	}
	return s
}
