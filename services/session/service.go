// Package session hosts wizard sessions: one opened wizard is one stored QuoteSession,
// moved through the quote state machine by the operations below.
package session

import (
	"context"
	"errors"
	"time"

	"festquote/models"
	"festquote/services/catalog"
	"festquote/services/dispatch"
	"festquote/services/message"
	"festquote/services/quote"
	"festquote/services/steps"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReferenceLoader interface {
	Load(ctx context.Context, auth catalog.AuthSession) (models.ReferenceDataSet, []*catalog.FetchError)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, draft models.QuoteDraft, ref models.ReferenceDataSet) (*dispatch.Receipt, error)
}

// DefaultSubmitTimeout bounds one dispatch. A session still marked submitting after it
// is treated as abandoned.
const DefaultSubmitTimeout = 30 * time.Second

type DefaultQuoteSessionService struct {
	store         Store
	loader        ReferenceLoader
	dispatcher    Dispatcher
	logger        *zap.Logger
	now           func() time.Time
	submitTimeout time.Duration
}

func NewService(store Store, loader ReferenceLoader, dispatcher Dispatcher, logger *zap.Logger) *DefaultQuoteSessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultQuoteSessionService{
		store:         store,
		loader:        loader,
		dispatcher:    dispatcher,
		logger:        logger,
		now:           time.Now,
		submitTimeout: DefaultSubmitTimeout,
	}
}

// WithSubmitTimeout sets the dispatch bound; it should match the store's submit lock TTL.
func (s *DefaultQuoteSessionService) WithSubmitTimeout(d time.Duration) *DefaultQuoteSessionService {
	if d > 0 {
		s.submitTimeout = d
	}
	return s
}

// Open creates a session on the first step with a default draft and an empty reference set.
func (s *DefaultQuoteSessionService) Open(ctx context.Context) (*models.QuoteSession, error) {
	now := s.now()
	sess := &models.QuoteSession{
		ID:        uuid.New().String(),
		Step:      models.MinStep,
		Draft:     models.NewQuoteDraft(),
		Phase:     models.PhaseIdle,
		Reference: models.NewReferenceDataSet(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.Debug("Quote session opened", zap.String("sessionId", sess.ID))
	return sess, nil
}

// LoadReference fetches the reference collections and attaches them to the session.
// A session closed while the fetch runs is left alone and ErrSessionNotFound is returned.
// The notice is set when at least one collection failed to load.
func (s *DefaultQuoteSessionService) LoadReference(ctx context.Context, id string, auth catalog.AuthSession) (*models.QuoteSession, *models.Notice, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, nil, err
	}

	ref, fetchErrs := s.loader.Load(ctx, auth)
	var notice *models.Notice
	if len(fetchErrs) > 0 {
		n := catalog.LoadFailedNotice
		notice = &n
	}

	sess, err := s.store.Update(ctx, id, func(qs *models.QuoteSession) error {
		qs.Reference = ref
		qs.ReferenceLoaded = true
		qs.UpdatedAt = s.now()
		return nil
	})
	if errors.Is(err, ErrSessionNotFound) {
		s.logger.Debug("Quote session closed before reference data arrived", zap.String("sessionId", id))
		return nil, nil, err
	}
	if err != nil {
		return nil, nil, err
	}
	return sess, notice, nil
}

func (s *DefaultQuoteSessionService) Get(ctx context.Context, id string) (*models.QuoteSession, error) {
	return s.store.Get(ctx, id)
}

func (s *DefaultQuoteSessionService) UpdateField(ctx context.Context, id string, field quote.Field, value interface{}) (*models.QuoteSession, error) {
	return s.mutate(ctx, id, func(w *quote.Wizard) error {
		return w.UpdateField(field, value)
	})
}

// UpdateContact applies the field's input mask before storing the value.
func (s *DefaultQuoteSessionService) UpdateContact(ctx context.Context, id string, field quote.ContactField, value string) (*models.QuoteSession, error) {
	return s.mutate(ctx, id, func(w *quote.Wizard) error {
		return w.UpdateContactField(field, steps.NormalizeContactInput(field, value))
	})
}

func (s *DefaultQuoteSessionService) ToggleEquipment(ctx context.Context, id, itemID string) (*models.QuoteSession, error) {
	return s.mutate(ctx, id, func(w *quote.Wizard) error {
		w.ToggleEquipment(itemID)
		return nil
	})
}

func (s *DefaultQuoteSessionService) ToggleService(ctx context.Context, id, itemID string) (*models.QuoteSession, error) {
	return s.mutate(ctx, id, func(w *quote.Wizard) error {
		w.ToggleService(itemID)
		return nil
	})
}

// Advance leaves the step unchanged when the current gate is closed.
func (s *DefaultQuoteSessionService) Advance(ctx context.Context, id string) (*models.QuoteSession, error) {
	return s.mutate(ctx, id, func(w *quote.Wizard) error {
		w.Advance()
		return nil
	})
}

func (s *DefaultQuoteSessionService) Retreat(ctx context.Context, id string) (*models.QuoteSession, error) {
	return s.mutate(ctx, id, func(w *quote.Wizard) error {
		w.Retreat()
		return nil
	})
}

// GoTo jumps to any valid step without consulting the gates.
func (s *DefaultQuoteSessionService) GoTo(ctx context.Context, id string, step models.Step) (*models.QuoteSession, error) {
	return s.mutate(ctx, id, func(w *quote.Wizard) error {
		w.GoTo(step)
		return nil
	})
}

func (s *DefaultQuoteSessionService) Reset(ctx context.Context, id string) (*models.QuoteSession, error) {
	return s.mutate(ctx, id, func(w *quote.Wizard) error {
		w.Reset()
		return nil
	})
}

// Summary composes the message the current draft would send.
func (s *DefaultQuoteSessionService) Summary(ctx context.Context, id string) (string, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return message.Compose(sess.Draft, sess.Reference), nil
}

// Submit dispatches the composed request. On success the session is closed; on failure
// it returns to the idle phase with its draft intact and the error carries the failure notice.
func (s *DefaultQuoteSessionService) Submit(ctx context.Context, id string) (*dispatch.Receipt, error) {
	release, err := s.store.AcquireSubmit(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	sess, err := s.store.Update(ctx, id, func(qs *models.QuoteSession) error {
		if qs.Step != models.MaxStep || !quote.SubmitGate(qs.Draft.Contact).Enabled {
			return ErrSubmitNotAllowed
		}
		// The lock is ours, so a submitting phase here was left by an interrupted submit.
		if qs.Phase == models.PhaseSubmitting {
			s.logger.Warn("Recovering quote session stuck in submitting", zap.String("sessionId", id))
		}
		now := s.now()
		qs.Phase = models.PhaseSubmitting
		qs.SubmittingSince = &now
		qs.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	dctx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	receipt, err := s.dispatcher.Dispatch(dctx, sess.Draft, sess.Reference)
	cancel()

	// The request may be gone by now; the outcome is still recorded.
	bg := context.WithoutCancel(ctx)
	if err != nil {
		if _, rerr := s.store.Update(bg, id, func(qs *models.QuoteSession) error {
			qs.Phase = models.PhaseIdle
			qs.SubmittingSince = nil
			qs.UpdatedAt = s.now()
			return nil
		}); rerr != nil && !errors.Is(rerr, ErrSessionNotFound) {
			s.logger.Error("Failed to restore quote session after dispatch failure", zap.String("sessionId", id), zap.Error(rerr))
		}
		return nil, err
	}

	if err := s.store.Delete(bg, id); err != nil {
		s.logger.Warn("Failed to close submitted quote session", zap.String("sessionId", id), zap.Error(err))
	}
	s.logger.Info("Quote request submitted", zap.String("sessionId", id))
	return receipt, nil
}

// Close discards the session and its draft.
func (s *DefaultQuoteSessionService) Close(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *DefaultQuoteSessionService) mutate(ctx context.Context, id string, fn func(w *quote.Wizard) error) (*models.QuoteSession, error) {
	return s.store.Update(ctx, id, func(qs *models.QuoteSession) error {
		if qs.Phase == models.PhaseSubmitting {
			if !s.submitAbandoned(qs) {
				return ErrSubmitInFlight
			}
			qs.Phase = models.PhaseIdle
			qs.SubmittingSince = nil
		}
		w := quote.FromSession(qs.Step, qs.Draft)
		if err := fn(w); err != nil {
			return err
		}
		qs.Step = w.Step
		qs.Draft = w.Draft
		qs.UpdatedAt = s.now()
		return nil
	})
}

// submitAbandoned reports whether a submitting phase has outlived the dispatch bound.
func (s *DefaultQuoteSessionService) submitAbandoned(qs *models.QuoteSession) bool {
	return qs.SubmittingSince == nil || s.now().Sub(*qs.SubmittingSince) >= s.submitTimeout
}
