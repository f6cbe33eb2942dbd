package session

import (
	"context"

	"festquote/models"
	"festquote/services/catalog"
	"festquote/services/dispatch"
	"festquote/services/quote"
)

// QuoteSessionService defines the wizard session operations the hosts drive.
type QuoteSessionService interface {
	Open(ctx context.Context) (*models.QuoteSession, error)
	LoadReference(ctx context.Context, id string, auth catalog.AuthSession) (*models.QuoteSession, *models.Notice, error)
	Get(ctx context.Context, id string) (*models.QuoteSession, error)
	UpdateField(ctx context.Context, id string, field quote.Field, value interface{}) (*models.QuoteSession, error)
	UpdateContact(ctx context.Context, id string, field quote.ContactField, value string) (*models.QuoteSession, error)
	ToggleEquipment(ctx context.Context, id, itemID string) (*models.QuoteSession, error)
	ToggleService(ctx context.Context, id, itemID string) (*models.QuoteSession, error)
	Advance(ctx context.Context, id string) (*models.QuoteSession, error)
	Retreat(ctx context.Context, id string) (*models.QuoteSession, error)
	GoTo(ctx context.Context, id string, step models.Step) (*models.QuoteSession, error)
	Reset(ctx context.Context, id string) (*models.QuoteSession, error)
	Summary(ctx context.Context, id string) (string, error)
	Submit(ctx context.Context, id string) (*dispatch.Receipt, error)
	Close(ctx context.Context, id string) error
}

var _ QuoteSessionService = (*DefaultQuoteSessionService)(nil)
