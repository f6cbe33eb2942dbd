package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"festquote/models"
	"festquote/services/message"

	"go.uber.org/zap"
)

var (
	SuccessNotice = models.Notice{
		Kind:    models.NoticeSuccess,
		Title:   "Solicitação enviada!",
		Message: "Entraremos em contato em breve via WhatsApp.",
	}
	FailureNotice = models.Notice{
		Kind:    models.NoticeError,
		Title:   "Erro ao enviar",
		Message: "Não foi possível enviar a solicitação. Tente novamente.",
	}
)

// LinkOpener hands a deep link to whatever can open it. No response is awaited:
// a nil error means the link was handed off.
type LinkOpener interface {
	Open(ctx context.Context, link string) error
}

// OpenerFunc adapts a function to LinkOpener.
type OpenerFunc func(ctx context.Context, link string) error

func (f OpenerFunc) Open(ctx context.Context, link string) error { return f(ctx, link) }

// Receipt describes a completed dispatch.
type Receipt struct {
	Link    string        `json:"link"`
	Message string        `json:"message"`
	Notice  models.Notice `json:"notice"`
}

// Error is returned when the link could not be handed off. The draft must be kept for retry.
type Error struct {
	Notice models.Notice
	Err    error
}

func (e *Error) Error() string { return "dispatch: " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Dispatcher composes the summary and opens the messaging deep link.
type Dispatcher struct {
	host      string
	recipient string
	opener    LinkOpener
	logger    *zap.Logger
}

// NewDispatcher validates the messaging target. host defaults to wa.me.
func NewDispatcher(host, recipient string, opener LinkOpener, logger *zap.Logger) (*Dispatcher, error) {
	if host == "" {
		host = "wa.me"
	}
	if strings.TrimSpace(recipient) == "" {
		return nil, errors.New("dispatch: recipient id is required")
	}
	if opener == nil {
		return nil, errors.New("dispatch: link opener is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{host: host, recipient: recipient, opener: opener, logger: logger}, nil
}

// Dispatch composes the summary for draft, encodes it into the deep link and opens it.
func (d *Dispatcher) Dispatch(ctx context.Context, draft models.QuoteDraft, ref models.ReferenceDataSet) (*Receipt, error) {
	text := message.Compose(draft, ref)
	link := DeepLink(d.host, d.recipient, text)

	if err := d.opener.Open(ctx, link); err != nil {
		d.logger.Warn("Failed to open messaging link", zap.String("host", d.host), zap.Error(err))
		return nil, &Error{Notice: FailureNotice, Err: err}
	}
	d.logger.Info("Quote request dispatched", zap.String("host", d.host), zap.Int("length", len(text)))
	return &Receipt{Link: link, Message: text, Notice: SuccessNotice}, nil
}

// DeepLink builds https://<host>/<recipient>?text=<percent-encoded text>.
func DeepLink(host, recipient, text string) string {
	return fmt.Sprintf("https://%s/%s?text=%s", host, url.PathEscape(recipient), EncodeComponent(text))
}

// EncodeComponent percent-encodes s for use as a query value, spaces as %20.
func EncodeComponent(s string) string {
	// QueryEscape turns a literal '+' into %2B, so any '+' left is an encoded space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ClientOpener is used when the caller (a browser) opens the link itself.
// It only checks that the link is well formed.
type ClientOpener struct{}

func (ClientOpener) Open(_ context.Context, link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid messaging link: %w", err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("invalid messaging link %q", link)
	}
	return nil
}
