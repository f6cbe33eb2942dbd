package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"festquote/models"
)

// Collection names one reference table of the data API.
type Collection string

const (
	CollectionEventTypes Collection = "tipo_evento"
	CollectionEquipment  Collection = "equipamentos"
	CollectionServices   Collection = "servicos_adicionais"
)

// column projections requested for each collection
var projections = map[Collection]string{
	CollectionEventTypes: "id,nome,descricao,icone,preco_base",
	CollectionEquipment:  "id,nome,descricao,imagem,faixa_etaria,capacidade",
	CollectionServices:   "id,nome,descricao",
}

// FetchError is a failed read of one collection.
type FetchError struct {
	Collection Collection
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Collection, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Collection, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client reads reference collections from the REST data API.
type Client struct {
	baseURL     string
	http        *http.Client
	requireAuth bool
}

// NewClient returns a client for baseURL (for example https://xyz.supabase.co/rest/v1).
func NewClient(baseURL string, timeout time.Duration, requireAuth bool) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: timeout},
		requireAuth: requireAuth,
	}
}

func (c *Client) EventTypes(ctx context.Context, auth AuthSession) ([]models.EventType, error) {
	out := []models.EventType{}
	if err := c.get(ctx, CollectionEventTypes, auth, &out); err != nil {
		return []models.EventType{}, err
	}
	return out, nil
}

func (c *Client) Equipment(ctx context.Context, auth AuthSession) ([]models.Equipment, error) {
	out := []models.Equipment{}
	if err := c.get(ctx, CollectionEquipment, auth, &out); err != nil {
		return []models.Equipment{}, err
	}
	return out, nil
}

func (c *Client) Services(ctx context.Context, auth AuthSession) ([]models.AdditionalService, error) {
	out := []models.AdditionalService{}
	if err := c.get(ctx, CollectionServices, auth, &out); err != nil {
		return []models.AdditionalService{}, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, col Collection, auth AuthSession, out interface{}) error {
	headers, err := auth.Headers(c.requireAuth)
	if err != nil {
		return &FetchError{Collection: col, Err: err}
	}

	endpoint := fmt.Sprintf("%s/%s?select=%s", c.baseURL, col, projections[col])
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &FetchError{Collection: col, Err: err}
	}
	req.Header = headers

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Collection: col, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &FetchError{Collection: col, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(body)))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Collection: col, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode body: %w", err)}
	}
	return nil
}
