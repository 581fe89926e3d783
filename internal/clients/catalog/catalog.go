package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/hotelops/settlement/internal/service/models/apperr"
	"github.com/hotelops/settlement/pkg/cache"
)

// MenuItem is the catalog record whose name and price get snapshotted into
// order items at creation time.
type MenuItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

// Guest is the guest-directory record referenced by room-service orders.
type Guest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RoomNumber string `json:"room_number"`
}

// Client resolves catalog references. Lookups fail closed: any error aborts
// the enclosing operation rather than proceeding with partial data.
type Client interface {
	MenuItem(ctx context.Context, id string) (*MenuItem, error)
	Guest(ctx context.Context, id string) (*Guest, error)
}

// HTTPClient reaches the data-entry CRUD surface over HTTP with a cache-aside
// Redis layer. Cache failures fall through to the source; source failures
// never fall open.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	cache   cache.Cache
	ttl     time.Duration
}

// NewHTTPClient creates a catalog client from viper configuration.
func NewHTTPClient(c cache.Cache) *HTTPClient {
	timeout := viper.GetInt("catalog.timeout_seconds")
	if timeout == 0 {
		timeout = 5
	}

	ttlSeconds := viper.GetInt("catalog.cache_ttl_seconds")
	if ttlSeconds == 0 {
		ttlSeconds = 300
	}

	return &HTTPClient{
		baseURL: viper.GetString("catalog.base_url"),
		httpc:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		cache:   c,
		ttl:     time.Duration(ttlSeconds) * time.Second,
	}
}

// MenuItem fetches a menu item by id.
func (c *HTTPClient) MenuItem(ctx context.Context, id string) (*MenuItem, error) {
	var item MenuItem
	if err := c.fetch(ctx, "menu_item", "/api/menu-items/"+id, id, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// Guest fetches a guest by id.
func (c *HTTPClient) Guest(ctx context.Context, id string) (*Guest, error) {
	var guest Guest
	if err := c.fetch(ctx, "guest", "/api/guests/"+id, id, &guest); err != nil {
		return nil, err
	}

	return &guest, nil
}

func (c *HTTPClient) fetch(ctx context.Context, operation, path, id string, out any) error {
	key := c.cache.GenerateKey(operation, id)

	if cached, err := c.cache.Get(ctx, key); err != nil {
		slog.Warn("catalog cache read failed", "key", key, "error", err)
	} else if cached != "" {
		if err := json.Unmarshal([]byte(cached), out); err == nil {
			return nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("catalog lookup failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("catalog %s %s: %w", operation, id, apperr.ErrNotFound)
	default:
		return fmt.Errorf("catalog lookup returned status %d", resp.StatusCode)
	}

	body := json.NewDecoder(resp.Body)
	if err := body.Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}

	payload, err := json.Marshal(out)
	if err == nil {
		if err := c.cache.Set(ctx, key, payload, c.ttl); err != nil {
			slog.Warn("catalog cache write failed", "key", key, "error", err)
		}
	}

	return nil
}
