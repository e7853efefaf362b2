package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	menux "github.com/ordervoice/kiosk-agent/agent/menu"
)

var ErrNilCatalog = errors.New("menu catalog is required")

const (
	defaultKeyPrefix     = "kiosk:cart:"
	defaultTTL           = 24 * time.Hour
	maxResponseSizeBytes = 2 << 20
)

// RedisStore persists cart snapshots in Upstash Redis via its REST API. The
// in-memory store is fine for a single process; this one survives restarts
// and lets several replicas share sessions. Per-session serialization is
// still process-local; concurrent turns for one session on different
// replicas can interleave.
type RedisStore struct {
	baseURL    string
	token      string
	httpClient *http.Client
	keyPrefix  string
	ttl        time.Duration
	catalog    menux.Catalog

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

type RedisConfig struct {
	URL     string        `envconfig:"URL" split_words:"true"`
	Token   string        `envconfig:"TOKEN" split_words:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// RedisOption customizes RedisStore.
type RedisOption func(*RedisStore)

func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			s.keyPrefix = trimmed
		}
	}
}

func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

func WithHTTPClient(client *http.Client) RedisOption {
	return func(s *RedisStore) {
		if client != nil {
			s.httpClient = client
		}
	}
}

func NewRedisStore(cfg RedisConfig, catalog menux.Catalog, opts ...RedisOption) (*RedisStore, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("redis rest url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid redis rest url: %w", err)
	}

	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("redis rest token is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	store := &RedisStore{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		keyPrefix:  defaultKeyPrefix,
		ttl:        defaultTTL,
		catalog:    catalog,
		locks:      make(map[string]*sync.Mutex),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}
	if store.ttl < 0 {
		return nil, errors.New("ttl must be >= 0")
	}

	return store, nil
}

// cartSnapshot is the wire form: item ids and quantities only. Prices and
// names are rehydrated from the catalog so a menu change never leaves stale
// prices in stored carts.
type cartSnapshot struct {
	Items []snapshotRow `json:"items"`
}

type snapshotRow struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

func (s *RedisStore) WithCart(ctx context.Context, sessionID string, fn func(c *Cart) error) error {
	if strings.TrimSpace(sessionID) == "" {
		return errors.New("session id is empty")
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	return s.save(ctx, sessionID, c)
}

func (s *RedisStore) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

func (s *RedisStore) load(ctx context.Context, sessionID string) (*Cart, error) {
	resp, err := s.exec(ctx, []any{"GET", s.keyPrefix + sessionID})
	if err != nil {
		return nil, err
	}

	result := bytes.TrimSpace(resp.Result)
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return New(), nil
	}

	var encoded string
	if err := json.Unmarshal(result, &encoded); err != nil {
		return nil, fmt.Errorf("decode cart payload: %w", err)
	}

	var snap cartSnapshot
	if err := json.Unmarshal([]byte(encoded), &snap); err != nil {
		return nil, fmt.Errorf("unmarshal cart snapshot: %w", err)
	}

	c := New()
	for _, row := range snap.Items {
		mi, ok := s.catalog.Get(row.ID)
		if !ok {
			// Item left the menu since the cart was stored; drop the row.
			continue
		}
		c.Add(mi, row.Quantity)
	}
	return c, nil
}

func (s *RedisStore) save(ctx context.Context, sessionID string, c *Cart) error {
	snap := cartSnapshot{Items: make([]snapshotRow, 0, len(c.Items()))}
	for _, it := range c.Items() {
		snap.Items = append(snap.Items, snapshotRow{ID: it.MenuItem.ID, Quantity: it.Quantity})
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal cart snapshot: %w", err)
	}

	cmd := []any{"SET", s.keyPrefix + sessionID, string(payload)}
	if s.ttl > 0 {
		cmd = append(cmd, "EX", ttlSeconds(s.ttl))
	}

	_, err = s.exec(ctx, cmd)
	return err
}

type redisRESTResponse struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

func (s *RedisStore) exec(ctx context.Context, command []any) (*redisRESTResponse, error) {
	body, err := json.Marshal(command)
	if err != nil {
		return nil, fmt.Errorf("marshal redis command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build redis request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute redis request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return nil, fmt.Errorf("read redis response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("redis http status=%d body=%s", resp.StatusCode, string(raw))
	}

	var parsed redisRESTResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode redis response: %w", err)
	}
	if parsed.Error != "" {
		return nil, errors.New(parsed.Error)
	}
	return &parsed, nil
}

func ttlSeconds(ttl time.Duration) int64 {
	seconds := ttl / time.Second
	if seconds <= 0 {
		return 1
	}
	if ttl%time.Second != 0 {
		seconds++
	}
	return int64(seconds)
}
