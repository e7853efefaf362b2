package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	menux "github.com/ordervoice/kiosk-agent/agent/menu"
)

// fakeUpstash speaks just enough of the Upstash REST protocol: a JSON array
// command in, {"result": ...} out.
type fakeUpstash struct {
	mu   sync.Mutex
	data map[string]string
}

func (f *fakeUpstash) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd []any
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil || len(cmd) < 2 {
			http.Error(w, `{"error":"bad command"}`, http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()

		name, _ := cmd[0].(string)
		key, _ := cmd[1].(string)
		switch name {
		case "GET":
			val, ok := f.data[key]
			if !ok {
				fmt.Fprint(w, `{"result":null}`)
				return
			}
			out, _ := json.Marshal(map[string]any{"result": val})
			w.Write(out)
		case "SET":
			val, _ := cmd[2].(string)
			f.data[key] = val
			fmt.Fprint(w, `{"result":"OK"}`)
		default:
			fmt.Fprintf(w, `{"error":"unsupported command %s"}`, name)
		}
	}
}

func newTestRedisStore(t *testing.T) (*RedisStore, *fakeUpstash) {
	t.Helper()

	fake := &fakeUpstash{data: make(map[string]string)}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	store, err := NewRedisStore(RedisConfig{URL: srv.URL, Token: "test-token"}, menux.NewStatic())
	if err != nil {
		t.Fatalf("new redis store: %v", err)
	}
	return store, fake
}

func TestRedisStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestRedisStore(t)
	catalog := menux.NewStatic()
	kungPao, _ := catalog.Get("kung-pao-chicken")

	err := store.WithCart(context.Background(), "s1", func(c *Cart) error {
		c.Add(kungPao, 2)
		return nil
	})
	if err != nil {
		t.Fatalf("first turn: %v", err)
	}

	var got int
	err = store.WithCart(context.Background(), "s1", func(c *Cart) error {
		got = c.UnitCount()
		return nil
	})
	if err != nil {
		t.Fatalf("second turn: %v", err)
	}
	if got != 2 {
		t.Fatalf("rehydrated unit count = %d, want 2", got)
	}
}

func TestRedisStoreDropsItemsNoLongerOnMenu(t *testing.T) {
	t.Parallel()

	store, fake := newTestRedisStore(t)
	fake.mu.Lock()
	fake.data[defaultKeyPrefix+"s1"] = `{"items":[{"id":"discontinued-dish","quantity":4},{"id":"spring-rolls","quantity":1}]}`
	fake.mu.Unlock()

	var ids []string
	err := store.WithCart(context.Background(), "s1", func(c *Cart) error {
		for _, it := range c.Items() {
			ids = append(ids, it.MenuItem.ID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != "spring-rolls" {
		t.Fatalf("unexpected rehydrated rows: %v", ids)
	}
}

func TestNewRedisStoreValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewRedisStore(RedisConfig{URL: "", Token: "x"}, menux.NewStatic()); err == nil {
		t.Fatal("expected error for missing url")
	}
	if _, err := NewRedisStore(RedisConfig{URL: "https://example.upstash.io", Token: ""}, menux.NewStatic()); err == nil {
		t.Fatal("expected error for missing token")
	}
	if _, err := NewRedisStore(RedisConfig{URL: "https://example.upstash.io", Token: "x"}, nil); err == nil {
		t.Fatal("expected error for nil catalog")
	}
}
