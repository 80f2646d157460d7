package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ahacad/financemonitor/config"
	"github.com/Ahacad/financemonitor/internal/cache"
	"github.com/Ahacad/financemonitor/internal/domain/models"
	"github.com/Ahacad/financemonitor/internal/upstream"
)

type memStore struct {
	entries map[string][]byte
	closed  bool
}

func newMemStore() *memStore { return &memStore{entries: map[string][]byte{}} }

func (m *memStore) Get(key string) ([]byte, bool, error) {
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *memStore) Put(key string, value []byte, _ time.Duration) error {
	m.entries[key] = value
	return nil
}

func (m *memStore) Ping() error {
	if m.closed {
		return errors.New("closed")
	}
	return nil
}

func (m *memStore) Close() error {
	m.closed = true
	return nil
}

type stubClient struct{}

func (stubClient) FetchSeries(_ context.Context, id string) (*models.Series, error) {
	return &models.Series{ID: id, FrequencyShort: "M", Observations: []models.Observation{}}, nil
}

// TestInitCacheStore_BadDir expects open failure for an unwritable path.
func TestInitCacheStore_BadDir(t *testing.T) {
	cfg := config.Config{Cache: config.CacheConfig{Dir: "/proc/definitely/not/writable"}}
	store, err := InitCacheStore(cfg)
	if err == nil {
		_ = store.Close()
		t.Fatalf("expected error opening cache in unwritable dir")
	}
}

// TestInitializeApp_StoreFailure ensures InitializeApp returns an error when
// the cache store cannot open.
func TestInitializeApp_StoreFailure(t *testing.T) {
	old := storeOpener
	storeOpener = func(cfg config.Config) (cache.Store, error) { return nil, errors.New("no disk") }
	t.Cleanup(func() { storeOpener = old })

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with failing store opener")
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	store := newMemStore()

	oldStore := storeOpener
	oldClient := clientCtor
	storeOpener = func(cfg config.Config) (cache.Store, error) { return store, nil }
	clientCtor = func(cfg config.Config) upstream.Client { return stubClient{} }
	t.Cleanup(func() {
		storeOpener = oldStore
		clientCtor = oldClient
	})

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: err=%v", err)
	}

	// Hit health endpoints
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w2.Code)
	}

	// A series request flows through service + stub client
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/api/v1/series/GDP", nil))
	if w3.Code != http.StatusOK {
		t.Fatalf("series status=%d body=%s", w3.Code, w3.Body.String())
	}

	// Cleanup closes the store; readiness must degrade afterwards
	cleanup()
	w4 := httptest.NewRecorder()
	router.ServeHTTP(w4, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w4.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz after close status=%d", w4.Code)
	}
}

func TestNewSeriesService_Wiring(t *testing.T) {
	oldStore := storeOpener
	oldClient := clientCtor
	storeOpener = func(cfg config.Config) (cache.Store, error) { return newMemStore(), nil }
	clientCtor = func(cfg config.Config) upstream.Client { return stubClient{} }
	t.Cleanup(func() {
		storeOpener = oldStore
		clientCtor = oldClient
	})

	svc, cleanup, err := NewSeriesService(config.Config{})
	if err != nil || svc == nil {
		t.Fatalf("NewSeriesService: %v", err)
	}
	defer cleanup()

	out, err := svc.GetSeries(context.Background(), "GDP", models.TransformationRequest{})
	if err != nil || out.ID != "GDP" {
		t.Fatalf("service call failed: out=%+v err=%v", out, err)
	}
}
