package es

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

// fakeCluster answers every request with one canned response and records
// what it was sent.
type fakeCluster struct {
	t      *testing.T
	status int
	body   []byte

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeCluster(t *testing.T, status int, fixture string) *fakeCluster {
	t.Helper()
	return &fakeCluster{t: t, status: status, body: readFixture(t, fixture)}
}

func newRawFakeCluster(t *testing.T, status int, body string) *fakeCluster {
	return &fakeCluster{t: t, status: status, body: []byte(body)}
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &rec.Body)
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = w.Write(f.body)
}

// client starts the fake cluster and returns a typed client bound to it.
func (f *fakeCluster) client() *elasticsearch.TypedClient {
	f.t.Helper()
	srv := httptest.NewServer(f)
	f.t.Cleanup(srv.Close)

	client, err := NewClient(ClientConfig{Addresses: []string{srv.URL}, DisableRetry: true})
	require.NoError(f.t, err)
	return client
}

func (f *fakeCluster) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeCluster) LastRequest() recordedRequest {
	f.t.Helper()
	reqs := f.Requests()
	require.NotEmpty(f.t, reqs)
	return reqs[len(reqs)-1]
}

// unreachableClient returns a client pointing at a closed listener.
func unreachableClient(t *testing.T) *elasticsearch.TypedClient {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	client, err := NewClient(ClientConfig{Addresses: []string{addr}, DisableRetry: true})
	require.NoError(t, err)
	return client
}
