package e2e

import (
    "bytes"
    "context"
    "encoding/json"
    "io"
    "net/http"
    "net/http/httptest"
    "net/url"
    "strings"
    "sync"
    "testing"
    "time"

    "demodash/internal/dashboard"
    "demodash/internal/httpapi"
)

// fakeDemo stands in for a hosted demo: it records predict payloads and
// answers with a canned reply.
type fakeDemo struct {
    mu       sync.Mutex
    payloads []map[string]any
    status   int
    body     string
    delay    time.Duration
}

func (f *fakeDemo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
    if r.URL.Path != "/api/predict/" {
        http.NotFound(w, r)
        return
    }
    b, _ := io.ReadAll(r.Body)
    var p map[string]any
    _ = json.Unmarshal(b, &p)
    f.mu.Lock()
    f.payloads = append(f.payloads, p)
    status, body, delay := f.status, f.body, f.delay
    f.mu.Unlock()
    if delay > 0 {
        select {
        case <-time.After(delay):
        case <-r.Context().Done():
            return
        }
    }
    if status == 0 { status = http.StatusOK }
    w.WriteHeader(status)
    _, _ = io.WriteString(w, body)
}

func (f *fakeDemo) calls() []map[string]any {
    f.mu.Lock()
    defer f.mu.Unlock()
    return append([]map[string]any(nil), f.payloads...)
}

// newStack starts a fake demo and a dashboard server wired to it.
func newStack(t *testing.T, demo *fakeDemo, mutate func(*dashboard.Config)) (*httptest.Server, *httptest.Server) {
    t.Helper()
    upstream := httptest.NewServer(demo)
    t.Cleanup(upstream.Close)
    cfg := dashboard.Config{
        Title:          "E2E Dash",
        BaseURL:        upstream.URL + "/",
        DefaultHeight:  800,
        PredictEnabled: true,
        PredictTimeout: 2 * time.Second,
        PreviewChars:   1000,
    }
    if mutate != nil { mutate(&cfg) }
    dash, err := dashboard.New(cfg)
    if err != nil { t.Fatalf("dashboard: %v", err) }
    srv := httptest.NewServer(httpapi.NewMux(dash))
    t.Cleanup(srv.Close)
    return upstream, srv
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
    t.Helper()
    req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
    if err != nil { t.Fatalf("new req: %v", err) }
    client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
    resp, err := client.Do(req)
    if err != nil { t.Fatalf("do req: %v", err) }
    body, _ := io.ReadAll(resp.Body)
    _ = resp.Body.Close()
    return resp, body
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
    t.Helper()
    req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
    if err != nil { t.Fatalf("new req: %v", err) }
    req.Header.Set("Content-Type", "application/json")
    resp, err := http.DefaultClient.Do(req)
    if err != nil { t.Fatalf("do req: %v", err) }
    body, _ := io.ReadAll(resp.Body)
    _ = resp.Body.Close()
    return resp, body
}

func httpPostForm(t *testing.T, target string, v url.Values) (*http.Response, []byte) {
    t.Helper()
    req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, target, strings.NewReader(v.Encode()))
    if err != nil { t.Fatalf("new req: %v", err) }
    req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
    resp, err := http.DefaultClient.Do(req)
    if err != nil { t.Fatalf("do req: %v", err) }
    body, _ := io.ReadAll(resp.Body)
    _ = resp.Body.Close()
    return resp, body
}
