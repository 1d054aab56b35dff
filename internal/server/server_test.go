package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/config"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/level"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/levelstore"
)

const depthsFlow = `grid_width: 160
grid_height: 120
tile_size: 32
seed: 1234
corridor_style: bridges
`

func writeTestFlow(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write flow file: %v", err)
	}
}

// newTestServer builds a server over a temp flow directory holding one
// "depths" flow, served through httptest.
func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	flowDir := t.TempDir()
	writeTestFlow(t, flowDir, "depths", depthsFlow)

	srvCfg := config.DefaultServerConfig()
	srvCfg.FlowDir = flowDir

	s := NewServer(config.DefaultConfig(), srvCfg)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func wsURL(ts *httptest.Server) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func postGenerate(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/generate", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST /generate failed: %v", err)
	}
	return resp
}

func decodeLevelBody(t *testing.T, resp *http.Response) *level.Level {
	t.Helper()
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	lvl, err := level.DecodeJSON(buf.Bytes())
	if err != nil {
		t.Fatalf("failed to decode level: %v", err)
	}
	return lvl
}

func TestHandleGenerate(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postGenerate(t, ts, `{"flow": "depths", "seed": 99}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	lvl := decodeLevelBody(t, resp)
	if lvl.Flow != "depths" {
		t.Errorf("flow = %q, want %q", lvl.Flow, "depths")
	}
	if lvl.Seed != 99 {
		t.Errorf("seed = %d, want 99 (request seed should override the flow's)", lvl.Seed)
	}
	if len(lvl.Rooms) < 2 {
		t.Errorf("generated %d rooms, want at least 2", len(lvl.Rooms))
	}
}

func TestHandleGenerateFlowSeed(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postGenerate(t, ts, `{"flow": "depths"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	lvl := decodeLevelBody(t, resp)
	if lvl.Seed != 1234 {
		t.Errorf("seed = %d, want the flow's 1234", lvl.Seed)
	}
}

func TestHandleGenerateMethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/generate")
	if err != nil {
		t.Fatalf("GET /generate failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHandleGenerateMalformedBody(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postGenerate(t, ts, `{oops`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleFlows(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/flows")
	if err != nil {
		t.Fatalf("GET /flows failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var reply struct {
		Flows []string `json:"flows"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		t.Fatalf("failed to decode reply: %v", err)
	}
	if len(reply.Flows) != 1 || reply.Flows[0] != "depths" {
		t.Errorf("flows = %v, want [depths]", reply.Flows)
	}
}

func TestHandleLevelsRequiresStore(t *testing.T) {
	_, ts := newTestServer(t)

	for _, path := range []string{"/levels", "/levels/some-id"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s failed: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("GET %s status = %d, want 503", path, resp.StatusCode)
		}
	}
}

func TestHandleHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var reply map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		t.Fatalf("failed to decode reply: %v", err)
	}
	if reply["status"] != "ok" {
		t.Errorf("status = %q, want %q", reply["status"], "ok")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	s, ts := newTestServer(t)

	store, err := levelstore.Open(levelstore.DefaultConfig(filepath.Join(t.TempDir(), "levels.db")))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	s.SetStore(store)

	resp := postGenerate(t, ts, `{"flow": "depths", "save": true}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	saved := decodeLevelBody(t, resp)

	// The saved level comes back by ID
	resp, err = http.Get(ts.URL + "/levels/" + saved.ID)
	if err != nil {
		t.Fatalf("GET /levels/%s failed: %v", saved.ID, err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	loaded := decodeLevelBody(t, resp)
	if loaded.ID != saved.ID || loaded.Seed != saved.Seed {
		t.Errorf("loaded level %s seed %d, want %s seed %d",
			loaded.ID, loaded.Seed, saved.ID, saved.Seed)
	}

	// And shows up in the listing
	resp, err = http.Get(ts.URL + "/levels")
	if err != nil {
		t.Fatalf("GET /levels failed: %v", err)
	}
	defer resp.Body.Close()
	var listing struct {
		Levels []levelstore.Summary `json:"levels"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(listing.Levels) != 1 || listing.Levels[0].ID != saved.ID {
		t.Errorf("listing = %+v, want one entry for %s", listing.Levels, saved.ID)
	}
}

func TestHandleLevelNotFound(t *testing.T) {
	s, ts := newTestServer(t)

	store, err := levelstore.Open(levelstore.DefaultConfig(filepath.Join(t.TempDir(), "levels.db")))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	s.SetStore(store)

	resp, err := http.Get(ts.URL + "/levels/no-such-level")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestWebSocketSession(t *testing.T) {
	_, ts := newTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts), nil)
	if err != nil {
		t.Fatalf("WebSocket dial failed: %v", err)
	}
	defer conn.Close()

	// A generation request gets the exported level back
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"flow": "depths", "seed": 7}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	_, reply, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	lvl, err := level.DecodeJSON(reply)
	if err != nil {
		t.Fatalf("failed to decode level: %v", err)
	}
	if lvl.Flow != "depths" || lvl.Seed != 7 {
		t.Errorf("got flow %q seed %d, want depths seed 7", lvl.Flow, lvl.Seed)
	}

	// The same session handles a lobby request
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"lobby": true}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	_, reply, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	lobby, err := level.DecodeJSON(reply)
	if err != nil {
		t.Fatalf("failed to decode lobby level: %v", err)
	}
	if lobby.Flow != "lobby" {
		t.Errorf("flow = %q, want %q", lobby.Flow, "lobby")
	}

	// A malformed request gets an error reply, not a dropped session
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{oops`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	_, reply, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var errReply struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(reply, &errReply); err != nil {
		t.Fatalf("failed to decode error reply: %v", err)
	}
	if errReply.Error == "" {
		t.Error("expected an error reply for a malformed request")
	}

	// The session survives the bad request
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"flow": "depths"}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("session dropped after malformed request: %v", err)
	}
}

func TestWebSocketOriginRejected(t *testing.T) {
	flowDir := t.TempDir()
	writeTestFlow(t, flowDir, "depths", depthsFlow)

	srvCfg := config.DefaultServerConfig()
	srvCfg.FlowDir = flowDir
	srvCfg.WebSocket.AllowedOrigins = []string{"http://goodhost"}

	s := NewServer(config.DefaultConfig(), srvCfg)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	header := http.Header{}
	header.Set("Origin", "http://evil.example")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts), header)
	if err == nil {
		conn.Close()
		t.Fatal("expected handshake to fail for a disallowed origin")
	}
}

func TestWebSocketConnectionLimit(t *testing.T) {
	flowDir := t.TempDir()
	writeTestFlow(t, flowDir, "depths", depthsFlow)

	srvCfg := config.DefaultServerConfig()
	srvCfg.FlowDir = flowDir
	srvCfg.Connections.MaxPerIP = 1

	s := NewServer(config.DefaultConfig(), srvCfg)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	first, _, err := websocket.DefaultDialer.Dial(wsURL(ts), nil)
	if err != nil {
		t.Fatalf("first dial failed: %v", err)
	}
	defer first.Close()

	second, resp, err := websocket.DefaultDialer.Dial(wsURL(ts), nil)
	if err == nil {
		second.Close()
		t.Fatal("expected second session from the same IP to be rejected")
	}
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected 429 response, got %+v", resp)
	}
}
