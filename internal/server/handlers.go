package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/level"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/levelstore"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/logger"
)

// generateRequest is one generation order from a client. A zero seed
// means the flow's own seed (or a random one) is used.
type generateRequest struct {
	Flow      string `json:"flow"`
	Seed      int64  `json:"seed,omitempty"`
	DungeonID int    `json:"dungeon_id,omitempty"`
	Lobby     bool   `json:"lobby,omitempty"`
	Save      bool   `json:"save,omitempty"`
}

type errorReply struct {
	Error string `json:"error"`
}

// generate builds one level for the request, saving it when asked.
func (s *Server) generate(req generateRequest) (*level.Level, error) {
	if req.Flow == "" {
		req.Flow = "default"
	}

	flow, err := s.flows.Load(req.Flow)
	if err != nil {
		return nil, fmt.Errorf("failed to load flow %q: %w", req.Flow, err)
	}

	// The loader shares cached flows, so overrides go on a copy.
	f := *flow
	if req.Seed != 0 {
		f.Seed = req.Seed
	}
	if req.DungeonID != 0 {
		f.DungeonID = req.DungeonID
	}

	ctx := level.ContextFromFlow(&f, s.genConfig)

	var lvl *level.Level
	if req.Lobby {
		lvl, err = level.BuildLobby(ctx)
	} else {
		lvl, err = level.Generate(ctx, req.Flow)
	}
	if err != nil {
		return nil, err
	}

	if req.Save {
		if s.store == nil {
			return nil, errors.New("level store not configured")
		}
		if err := s.store.Save(lvl); err != nil {
			return nil, fmt.Errorf("failed to save level: %w", err)
		}
	}

	return lvl, nil
}

// handleRequest processes one WebSocket message and returns the JSON
// reply to send back.
func (s *Server) handleRequest(message []byte) ([]byte, error) {
	var req generateRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return nil, fmt.Errorf("malformed request: %w", err)
	}

	lvl, err := s.generate(req)
	if err != nil {
		return nil, err
	}

	return lvl.EncodeJSON()
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorReply{Error: "malformed request body"})
		return
	}

	lvl, err := s.generate(req)
	if err != nil {
		logger.Warning("Generation request failed", "flow", req.Flow, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorReply{Error: err.Error()})
		return
	}

	payload, err := lvl.EncodeJSON()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorReply{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (s *Server) handleFlows(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names, err := level.ListFlows(s.serverConfig.FlowDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorReply{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"flows": names})
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorReply{Error: "level store not configured"})
		return
	}

	var (
		summaries []levelstore.Summary
		err       error
	)
	if flow := r.URL.Query().Get("flow"); flow != "" {
		summaries, err = s.store.ListByFlow(flow)
	} else {
		summaries, err = s.store.List()
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorReply{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string][]levelstore.Summary{"levels": summaries})
}

func (s *Server) handleLevelByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorReply{Error: "level store not configured"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/levels/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorReply{Error: "missing level id"})
		return
	}

	lvl, err := s.store.Load(id)
	if err != nil {
		if errors.Is(err, levelstore.ErrLevelNotFound) {
			writeJSON(w, http.StatusNotFound, errorReply{Error: "level not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorReply{Error: err.Error()})
		return
	}

	payload, err := lvl.EncodeJSON()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorReply{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(s.StartTime).Round(time.Second).String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeWSError(conn *websocket.Conn, genErr error) error {
	reply, err := json.Marshal(errorReply{Error: genErr.Error()})
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, reply)
}
