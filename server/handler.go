// Package server exposes the conversational engine over HTTP. One endpoint
// carries the whole kiosk protocol: the frontend posts an utterance with its
// transcript and gets back the reply, display cards, and cart state.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	bridgex "github.com/ordervoice/kiosk-agent/agent/bridge"
	contractx "github.com/ordervoice/kiosk-agent/agent/contract"
	orchestratorx "github.com/ordervoice/kiosk-agent/agent/orchestrator"
)

type historyEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message   string         `json:"message"`
	History   []historyEntry `json:"history"`
	SessionID string         `json:"sessionId"`
}

type chatResponse struct {
	Response  string                  `json:"response"`
	Cards     []bridgex.Card          `json:"cards"`
	CartState orchestratorx.CartState `json:"cartState"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	orchestrator *orchestratorx.Orchestrator
}

func NewHandler(o *orchestratorx.Orchestrator) *Handler {
	return &Handler{orchestrator: o}
}

// Router mounts the chat endpoint and a liveness probe.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/api/chat", h.handleChat)
	r.Get("/healthz", h.handleHealthz)
	return r
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Message is required"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Message is required"})
		return
	}

	out, err := h.orchestrator.HandleTurn(r.Context(), orchestratorx.TurnRequest{
		SessionID: req.SessionID,
		Message:   req.Message,
		History:   toMessages(req.History),
	})
	if err != nil {
		if errors.Is(err, orchestratorx.ErrInvalidMessage) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Message is required"})
			return
		}
		log.Error().Err(err).Str("sessionId", req.SessionID).Msg("turn failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	cards := out.Cards
	if cards == nil {
		cards = []bridgex.Card{}
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Response:  out.Reply,
		Cards:     cards,
		CartState: out.CartState,
	})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toMessages(history []historyEntry) []contractx.Message {
	if len(history) == 0 {
		return nil
	}
	msgs := make([]contractx.Message, 0, len(history))
	for _, h := range history {
		role := contractx.RoleUser
		if h.Role == string(contractx.RoleAssistant) {
			role = contractx.RoleAssistant
		}
		msgs = append(msgs, contractx.Message{Role: role, Content: h.Content})
	}
	return msgs
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("write response")
	}
}
