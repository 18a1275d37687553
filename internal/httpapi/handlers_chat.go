package httpapi

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/uniapply/uniapply/internal/domain"
)

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.store.Chat.History(r.Context(), userID(r))
	if err != nil {
		jsonError(w, "loading chat history: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

// handleChatSend appends the user message, asks the consultant for a reply
// and appends that too, so the stored history always stays in lockstep with
// what the user saw.
func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		jsonError(w, "message is required", http.StatusBadRequest)
		return
	}

	uid := userID(r)
	history, err := s.store.Chat.History(r.Context(), uid)
	if err != nil {
		jsonError(w, "loading chat history: "+err.Error(), http.StatusInternalServerError)
		return
	}

	reply, err := s.assistant.Chat(r.Context(), history, req.Message)
	if err != nil {
		jsonError(w, "generating reply: "+err.Error(), http.StatusBadGateway)
		return
	}

	userMsg := &domain.ChatMessage{
		ID: uuid.NewString(), UserID: uid, Role: "user", Content: req.Message,
	}
	if err := s.store.Chat.Append(r.Context(), userMsg); err != nil {
		jsonError(w, "saving message: "+err.Error(), http.StatusInternalServerError)
		return
	}
	aiMsg := &domain.ChatMessage{
		ID: uuid.NewString(), UserID: uid, Role: "ai", Content: reply,
	}
	if err := s.store.Chat.Append(r.Context(), aiMsg); err != nil {
		jsonError(w, "saving reply: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, aiMsg)
}

func (s *Server) handleChatClear(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Chat.Clear(r.Context(), userID(r)); err != nil {
		jsonError(w, "clearing chat history: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
