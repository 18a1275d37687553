package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/uniapply/uniapply/internal/domain"
	"github.com/uniapply/uniapply/internal/store"
)

func (s *Server) handleEssayList(w http.ResponseWriter, r *http.Request) {
	essays, err := s.store.Essays.ListByUser(r.Context(), userID(r))
	if err != nil {
		jsonError(w, "listing essays: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if essays == nil {
		essays = []*domain.Essay{}
	}
	writeJSON(w, http.StatusOK, essays)
}

func (s *Server) handleEssaySave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID      string `json:"id"`
		Prompt  string `json:"prompt"`
		Content string `json:"content"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	essay := &domain.Essay{
		ID:        req.ID,
		UserID:    userID(r),
		Prompt:    req.Prompt,
		Content:   req.Content,
		WordCount: len(strings.Fields(req.Content)),
	}
	if err := s.store.Essays.Save(r.Context(), essay); err != nil {
		jsonError(w, "saving essay: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, essay)
}

// handleEssayGenerate drafts an essay from the prompt and the user's profile
// background, then stores it.
func (s *Server) handleEssayGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Prompt == "" {
		jsonError(w, "prompt is required", http.StatusBadRequest)
		return
	}

	profile, err := s.store.Profiles.Get(r.Context(), userID(r))
	if err != nil {
		jsonError(w, "loading profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	content, err := s.assistant.GenerateEssay(r.Context(), req.Prompt, profileContext(profile))
	if err != nil {
		jsonError(w, "generating essay: "+err.Error(), http.StatusBadGateway)
		return
	}

	essay := &domain.Essay{
		ID:        uuid.NewString(),
		UserID:    userID(r),
		Prompt:    req.Prompt,
		Content:   content,
		WordCount: len(strings.Fields(content)),
	}
	if err := s.store.Essays.Save(r.Context(), essay); err != nil {
		jsonError(w, "saving essay: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, essay)
}

func (s *Server) handleEssayScore(w http.ResponseWriter, r *http.Request) {
	essay, ok := s.loadUserEssay(w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(essay.Content) == "" {
		jsonError(w, "essay has no content to score", http.StatusBadRequest)
		return
	}

	score, err := s.assistant.ScoreEssay(r.Context(), essay.Content)
	if err != nil {
		jsonError(w, "scoring essay: "+err.Error(), http.StatusBadGateway)
		return
	}

	essay.Score = score
	if err := s.store.Essays.Save(r.Context(), essay); err != nil {
		jsonError(w, "saving essay: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, essay)
}

func (s *Server) handleEssayExportPDF(w http.ResponseWriter, r *http.Request) {
	essay, ok := s.loadUserEssay(w, r)
	if !ok {
		return
	}

	html, err := s.essays.Render(essay.Prompt, essay.Content)
	if err != nil {
		jsonError(w, "rendering essay: "+err.Error(), http.StatusInternalServerError)
		return
	}
	pdf, err := s.resume.PrintHTML(r.Context(), html)
	if err != nil {
		jsonError(w, "printing essay: "+err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="essay.pdf"`)
	w.Write(pdf)
}

// loadUserEssay fetches the essay in the URL and verifies it belongs to the
// requesting user.
func (s *Server) loadUserEssay(w http.ResponseWriter, r *http.Request) (*domain.Essay, bool) {
	essay, err := s.store.Essays.Get(r.Context(), chi.URLParam(r, "essayID"))
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, "essay not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		jsonError(w, "loading essay: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	if essay.UserID != userID(r) {
		jsonError(w, "essay not found", http.StatusNotFound)
		return nil, false
	}
	return essay, true
}
