package httpapi

import (
	"net/http"

	"github.com/uniapply/uniapply/internal/domain"
)

func (s *Server) handleCollegeList(w http.ResponseWriter, r *http.Request) {
	colleges, err := s.store.Colleges.ListByUser(r.Context(), userID(r))
	if err != nil {
		jsonError(w, "listing colleges: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if colleges == nil {
		colleges = []domain.College{}
	}
	writeJSON(w, http.StatusOK, colleges)
}

// handleCollegeRefresh asks the assistant for fresh recommendations based on
// the current profile and replaces the stored list.
func (s *Server) handleCollegeRefresh(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.Profiles.Get(r.Context(), userID(r))
	if err != nil {
		jsonError(w, "loading profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	colleges, err := s.assistant.RecommendColleges(r.Context(), profileContext(profile))
	if err != nil {
		jsonError(w, "recommending colleges: "+err.Error(), http.StatusBadGateway)
		return
	}

	if err := s.store.Colleges.Replace(r.Context(), userID(r), colleges); err != nil {
		jsonError(w, "saving colleges: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if colleges == nil {
		colleges = []domain.College{}
	}
	writeJSON(w, http.StatusOK, colleges)
}
