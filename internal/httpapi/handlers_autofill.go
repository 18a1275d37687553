package httpapi

import (
	"net/http"

	"github.com/uniapply/uniapply/internal/autofill"
)

// handleAutofillRun fills the simulated application form from the profile and
// the most recent essay, returning the completed form and the step log.
func (s *Server) handleAutofillRun(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)

	profile, err := s.store.Profiles.Get(r.Context(), uid)
	if err != nil {
		jsonError(w, "loading profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var essay string
	essays, err := s.store.Essays.ListByUser(r.Context(), uid)
	if err != nil {
		jsonError(w, "loading essays: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(essays) > 0 {
		essay = essays[0].Content
	}

	events := []autofill.Event{}
	form, err := s.autofill.Run(r.Context(), profile, essay, func(e autofill.Event) {
		events = append(events, e)
	})
	if err != nil {
		jsonError(w, "auto-fill interrupted: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"form": form,
		"log":  events,
	})
}
