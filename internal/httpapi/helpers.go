package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/uniapply/uniapply/internal/domain"
)

// defaultUserID serves single-user deployments that send no user header.
const defaultUserID = "default"

func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return defaultUserID
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// profileContext flattens a profile into the background string the assistant
// prompts expect.
func profileContext(p *domain.Profile) string {
	var b strings.Builder
	add := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}
	add("Name", p.Name)
	add("GPA", p.GPA)
	add("Major", p.Major)
	add("Target Major", p.TargetMajor)
	if len(p.Experiences) > 0 {
		add("Experiences", strings.Join(p.Experiences, "; "))
	}
	add("Application Type", p.ApplicationType)
	add("Special Requests", p.SpecialRequests)
	add("Background Notes", p.RawText)
	return strings.TrimSpace(b.String())
}
