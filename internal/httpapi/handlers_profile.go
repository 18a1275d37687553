package httpapi

import (
	"errors"
	"net/http"

	"github.com/uniapply/uniapply/internal/domain"
	"github.com/uniapply/uniapply/internal/extract"
)

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.Profiles.Get(r.Context(), userID(r))
	if err != nil {
		jsonError(w, "loading profile: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleProfilePut(w http.ResponseWriter, r *http.Request) {
	var profile domain.Profile
	if !decodeBody(w, r, &profile) {
		return
	}
	profile.UserID = userID(r)
	if err := s.store.Profiles.Upsert(r.Context(), &profile); err != nil {
		jsonError(w, "saving profile: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, &profile)
}

// handleProfileUpload accepts a background document, extracts its text and
// lets the assistant fill in profile fields. Fields the user already saved by
// hand are kept when the extraction comes back empty.
func (s *Server) handleProfileUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "missing file upload: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !extract.Supported(header.Filename) {
		jsonError(w, "unsupported file type: "+header.Filename, http.StatusUnsupportedMediaType)
		return
	}

	text, err := extract.Text(file, header.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			jsonError(w, err.Error(), http.StatusUnsupportedMediaType)
			return
		}
		jsonError(w, "extracting text: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	extracted, err := s.assistant.ExtractProfile(r.Context(), text)
	if err != nil {
		jsonError(w, "extracting profile: "+err.Error(), http.StatusBadGateway)
		return
	}

	current, err := s.store.Profiles.Get(r.Context(), userID(r))
	if err != nil {
		jsonError(w, "loading profile: "+err.Error(), http.StatusInternalServerError)
		return
	}
	merged := mergeProfiles(current, extracted)
	merged.UserID = userID(r)

	if err := s.store.Profiles.Upsert(r.Context(), merged); err != nil {
		jsonError(w, "saving profile: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, merged)
}

// mergeProfiles overlays extracted fields onto the saved profile, keeping
// saved values where the extraction produced nothing.
func mergeProfiles(saved, extracted *domain.Profile) *domain.Profile {
	merged := *saved
	if extracted.Name != "" {
		merged.Name = extracted.Name
	}
	if extracted.GPA != "" {
		merged.GPA = extracted.GPA
	}
	if extracted.Major != "" {
		merged.Major = extracted.Major
	}
	if extracted.TargetMajor != "" {
		merged.TargetMajor = extracted.TargetMajor
	}
	if len(extracted.Experiences) > 0 {
		merged.Experiences = extracted.Experiences
	}
	if extracted.RawText != "" {
		merged.RawText = extracted.RawText
	}
	return &merged
}

// handleQuestionnaire generates the essay brainstorming questionnaire and
// remembers the application type and special requests on the profile.
func (s *Server) handleQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ApplicationType string `json:"applicationType"`
		SpecialRequests string `json:"specialRequests"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ApplicationType == "" {
		jsonError(w, "applicationType is required", http.StatusBadRequest)
		return
	}

	profile, err := s.store.Profiles.Get(r.Context(), userID(r))
	if err != nil {
		jsonError(w, "loading profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	questionnaire, err := s.assistant.GenerateQuestionnaire(
		r.Context(), req.ApplicationType, req.SpecialRequests, profileContext(profile))
	if err != nil {
		jsonError(w, "generating questionnaire: "+err.Error(), http.StatusBadGateway)
		return
	}

	profile.ApplicationType = req.ApplicationType
	profile.SpecialRequests = req.SpecialRequests
	profile.Questionnaire = questionnaire
	if err := s.store.Profiles.Upsert(r.Context(), profile); err != nil {
		jsonError(w, "saving profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"questionnaire": questionnaire})
}
