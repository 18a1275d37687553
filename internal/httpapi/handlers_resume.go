package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/uniapply/uniapply"
	"github.com/uniapply/uniapply/internal/domain"
	"github.com/uniapply/uniapply/internal/store"
)

// defaultResumeTemplate seeds new users with an editable starting point that
// exercises the macro vocabulary the preview parser understands.
const defaultResumeTemplate = `\documentclass{resume}
\usepackage{fontspec}
\usepackage[margin=0.75in]{geometry}

\name{YOUR NAME}
\contact{email@example.com | Phone | Location}

\section*{EDUCATION}
\textbf{University Name} \hfill Location
\textit{Degree} \hfill Date
\begin{itemize}
  \item GPA: ...
  \item Relevant Coursework: ...
\end{itemize}

\section*{EXPERIENCE}
\textbf{Company Name} \hfill Location
\textit{Role} \hfill Date
\begin{itemize}
  \item Description of achievements...
\end{itemize}
\end{document}`

type resumeResponse struct {
	Title     string    `json:"title"`
	Code      string    `json:"code"`
	UpdatedAt time.Time `json:"updatedAt"`
	Saved     bool      `json:"saved"`
}

// handleResumeGet returns the saved resume, or the starter template when the
// user has not saved one yet.
func (s *Server) handleResumeGet(w http.ResponseWriter, r *http.Request) {
	resume, err := s.store.Resumes.Load(r.Context(), userID(r))
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusOK, resumeResponse{
			Title: "My Resume",
			Code:  defaultResumeTemplate,
		})
		return
	}
	if err != nil {
		jsonError(w, "loading resume: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resumeResponse{
		Title:     resume.Title,
		Code:      resume.LaTeX,
		UpdatedAt: resume.UpdatedAt,
		Saved:     true,
	})
}

func (s *Server) handleResumePut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
		Code  string `json:"code"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Title == "" {
		req.Title = "My Resume"
	}
	resume := &domain.Resume{UserID: userID(r), Title: req.Title, LaTeX: req.Code}
	if err := s.store.Resumes.Save(r.Context(), resume); err != nil {
		jsonError(w, "saving resume: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resumeResponse{
		Title:     resume.Title,
		Code:      resume.LaTeX,
		UpdatedAt: resume.UpdatedAt,
		Saved:     true,
	})
}

// handleResumePreview renders the live preview fragment for the editor. The
// source comes from the request so unsaved edits preview correctly.
func (s *Server) handleResumePreview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(s.resume.Preview(req.Code)))
}

func (s *Server) handleResumeExportHTML(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	html, err := s.resume.ExportHTML(req.Code)
	if err != nil {
		if errors.Is(err, uniapply.ErrEmptySource) {
			jsonError(w, "resume code is empty", http.StatusBadRequest)
			return
		}
		jsonError(w, "exporting resume: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.html"`)
	w.Write([]byte(html))
}

func (s *Server) handleResumeExportPDF(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	pdf, err := s.resume.ExportPDF(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, uniapply.ErrEmptySource) {
			jsonError(w, "resume code is empty", http.StatusBadRequest)
			return
		}
		jsonError(w, "printing resume: "+err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.Write(pdf)
}

// handleResumeGenerate rewrites the resume with the assistant. When the
// model call fails the current code is returned unchanged so the editor
// never loses state.
func (s *Server) handleResumeGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code        string `json:"code"`
		Instruction string `json:"instruction"`
		UseProfile  bool   `json:"useProfile"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Code == "" {
		req.Code = defaultResumeTemplate
	}

	var userContext string
	if req.UseProfile {
		profile, err := s.store.Profiles.Get(r.Context(), userID(r))
		if err != nil {
			jsonError(w, "loading profile: "+err.Error(), http.StatusInternalServerError)
			return
		}
		userContext = profileContext(profile)
	}

	code, err := s.assistant.GenerateResumeCode(r.Context(), req.Code, req.Instruction, userContext)
	generated := true
	if err != nil {
		s.log.Warn("resume generation failed, keeping current code", "error", err)
		code = req.Code
		generated = false
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"code":      code,
		"generated": generated,
	})
}
