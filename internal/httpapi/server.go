// Package httpapi exposes the application over HTTP.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/uniapply/uniapply/internal/autofill"
	"github.com/uniapply/uniapply/internal/config"
	"github.com/uniapply/uniapply/internal/domain"
	"github.com/uniapply/uniapply/internal/essaydoc"
	"github.com/uniapply/uniapply/internal/store"
)

// ResumeService renders and prints resume source code.
type ResumeService interface {
	Preview(source string) string
	ExportHTML(source string) (string, error)
	ExportPDF(ctx context.Context, source string) ([]byte, error)
	PrintHTML(ctx context.Context, htmlContent string) ([]byte, error)
}

// Assistant provides the AI operations the handlers depend on.
type Assistant interface {
	Chat(ctx context.Context, history []domain.ChatMessage, message string) (string, error)
	ExtractProfile(ctx context.Context, text string) (*domain.Profile, error)
	GenerateQuestionnaire(ctx context.Context, appType, specialRequests, userContext string) (string, error)
	RecommendColleges(ctx context.Context, userContext string) ([]domain.College, error)
	GenerateResumeCode(ctx context.Context, currentCode, instruction, userContext string) (string, error)
	GenerateEssay(ctx context.Context, essayPrompt, background string) (string, error)
	ScoreEssay(ctx context.Context, essayText string) (*domain.EssayScore, error)
}

// Server is the HTTP API server.
type Server struct {
	router    chi.Router
	store     *store.Store
	resume    ResumeService
	assistant Assistant
	essays    *essaydoc.Renderer
	autofill  *autofill.Simulator
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(st *store.Store, resume ResumeService, assistant Assistant, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:     st,
		resume:    resume,
		assistant: assistant,
		essays:    essaydoc.NewRenderer(),
		autofill:  autofill.New(cfg.AutofillStepDelay),
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Route("/resume", func(r chi.Router) {
			r.Get("/", s.handleResumeGet)
			r.Put("/", s.handleResumePut)
			r.Post("/preview", s.handleResumePreview)
			r.Post("/export/html", s.handleResumeExportHTML)
			r.Post("/export/pdf", s.handleResumeExportPDF)
			r.Post("/generate", s.handleResumeGenerate)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", s.handleProfileGet)
			r.Put("/", s.handleProfilePut)
			r.Post("/upload", s.handleProfileUpload)
			r.Post("/questionnaire", s.handleQuestionnaire)
		})

		r.Route("/essays", func(r chi.Router) {
			r.Get("/", s.handleEssayList)
			r.Post("/", s.handleEssaySave)
			r.Post("/generate", s.handleEssayGenerate)
			r.Post("/{essayID}/score", s.handleEssayScore)
			r.Get("/{essayID}/export/pdf", s.handleEssayExportPDF)
		})

		r.Route("/colleges", func(r chi.Router) {
			r.Get("/", s.handleCollegeList)
			r.Post("/refresh", s.handleCollegeRefresh)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Get("/", s.handleChatHistory)
			r.Post("/", s.handleChatSend)
			r.Delete("/", s.handleChatClear)
		})

		r.Post("/autofill/run", s.handleAutofillRun)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
