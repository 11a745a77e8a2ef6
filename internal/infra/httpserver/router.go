package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/bryanwahyu/citizenconnect/internal/application/analysis"
	apppitches "github.com/bryanwahyu/citizenconnect/internal/application/pitches"
	appprojects "github.com/bryanwahyu/citizenconnect/internal/application/projects"
	domanalysis "github.com/bryanwahyu/citizenconnect/internal/domain/analysis"
	dompitches "github.com/bryanwahyu/citizenconnect/internal/domain/pitches"
	domain "github.com/bryanwahyu/citizenconnect/internal/domain/projects"
	"github.com/bryanwahyu/citizenconnect/internal/middleware"
)

type Router struct {
	projectsSvc *appprojects.Service
	analysisSvc *appanalysis.Service
	pitchesSvc  *apppitches.Service
}

type Options struct {
	AllowedOrigins      []string
	RateLimitCapacity   int
	RateLimitRefillRate int
	AIAPIKey            string
}

func NewRouter(projectsSvc *appprojects.Service, analysisSvc *appanalysis.Service, pitchesSvc *apppitches.Service, opts Options) http.Handler {
	r := &Router{projectsSvc: projectsSvc, analysisSvc: analysisSvc, pitchesSvc: pitchesSvc}
	mux := chi.NewRouter()

	// the dashboard frontend runs in the browser, so CORS is always on
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	if opts.RateLimitCapacity > 0 {
		mux.Use(middleware.RateLimitMiddleware(opts.RateLimitCapacity, opts.RateLimitRefillRate))
	}

	mux.Get("/health", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"gateway": &middleware.GatewayConfigChecker{APIKey: opts.AIAPIKey},
	}))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Get("/projects", r.wrap(r.handleListProjects))
		rt.Post("/projects/{id}/vote", r.wrap(r.handleVote))
		rt.Get("/projects/{id}/analysis", r.wrap(r.handleGetAnalysis))
		rt.Post("/projects/{id}/vet", r.wrap(r.handleVet))
		rt.Post("/crawl", r.wrap(r.handleCrawl))
		rt.Get("/summary", r.wrap(r.handleSummary))
		rt.Get("/pitches", r.wrap(r.handleListPitches))
		rt.Post("/pitches", r.wrap(r.handleCreatePitch))
		rt.Post("/pitches/{id}/support", r.wrap(r.handleSupportPitch))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound), errors.Is(err, dompitches.ErrNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.Is(err, domanalysis.ErrQuotaExceeded):
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
			case errors.Is(err, domanalysis.ErrUnavailable):
				http.Error(w, "analysis unavailable", http.StatusBadGateway)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// GET /v1/projects
func (r *Router) handleListProjects(w http.ResponseWriter, req *http.Request) error {
	list, err := r.projectsSvc.ListProjects(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// POST /v1/projects/{id}/vote
// Body: {"direction": "up"|"down"}
func (r *Router) handleVote(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	var body struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return nil
	}
	if err := middleware.ValidateDirection(body.Direction); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	p, err := r.projectsSvc.Vote(req.Context(), domain.ProjectID(id), domain.VoteDirection(body.Direction))
	if err != nil {
		return err
	}
	return writeJSON(w, p)
}

// GET /v1/projects/{id}/analysis
// Missing entry answers 404: the frontend renders the "invoke audit" card.
func (r *Router) handleGetAnalysis(w http.ResponseWriter, req *http.Request) error {
	id := domain.ProjectID(chi.URLParam(req, "id"))
	if _, err := r.projectsSvc.Get(req.Context(), id); err != nil {
		return err
	}
	res, ok := r.analysisSvc.GetAnalysis(req.Context(), id)
	if !ok {
		http.Error(w, "no analysis yet", http.StatusNotFound)
		return nil
	}
	return writeJSON(w, res)
}

// POST /v1/projects/{id}/vet
func (r *Router) handleVet(w http.ResponseWriter, req *http.Request) error {
	middleware.IncrementVets()
	id := domain.ProjectID(chi.URLParam(req, "id"))

	p, err := r.projectsSvc.Get(req.Context(), id)
	if err != nil {
		return err
	}
	if _, ok := r.analysisSvc.GetAnalysis(req.Context(), id); ok {
		middleware.IncrementVetsCached()
	}

	res, err := r.analysisSvc.RequestVetting(req.Context(), p)
	if err != nil {
		middleware.IncrementVetsFailed()
		return err
	}
	return writeJSON(w, res)
}

// POST /v1/crawl
// Body: {"location": "Pune"}
// Always answers 200 with an array; a gateway failure is an empty array.
func (r *Router) handleCrawl(w http.ResponseWriter, req *http.Request) error {
	middleware.IncrementCrawls()
	var body struct {
		Location string `json:"location"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return nil
	}
	if err := middleware.ValidateLocation(body.Location); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	created, err := r.projectsSvc.Crawl(req.Context(), body.Location)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		middleware.IncrementCrawlsEmpty()
	}
	return writeJSON(w, created)
}

// GET /v1/summary
func (r *Router) handleSummary(w http.ResponseWriter, req *http.Request) error {
	summary, err := r.projectsSvc.Summary(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, summary)
}

// GET /v1/pitches
func (r *Router) handleListPitches(w http.ResponseWriter, req *http.Request) error {
	list, err := r.pitchesSvc.List(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// POST /v1/pitches
func (r *Router) handleCreatePitch(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		UserID           string `json:"userId"`
		UserName         string `json:"userName"`
		Title            string `json:"title"`
		Location         string `json:"location"`
		Problem          string `json:"problem"`
		ProposedSolution string `json:"proposedSolution"`
		EstimatedBudget  int64  `json:"estimatedBudget"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return nil
	}
	if err := middleware.ValidateBudget(body.EstimatedBudget); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	p, err := r.pitchesSvc.Create(req.Context(), apppitches.CreatePitchCommand{
		UserID:           body.UserID,
		UserName:         body.UserName,
		Title:            body.Title,
		Location:         body.Location,
		Problem:          body.Problem,
		ProposedSolution: body.ProposedSolution,
		EstimatedBudget:  body.EstimatedBudget,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(p)
}

// POST /v1/pitches/{id}/support
func (r *Router) handleSupportPitch(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	p, err := r.pitchesSvc.Support(req.Context(), dompitches.PitchID(id))
	if err != nil {
		return err
	}
	return writeJSON(w, p)
}
