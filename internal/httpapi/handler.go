package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexanderramin/gardener/internal/knowledge"
	"github.com/alexanderramin/gardener/internal/metrics"
	"github.com/alexanderramin/gardener/internal/responder"
)

// SystemName is reported by GET /api/status.
const SystemName = "Transcendent-Rationalism-Archive Gardener"

const maxBodyBytes = 64 << 10

// Resolver is the part of the responder the API needs.
type Resolver interface {
	Resolve(ctx context.Context, question string) responder.Result
	Knowledge() knowledge.Set
}

// Handler wires the question API to a Resolver.
type Handler struct {
	resolver Resolver
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// New constructs a Handler. metrics may be nil.
func New(resolver Resolver, logger *slog.Logger, m *metrics.Metrics) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{resolver: resolver, logger: logger, metrics: m}
}

// Register mounts the API endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/ask", h.HandleAsk)
	r.Get("/api/status", h.HandleStatus)
	r.Get("/api/knowledge", h.HandleKnowledge)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}
}

// NewRouter builds the full router with middleware.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	h.Register(r)
	return r
}

// HandleAsk handles POST /api/ask.
func (h *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := RequestID(ctx)
	start := time.Now()

	var req AskRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "ask: bad request body", "request_id", id, "error", err)
		writeError(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}

	question, err := responder.ValidateQuestion(req.Question)
	if errors.Is(err, responder.ErrEmptyQuestion) {
		h.metrics.IncrementRejected("http")
		writeError(w, http.StatusBadRequest, "Вопрос не может быть пустым")
		return
	}

	res := h.resolver.Resolve(ctx, question)

	h.logger.InfoContext(ctx, "question answered",
		"request_id", id,
		"source", string(res.Source),
		"key", res.Key,
		"verdict", string(res.Meta.Verdict),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, fromResult(id, res))
}

// HandleStatus handles GET /api/status.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	set := h.resolver.Knowledge()
	writeJSON(w, http.StatusOK, StatusResponse{
		System:            SystemName,
		KnowledgeConcepts: set.Len(),
		Synonyms:          len(set.Synonyms()),
		FallbackTemplates: len(set.Templates()),
	})
}

// HandleKnowledge handles GET /api/knowledge, the inspection surface
// over the loaded knowledge base.
func (h *Handler) HandleKnowledge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, KnowledgeResponse{Knowledge: h.resolver.Knowledge().Entries()})
}
