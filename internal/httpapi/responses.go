package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/alexanderramin/gardener/internal/knowledge"
	"github.com/alexanderramin/gardener/internal/responder"
)

// AskRequest is the body of POST /api/ask.
type AskRequest struct {
	Question string `json:"question"`
}

// MetaResponse mirrors responder.Meta.
type MetaResponse struct {
	Verdict      knowledge.Verdict `json:"verdict"`
	VerdictLabel string            `json:"verdict_label"`
	Score        string            `json:"score"`
	Tags         []string          `json:"tags"`
}

// AskResponse is the body returned for a resolved question.
type AskResponse struct {
	ID       string       `json:"id"`
	Answer   string       `json:"answer"`
	Source   string       `json:"source"`
	Key      string       `json:"key,omitempty"`
	Meta     MetaResponse `json:"meta"`
	MetaLine string       `json:"meta_line"`
}

// StatusResponse is the body of GET /api/status.
type StatusResponse struct {
	System            string `json:"system"`
	KnowledgeConcepts int    `json:"knowledge_concepts"`
	Synonyms          int    `json:"synonyms"`
	FallbackTemplates int    `json:"fallback_templates"`
}

// KnowledgeResponse is the body of GET /api/knowledge.
type KnowledgeResponse struct {
	Knowledge []knowledge.Entry `json:"knowledge"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func fromResult(id string, res responder.Result) AskResponse {
	tags := res.Meta.Tags
	if tags == nil {
		tags = []string{}
	}
	return AskResponse{
		ID:     id,
		Answer: res.Answer,
		Source: string(res.Source),
		Key:    res.Key,
		Meta: MetaResponse{
			Verdict:      res.Meta.Verdict,
			VerdictLabel: res.Meta.Verdict.Label(),
			Score:        res.Meta.ScoreText(),
			Tags:         tags,
		},
		MetaLine: res.Meta.String(),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
