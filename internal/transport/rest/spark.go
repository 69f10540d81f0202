package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/internal/service/spark"
)

type sparkService interface {
	ListCategories(ctx context.Context) ([]domain.SparkCategoryCount, error)
	RandomSpark(ctx context.Context, input spark.RandomInput) (*domain.Spark, error)
}

// SparkHandler serves the in-person card decks.
type SparkHandler struct {
	svc      sparkService
	validate *Validator
	log      *slog.Logger
}

// NewSparkHandler creates a SparkHandler.
func NewSparkHandler(svc sparkService, validate *Validator, logger *slog.Logger) *SparkHandler {
	return &SparkHandler{svc: svc, validate: validate, log: logger.With("handler", "spark")}
}

type randomSparkQuery struct {
	Category string `json:"category" validate:"required,spark_category"`
	Vibe     string `json:"vibe" validate:"omitempty,prompt_category"`
}

// Categories handles GET /sparks/categories.
func (h *SparkHandler) Categories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.ListCategories(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]sparkCategoryResponse, len(counts))
	for i, c := range counts {
		out[i] = sparkCategoryResponse{Category: string(c.Category), Label: c.Category.Label(), Count: c.Count}
	}
	writeJSON(w, http.StatusOK, out)
}

// Random handles GET /sparks/random?category=&vibe=.
func (h *SparkHandler) Random(w http.ResponseWriter, r *http.Request) {
	q := randomSparkQuery{
		Category: strings.ToUpper(r.URL.Query().Get("category")),
		Vibe:     strings.ToUpper(r.URL.Query().Get("vibe")),
	}
	if err := h.validate.Validate(q); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := spark.RandomInput{Category: domain.SparkCategory(q.Category)}
	if q.Vibe != "" {
		vibe := domain.PromptCategory(q.Vibe)
		input.Vibe = &vibe
	}

	s, err := h.svc.RandomSpark(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSparkResponse(s))
}
