package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/triviabank/trivia-api/pkg/http/respond"
)

// HTTPHandler exposes the trivia API endpoints over the service.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// ListCategories handles GET /api/categories.
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"categories":       MapByID(categories),
		"total_categories": len(categories),
	})
}

// ListQuestions handles GET /api/questions?page=&searchTerm=.
func (h *HTTPHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	searchTerm := r.URL.Query().Get("searchTerm")

	result, err := h.svc.ListQuestions(r.Context(), page, searchTerm)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondPage(w, result)
}

// ListCategoryQuestions handles GET /api/categories/{id}/questions.
func (h *HTTPHandler) ListCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.BadRequest(w)
		return
	}

	result, err := h.svc.ListQuestionsByCategory(r.Context(), categoryID, pageParam(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondPage(w, result)
}

type createQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CreateQuestion handles POST /api/questions.
func (h *HTTPHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w)
		return
	}

	id, err := h.svc.CreateQuestion(r.Context(), NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"created": id,
	})
}

// DeleteQuestion handles DELETE /api/questions/{id}.
func (h *HTTPHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.BadRequest(w)
		return
	}

	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// quizScopeRequest keeps the id presence-aware: a scope object without an
// id key specifies neither "any" nor a concrete category.
type quizScopeRequest struct {
	ID *int64 `json:"id"`
}

type quizRequest struct {
	PreviousQuestions []int64           `json:"previous_questions"`
	QuizCategory      *quizScopeRequest `json:"quiz_category"`
}

func (r quizRequest) scope() *QuizScope {
	if r.QuizCategory == nil || r.QuizCategory.ID == nil {
		return nil
	}
	return &QuizScope{ID: *r.QuizCategory.ID}
}

// NextQuizQuestion handles POST /api/quizzes. A null question in the
// response marks session exhaustion.
func (h *HTTPHandler) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w)
		return
	}

	question, err := h.svc.NextQuizQuestion(r.Context(), req.scope(), req.PreviousQuestions)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"question": question,
	})
}

func (h *HTTPHandler) respondPage(w http.ResponseWriter, page QuestionPage) {
	questions := page.Questions
	if questions == nil {
		questions = []Question{}
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"questions":       questions,
		"total_questions": page.Total,
		"categories":      page.Categories,
	})
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.NotFound(w)
	case errors.Is(err, ErrUnprocessable):
		respond.Unprocessable(w)
	default:
		h.logger.Error().Err(err).Msg("request failed")
		respond.InternalError(w)
	}
}

// pageParam reads the 1-indexed page query parameter, falling back to the
// first page when absent or malformed, matching the reference behavior.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
