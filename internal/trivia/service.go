package trivia

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// QuestionStore is the durable question backend (implemented by
// repository.QuestionRepository). Filters compose conjunctively and are
// evaluated store-side; results are never materialized wholesale just to
// filter in memory.
type QuestionStore interface {
	// List returns questions matching the filter, ordered ascending by
	// question text, windowed by limit/offset.
	List(ctx context.Context, filter Filter, limit, offset int) ([]Question, error)
	// Count returns the unpaged number of matching questions.
	Count(ctx context.Context, filter Filter) (int, error)
	// RandomOne returns one matching question, uniformly at random, or
	// nil when nothing matches.
	RandomOne(ctx context.Context, filter Filter) (*Question, error)
	// Insert persists a new question and returns the assigned id.
	Insert(ctx context.Context, question NewQuestion) (int64, error)
	// Delete removes a question by id, reporting whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// QuestionPage is one listing window plus the context rendered alongside it.
type QuestionPage struct {
	Questions  []Question
	Total      int
	Categories CategoryMap
}

// Service composes the repository, pagination and category catalog into the
// request-level operations exposed to transport. Each call is a
// self-contained unit of work; no session state is retained in-process.
type Service struct {
	questions QuestionStore
	catalog   *Catalog
	selector  *Selector
	logger    zerolog.Logger
}

func NewService(questions QuestionStore, catalog *Catalog, logger zerolog.Logger) *Service {
	return &Service{
		questions: questions,
		catalog:   catalog,
		selector:  NewSelector(questions),
		logger:    logger.With().Str("component", "trivia_service").Logger(),
	}
}

// ListCategories returns the full catalog, label-ordered. ErrNotFound when
// no categories are configured.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.catalog.List(ctx)
}

// ListQuestions returns one page of the text-ordered question listing,
// optionally narrowed by a case-insensitive substring search.
func (s *Service) ListQuestions(ctx context.Context, page int, searchTerm string) (QuestionPage, error) {
	return s.listPage(ctx, Filter{TextContains: searchTerm}, page)
}

// ListQuestionsByCategory is ListQuestions with the search filter swapped
// for category equality. A category with zero questions fails the
// pagination boundary like any other empty result.
func (s *Service) ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (QuestionPage, error) {
	return s.listPage(ctx, Filter{Category: &categoryID}, page)
}

func (s *Service) listPage(ctx context.Context, filter Filter, page int) (QuestionPage, error) {
	total, err := s.questions.Count(ctx, filter)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("count questions: %w", err)
	}

	offset, err := PageBounds(page, PageSize, total)
	if err != nil {
		return QuestionPage{}, err
	}

	questions, err := s.questions.List(ctx, filter, PageSize, offset)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}

	// An empty catalog only 404s the dedicated categories endpoint; list
	// responses just carry an empty map.
	categories, err := s.catalog.List(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return QuestionPage{}, err
	}

	return QuestionPage{
		Questions:  questions,
		Total:      total,
		Categories: MapByID(categories),
	}, nil
}

// CreateQuestion persists a new question and returns the assigned id.
// Store rejections (constraint violation, connection failure) surface as
// ErrUnprocessable.
func (s *Service) CreateQuestion(ctx context.Context, in NewQuestion) (int64, error) {
	id, err := s.questions.Insert(ctx, in)
	if err != nil {
		s.logger.Warn().Err(err).Msg("question insert rejected")
		return 0, fmt.Errorf("insert question: %w", ErrUnprocessable)
	}
	return id, nil
}

// DeleteQuestion removes a question by id. An absent id is ErrNotFound; a
// store-rejected delete is ErrUnprocessable. No retries either way.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	removed, err := s.questions.Delete(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int64("question_id", id).Msg("question delete rejected")
		return fmt.Errorf("delete question %d: %w", id, ErrUnprocessable)
	}
	if !removed {
		return fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	return nil
}

// NextQuizQuestion serves one non-repeating random question for a quiz
// session. previous is the full set of ids already served this session;
// scope must be present (AnyCategory for no restriction).
func (s *Service) NextQuizQuestion(ctx context.Context, scope *QuizScope, previous []int64) (*Question, error) {
	return s.selector.Next(ctx, scope, previous)
}
