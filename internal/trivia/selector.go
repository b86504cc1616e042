package trivia

import (
	"context"
	"fmt"
)

// Selector picks one quiz question uniformly at random from the eligible
// set: every question in scope minus the ids already served this session.
// It holds no state between calls; the caller resubmits the full exclusion
// set each time.
type Selector struct {
	store QuestionStore
}

func NewSelector(store QuestionStore) *Selector {
	return &Selector{store: store}
}

// Next returns the next quiz question, or nil when the eligible set is
// exhausted. Exhaustion is a normal terminal outcome, not an error, and
// repeated calls after it keep returning nil. A nil scope means the caller
// never chose between "any" and a concrete category, which is a malformed
// request rather than exhaustion.
func (s *Selector) Next(ctx context.Context, scope *QuizScope, previous []int64) (*Question, error) {
	if scope == nil {
		return nil, fmt.Errorf("quiz category scope missing: %w", ErrUnprocessable)
	}

	filter := Filter{ExcludeIDs: previous}
	if scope.ID != AnyCategory {
		id := scope.ID
		filter.Category = &id
	}

	question, err := s.store.RandomOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("pick quiz question: %w", err)
	}
	return question, nil
}
