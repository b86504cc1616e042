package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"strings"
	"sync"
)

// memoryStore backs the core tests with a deterministic in-memory rendition
// of the store contract, including the non-empty question constraint the
// real schema enforces.
type memoryStore struct {
	mu         sync.Mutex
	nextID     int64
	questions  []Question
	categories []Category
	rng        *rand.Rand
	failWrites bool
	failReads  bool
}

func newMemoryStore(seed int64) *memoryStore {
	return &memoryStore{nextID: 1, rng: rand.New(rand.NewSource(seed))}
}

func (m *memoryStore) matches(q Question, f Filter) bool {
	if f.TextContains != "" && !strings.Contains(strings.ToLower(q.Question), strings.ToLower(f.TextContains)) {
		return false
	}
	if f.Category != nil && q.Category != *f.Category {
		return false
	}
	return !slices.Contains(f.ExcludeIDs, q.ID)
}

func (m *memoryStore) eligible(f Filter) []Question {
	var out []Question
	for _, q := range m.questions {
		if m.matches(q, f) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Question < out[j].Question })
	return out
}

func (m *memoryStore) List(_ context.Context, f Filter, limit, offset int) ([]Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReads {
		return nil, errors.New("store unavailable")
	}
	rows := m.eligible(f)
	if offset >= len(rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

func (m *memoryStore) Count(_ context.Context, f Filter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReads {
		return 0, errors.New("store unavailable")
	}
	return len(m.eligible(f)), nil
}

func (m *memoryStore) RandomOne(_ context.Context, f Filter) (*Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReads {
		return nil, errors.New("store unavailable")
	}
	rows := m.eligible(f)
	if len(rows) == 0 {
		return nil, nil
	}
	q := rows[m.rng.Intn(len(rows))]
	return &q, nil
}

func (m *memoryStore) Insert(_ context.Context, in NewQuestion) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return 0, errors.New("store rejected write")
	}
	if in.Question == "" {
		return 0, errors.New("check constraint: question must be non-empty")
	}
	id := m.nextID
	m.nextID++
	m.questions = append(m.questions, Question{
		ID:         id,
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	})
	return id, nil
}

func (m *memoryStore) Delete(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return false, errors.New("store rejected delete")
	}
	for i, q := range m.questions {
		if q.ID == id {
			m.questions = append(m.questions[:i], m.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryStore) ListOrdered(_ context.Context) ([]Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReads {
		return nil, errors.New("store unavailable")
	}
	out := slices.Clone(m.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (m *memoryStore) addCategory(id int64, label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append(m.categories, Category{ID: id, Type: label})
}

// seedQuestions inserts n questions named question00..question<n-1>, cycling
// through the given category ids.
func (m *memoryStore) seedQuestions(n int, categoryIDs ...int64) []int64 {
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		var cat int64
		if len(categoryIDs) > 0 {
			cat = categoryIDs[i%len(categoryIDs)]
		}
		id, _ := m.Insert(context.Background(), NewQuestion{
			Question:   fmt.Sprintf("question%02d", i),
			Answer:     fmt.Sprintf("answer%02d", i),
			Category:   cat,
			Difficulty: 1 + i%5,
		})
		ids = append(ids, id)
	}
	return ids
}
