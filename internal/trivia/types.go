package trivia

// Question is a single bank entry, serialized in the wire format the
// frontend expects.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category labels live in the `type` field for frontend compatibility.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// NewQuestion carries create-question input after transport-level decoding.
// Structural validation beyond JSON shape is delegated to store constraints.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// AnyCategory is the quiz scope sentinel meaning "no category restriction".
const AnyCategory int64 = 0

// QuizScope selects the category a quiz session draws from.
type QuizScope struct {
	ID int64 `json:"id"`
}

// CategoryMap is the id→label mapping embedded in list responses.
type CategoryMap map[int64]string

// Filter narrows a question query. Zero-value fields are inactive; active
// fields combine conjunctively and are pushed down to the store.
type Filter struct {
	// TextContains matches case-insensitively on infix position.
	TextContains string
	// Category restricts to one category id when non-nil.
	Category *int64
	// ExcludeIDs removes previously served questions from the result.
	ExcludeIDs []int64
}
