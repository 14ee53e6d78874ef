package domain

import "time"

// QuizType enumerates the assessments the app offers. Each type has a fixed
// question set and question count, which the scoring thresholds depend on.
type QuizType string

const (
	QuizInitialAssessment QuizType = "initial_assessment" // 10 questions
	QuizWeeklyCheckin     QuizType = "weekly_checkin"     // 5 questions
	QuizAnxietyFocused    QuizType = "anxiety_focused"    // 5 questions
	QuizDepressionFocused QuizType = "depression_focused" // 5 questions
	QuizDailyMood         QuizType = "daily_mood"         // 5 questions
)

// QuizTypes lists every known quiz type in presentation order.
func QuizTypes() []QuizType {
	return []QuizType{
		QuizInitialAssessment,
		QuizWeeklyCheckin,
		QuizAnxietyFocused,
		QuizDepressionFocused,
		QuizDailyMood,
	}
}

// Question is a single quiz item. Scores align with Options by index.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"` // 1..4 entries
	Scores   []int    `json:"scores"`  // same length as Options
	Category string   `json:"category"`
	QuizType QuizType `json:"quizType"`
}

// Submission is one completed quiz attempt.
// Answers maps question ID to the selected 0-based option index.
type Submission struct {
	UserID   string         `json:"userId"`
	QuizType QuizType       `json:"quizType"`
	Answers  map[string]int `json:"answers"`
}

// CategoryScore pairs a category with its summed score. Order follows the
// first encounter of the category in the question list, so interpretation
// tie-breaks stay deterministic.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// Audit carries identity and timestamps shared by every stored entity.
// Entities embed it and expose it through the Record interface so the
// generic store can stamp ids and times without knowing the concrete type.
type Audit struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Record is implemented by pointers to stored entity types.
type Record interface {
	Meta() *Audit
}

// Meta returns the embedded audit block.
func (a *Audit) Meta() *Audit { return a }

// QuizResult is created once per completed submission and never mutated;
// a retake produces a new result.
type QuizResult struct {
	Audit
	UserID          string         `json:"userId"`
	QuizType        QuizType       `json:"quizType"`
	TotalScore      int            `json:"totalScore"`
	CategoryScores  map[string]int `json:"categoryScores,omitempty"`
	Interpretation  string         `json:"interpretation"`
	Recommendations string         `json:"recommendations,omitempty"`
	// Persisted is false when the result could be computed but stored
	// nowhere; the user still gets to see it.
	Persisted bool `json:"-"`
}

// Todo is a to-do list item.
type Todo struct {
	Audit
	UserID    string   `json:"userId"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Priority  string   `json:"priority,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// GratitudeEntry is one gratitude journal note.
type GratitudeEntry struct {
	Audit
	UserID string `json:"userId"`
	Text   string `json:"text"`
	Mood   string `json:"mood,omitempty"`
}

// FavoriteQuote is a quote the user saved.
type FavoriteQuote struct {
	Audit
	UserID string `json:"userId"`
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}
