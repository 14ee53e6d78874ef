// Package scoring derives scores, interpretations and recommendations from a
// quiz submission and its question set. Everything here is pure and
// best-effort: corrupt or partial submissions degrade to a zero contribution
// instead of erroring, because a result must always be renderable.
package scoring

import (
	"strconv"
	"strings"

	"kanzanso-wellness-service/internal/domain"
)

// Interpretation thresholds. The initial assessment has 10 questions scored
// 1-4 each (total range 10-40); every other quiz type has 5 questions
// (total range 5-20). These are a fixed contract with the question bank.
const (
	initialLowMax  = 20
	initialMedMax  = 30
	standardLowMax = 10
	standardMedMax = 15
)

// categoryAdviceThreshold gates the per-category recommendation blocks.
const categoryAdviceThreshold = 3

// resolve finds the question an answer refers to. Primary lookup is by ID;
// when that fails and the ID looks like "qN", the N-th question is used
// instead. The positional form is a compatibility shim for historical
// submissions that stored positional keys, not a sanctioned lookup path.
func resolve(questionID string, questions []domain.Question) (domain.Question, bool) {
	for _, q := range questions {
		if q.ID == questionID {
			return q, true
		}
	}
	if rest, ok := strings.CutPrefix(questionID, "q"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 1 && n <= len(questions) {
			return questions[n-1], true
		}
	}
	return domain.Question{}, false
}

// TotalScore sums the per-answer scores of a submission. Unresolvable
// question IDs and out-of-range option indices contribute 0.
func TotalScore(answers map[string]int, questions []domain.Question) int {
	total := 0
	for questionID, answerIndex := range answers {
		question, ok := resolve(questionID, questions)
		if !ok {
			continue
		}
		if answerIndex < 0 || answerIndex >= len(question.Scores) {
			continue
		}
		total += question.Scores[answerIndex]
	}
	return total
}

// CategoryScores groups questions by category and sums the scores of
// answered ones. A category appears only if at least one of its questions
// was answered: absence means "not assessed", which is distinct from an
// answered zero. Order follows the first encounter of each category in the
// question list.
func CategoryScores(answers map[string]int, questions []domain.Question) []domain.CategoryScore {
	var order []string
	sums := make(map[string]int)
	answered := make(map[string]bool)

	for _, question := range questions {
		if _, seen := sums[question.Category]; !seen {
			order = append(order, question.Category)
			sums[question.Category] = 0
		}
		answerIndex, ok := answers[question.ID]
		if !ok || answerIndex < 0 || answerIndex >= len(question.Scores) {
			continue
		}
		sums[question.Category] += question.Scores[answerIndex]
		answered[question.Category] = true
	}

	scores := make([]domain.CategoryScore, 0, len(order))
	for _, category := range order {
		if !answered[category] {
			continue
		}
		scores = append(scores, domain.CategoryScore{Category: category, Score: sums[category]})
	}
	return scores
}

// CategoryScoreMap converts the ordered slice into the map shape persisted
// on a result.
func CategoryScoreMap(scores []domain.CategoryScore) map[string]int {
	if len(scores) == 0 {
		return nil
	}
	m := make(map[string]int, len(scores))
	for _, cs := range scores {
		m[cs.Category] = cs.Score
	}
	return m
}

// highestCategory returns the category with the strictly highest score.
// Ties go to the earlier entry, i.e. the category encountered first in the
// question list.
func highestCategory(scores []domain.CategoryScore) string {
	best := ""
	bestScore := 0
	for _, cs := range scores {
		if cs.Score > bestScore {
			bestScore = cs.Score
			best = cs.Category
		}
	}
	return best
}

type messageSet struct {
	low    string
	medium string
	high   string
}

var initialAssessmentMessages = struct {
	low, medium, highAnxiety, highDepression, highSocial, highStress string
}{
	low:            "DISORDER FREE: You don't seem to be suffering from any symptoms, and overall you are balanced and happy.",
	medium:         "MILD SYMPTOMS: You're showing some signs of stress or anxiety, but they appear manageable.",
	highAnxiety:    "ANXIETY: You are experiencing significant worry and anxiety that may be affecting your daily life.",
	highDepression: "DEPRESSION: You're showing signs of low mood and decreased interest that may benefit from attention.",
	highSocial:     "SOCIAL CHALLENGES: You may be experiencing some difficulties in social situations.",
	highStress:     "STRESS: Your results indicate elevated stress levels that would benefit from stress management techniques.",
}

var quizMessages = map[domain.QuizType]messageSet{
	domain.QuizAnxietyFocused: {
		low:    "MINIMAL ANXIETY: Your anxiety levels appear to be within a manageable range.",
		medium: "MODERATE ANXIETY: You're experiencing some anxiety. The suggested techniques may help reduce your symptoms.",
		high:   "SEVERE ANXIETY: Your anxiety levels are elevated. Consider speaking with a professional for additional support.",
	},
	domain.QuizDepressionFocused: {
		low:    "MINIMAL DEPRESSION: Your results suggest minimal depressive symptoms.",
		medium: "MODERATE DEPRESSION: You're showing some signs of depression. The suggested strategies may help improve your mood.",
		high:   "SEVERE DEPRESSION: Your results indicate significant depressive symptoms. We recommend professional support.",
	},
	domain.QuizWeeklyCheckin: {
		low:    "GREAT WEEK: You're doing well this week. Keep up the good work!",
		medium: "MODERATE WEEK: You're experiencing some challenges this week. Focus on self-care.",
		high:   "CHALLENGING WEEK: This has been a difficult week for you. Consider reaching out for additional support.",
	},
	domain.QuizDailyMood: {
		low:    "GOOD DAY: You're having a good day today!",
		medium: "OKAY DAY: You're having an okay day with some challenges.",
		high:   "TOUGH DAY: Today has been challenging for you. Focus on self-care for the rest of the day.",
	},
}

// Interpret maps a total score to the human-readable summary for a quiz
// type. The initial assessment uses its 10-question thresholds and, for high
// totals, picks a condition-specific message from the single highest-scoring
// category. All other quiz types use the 5-question three-tier thresholds.
// Unknown quiz types fall back to the initial-assessment texts with the
// general stress message as the high tier.
func Interpret(total int, quizType domain.QuizType, categoryScores []domain.CategoryScore) string {
	if quizType == domain.QuizInitialAssessment {
		switch {
		case total <= initialLowMax:
			return initialAssessmentMessages.low
		case total <= initialMedMax:
			return initialAssessmentMessages.medium
		}
		switch highestCategory(categoryScores) {
		case "anxiety":
			return initialAssessmentMessages.highAnxiety
		case "depression", "mood":
			return initialAssessmentMessages.highDepression
		case "social", "personality":
			return initialAssessmentMessages.highSocial
		default:
			return initialAssessmentMessages.highStress
		}
	}

	messages, ok := quizMessages[quizType]
	if !ok {
		messages = messageSet{
			low:    initialAssessmentMessages.low,
			medium: initialAssessmentMessages.medium,
			high:   initialAssessmentMessages.highStress,
		}
	}
	switch {
	case total <= standardLowMax:
		return messages.low
	case total <= standardMedMax:
		return messages.medium
	default:
		return messages.high
	}
}

var generalAdvice = []string{
	"Based on your results, here are some recommendations:",
	"• Practice mindfulness meditation for 10 minutes daily",
	"• Maintain a regular sleep schedule",
	"• Engage in physical activity for at least 30 minutes daily",
}

var anxietyAdvice = []string{
	"For anxiety:",
	"• Try deep breathing exercises when feeling anxious",
	"• Limit caffeine and alcohol consumption",
	"• Practice progressive muscle relaxation",
}

var moodAdvice = []string{
	"For mood improvement:",
	"• Schedule pleasant activities throughout your week",
	"• Spend time in nature",
	"• Connect with supportive friends or family",
}

var stressAdvice = []string{
	"For stress management:",
	"• Identify and reduce stressors when possible",
	"• Practice time management techniques",
	"• Take short breaks throughout the day",
}

const closingAdvice = "Remember that these are general suggestions. For personalized advice, consider consulting with a mental health professional."

// Recommendations returns ordered advice lines: the general block always,
// then the anxiety, mood and stress blocks in that fixed order when the
// matching category score exceeds the advice threshold.
func Recommendations(categoryScores []domain.CategoryScore) []string {
	byCategory := CategoryScoreMap(categoryScores)

	lines := append([]string(nil), generalAdvice...)
	if byCategory["anxiety"] > categoryAdviceThreshold {
		lines = append(lines, anxietyAdvice...)
	}
	if byCategory["mood"] > categoryAdviceThreshold {
		lines = append(lines, moodAdvice...)
	}
	if byCategory["stress"] > categoryAdviceThreshold {
		lines = append(lines, stressAdvice...)
	}
	return append(lines, closingAdvice)
}

// RecommendationsText joins the recommendation lines into the single blob
// stored on a result.
func RecommendationsText(categoryScores []domain.CategoryScore) string {
	return strings.Join(Recommendations(categoryScores), "\n")
}
