package questionbank

import "kanzanso-wellness-service/internal/domain"

// Catalog returns the built-in question sets, keyed by quiz type. The IDs,
// option order and score alignment are a stable contract: previously stored
// submissions reference them, and the scoring thresholds assume these exact
// question counts.
func Catalog() map[domain.QuizType][]domain.Question {
	return map[domain.QuizType][]domain.Question{
		domain.QuizInitialAssessment: {
			{
				ID:       "q1",
				Text:     "DESCRIBE YOUR CURRENT MOOD",
				Options:  []string{"Pretty happy", "I am worried about some things", "Antisocial", "Terrible, I'm fed up"},
				Scores:   []int{1, 2, 3, 4},
				Category: "mood",
				QuizType: domain.QuizInitialAssessment,
			},
			{
				ID:       "q2",
				Text:     "HOW DO PEOPLE DESCRIBE YOU?",
				Options:  []string{"Happy", "Socially Awkward", "Cold", "Unhappy"},
				Scores:   []int{1, 2, 3, 4},
				Category: "personality",
				QuizType: domain.QuizInitialAssessment,
			},
			{
				ID:       "q3",
				Text:     "HOW OFTEN DO YOU FEEL ANXIOUS?",
				Options:  []string{"Rarely", "Sometimes", "Often", "Almost all the time"},
				Scores:   []int{1, 2, 3, 4},
				Category: "anxiety",
				QuizType: domain.QuizInitialAssessment,
			},
			{
				ID:       "q4",
				Text:     "HOW WELL DO YOU SLEEP?",
				Options:  []string{"Very well", "Okay", "Not great", "Terribly"},
				Scores:   []int{1, 2, 3, 4},
				Category: "physical",
				QuizType: domain.QuizInitialAssessment,
			},
			{
				ID:       "q5",
				Text:     "HOW OFTEN DO YOU FEEL HOPELESS?",
				Options:  []string{"Never", "Occasionally", "Frequently", "Constantly"},
				Scores:   []int{1, 2, 3, 4},
				Category: "depression",
				QuizType: domain.QuizInitialAssessment,
			},
			{
				ID:       "q6",
				Text:     "HOW OFTEN DO YOU FEEL OVERWHELMED?",
				Options:  []string{"Rarely", "Sometimes", "Often", "Almost all the time"},
				Scores:   []int{1, 2, 3, 4},
				Category: "stress",
				QuizType: domain.QuizInitialAssessment,
			},
			{
				ID:       "q7",
				Text:     "HOW WOULD YOU RATE YOUR ENERGY LEVELS?",
				Options:  []string{"High energy most days", "Moderate energy", "Low energy often", "Constantly fatigued"},
				Scores:   []int{1, 2, 3, 4},
				Category: "physical",
				QuizType: domain.QuizInitialAssessment,
			},
			{
				ID:       "q8",
				Text:     "HOW OFTEN DO YOU FEEL IRRITABLE OR ANGRY?",
				Options:  []string{"Rarely", "Sometimes", "Often", "Almost all the time"},
				Scores:   []int{1, 2, 3, 4},
				Category: "mood",
				QuizType: domain.QuizInitialAssessment,
			},
			{
				ID:       "q9",
				Text:     "HOW COMFORTABLE ARE YOU IN SOCIAL SITUATIONS?",
				Options:  []string{"Very comfortable", "Somewhat comfortable", "Uncomfortable", "Extremely uncomfortable"},
				Scores:   []int{1, 2, 3, 4},
				Category: "social",
				QuizType: domain.QuizInitialAssessment,
			},
			{
				ID:       "q10",
				Text:     "HOW OFTEN DO YOU HAVE TROUBLE CONCENTRATING?",
				Options:  []string{"Rarely", "Sometimes", "Often", "Almost all the time"},
				Scores:   []int{1, 2, 3, 4},
				Category: "cognitive",
				QuizType: domain.QuizInitialAssessment,
			},
		},
		domain.QuizWeeklyCheckin: {
			{
				ID:       "wq1",
				Text:     "HOW WAS YOUR WEEK OVERALL?",
				Options:  []string{"Great", "Good", "Okay", "Bad"},
				Scores:   []int{1, 2, 3, 4},
				Category: "weekly_checkin",
				QuizType: domain.QuizWeeklyCheckin,
			},
			{
				ID:       "wq2",
				Text:     "HOW STRESSED DID YOU FEEL THIS WEEK?",
				Options:  []string{"Not at all", "A little", "Moderately", "Very stressed"},
				Scores:   []int{1, 2, 3, 4},
				Category: "weekly_checkin",
				QuizType: domain.QuizWeeklyCheckin,
			},
			{
				ID:       "wq3",
				Text:     "DID YOU MAKE TIME FOR SELF-CARE THIS WEEK?",
				Options:  []string{"Yes, plenty", "Some", "Not much", "None at all"},
				Scores:   []int{1, 2, 3, 4},
				Category: "weekly_checkin",
				QuizType: domain.QuizWeeklyCheckin,
			},
			{
				ID:       "wq4",
				Text:     "HOW WOULD YOU RATE YOUR PRODUCTIVITY THIS WEEK?",
				Options:  []string{"Very productive", "Somewhat productive", "Not very productive", "Not productive at all"},
				Scores:   []int{1, 2, 3, 4},
				Category: "weekly_checkin",
				QuizType: domain.QuizWeeklyCheckin,
			},
			{
				ID:       "wq5",
				Text:     "HOW WELL DID YOU MANAGE YOUR EMOTIONS THIS WEEK?",
				Options:  []string{"Very well", "Fairly well", "Not very well", "Poorly"},
				Scores:   []int{1, 2, 3, 4},
				Category: "weekly_checkin",
				QuizType: domain.QuizWeeklyCheckin,
			},
		},
		domain.QuizAnxietyFocused: {
			{
				ID:       "aq1",
				Text:     "HOW OFTEN DO YOU FEEL NERVOUS OR ANXIOUS?",
				Options:  []string{"Rarely", "Sometimes", "Often", "Almost always"},
				Scores:   []int{1, 2, 3, 4},
				Category: "anxiety_focused",
				QuizType: domain.QuizAnxietyFocused,
			},
			{
				ID:       "aq2",
				Text:     "DO YOU WORRY EXCESSIVELY ABOUT DIFFERENT THINGS?",
				Options:  []string{"Rarely", "Sometimes", "Often", "Almost always"},
				Scores:   []int{1, 2, 3, 4},
				Category: "anxiety_focused",
				QuizType: domain.QuizAnxietyFocused,
			},
			{
				ID:       "aq3",
				Text:     "DO YOU HAVE TROUBLE RELAXING?",
				Options:  []string{"Rarely", "Sometimes", "Often", "Almost always"},
				Scores:   []int{1, 2, 3, 4},
				Category: "anxiety_focused",
				QuizType: domain.QuizAnxietyFocused,
			},
			{
				ID:       "aq4",
				Text:     "DO YOU EXPERIENCE PHYSICAL SYMPTOMS WHEN ANXIOUS (RACING HEART, SWEATING)?",
				Options:  []string{"Rarely", "Sometimes", "Often", "Almost always"},
				Scores:   []int{1, 2, 3, 4},
				Category: "anxiety_focused",
				QuizType: domain.QuizAnxietyFocused,
			},
			{
				ID:       "aq5",
				Text:     "DO YOU AVOID SITUATIONS THAT MAKE YOU ANXIOUS?",
				Options:  []string{"Rarely", "Sometimes", "Often", "Almost always"},
				Scores:   []int{1, 2, 3, 4},
				Category: "anxiety_focused",
				QuizType: domain.QuizAnxietyFocused,
			},
		},
		domain.QuizDepressionFocused: {
			{
				ID:       "dq1",
				Text:     "HOW OFTEN DO YOU FEEL DOWN OR DEPRESSED?",
				Options:  []string{"Rarely", "Sometimes", "Often", "Almost always"},
				Scores:   []int{1, 2, 3, 4},
				Category: "depression_focused",
				QuizType: domain.QuizDepressionFocused,
			},
			{
				ID:       "dq2",
				Text:     "HOW IS YOUR INTEREST IN ACTIVITIES YOU USUALLY ENJOY?",
				Options:  []string{"Normal", "Slightly decreased", "Significantly decreased", "No interest at all"},
				Scores:   []int{1, 2, 3, 4},
				Category: "depression_focused",
				QuizType: domain.QuizDepressionFocused,
			},
			{
				ID:       "dq3",
				Text:     "DO YOU FEEL WORTHLESS OR GUILTY?",
				Options:  []string{"Rarely", "Sometimes", "Often", "Almost always"},
				Scores:   []int{1, 2, 3, 4},
				Category: "depression_focused",
				QuizType: domain.QuizDepressionFocused,
			},
			{
				ID:       "dq4",
				Text:     "HOW IS YOUR APPETITE?",
				Options:  []string{"Normal", "Somewhat decreased", "Significantly decreased", "No appetite or excessive eating"},
				Scores:   []int{1, 2, 3, 4},
				Category: "depression_focused",
				QuizType: domain.QuizDepressionFocused,
			},
			{
				ID:       "dq5",
				Text:     "DO YOU HAVE THOUGHTS OF HARMING YOURSELF?",
				Options:  []string{"Never", "Rarely", "Sometimes", "Often"},
				Scores:   []int{1, 2, 3, 4},
				Category: "depression_focused",
				QuizType: domain.QuizDepressionFocused,
			},
		},
		domain.QuizDailyMood: {
			{
				ID:       "dm1",
				Text:     "HOW WOULD YOU RATE YOUR MOOD TODAY?",
				Options:  []string{"Great", "Good", "Okay", "Bad"},
				Scores:   []int{1, 2, 3, 4},
				Category: "daily_mood",
				QuizType: domain.QuizDailyMood,
			},
			{
				ID:       "dm2",
				Text:     "HOW IS YOUR ENERGY LEVEL TODAY?",
				Options:  []string{"High", "Medium", "Low", "Very low"},
				Scores:   []int{1, 2, 3, 4},
				Category: "daily_mood",
				QuizType: domain.QuizDailyMood,
			},
			{
				ID:       "dm3",
				Text:     "HOW WELL DID YOU SLEEP LAST NIGHT?",
				Options:  []string{"Very well", "Okay", "Not great", "Very poorly"},
				Scores:   []int{1, 2, 3, 4},
				Category: "daily_mood",
				QuizType: domain.QuizDailyMood,
			},
			{
				ID:       "dm4",
				Text:     "HOW PRODUCTIVE DO YOU FEEL TODAY?",
				Options:  []string{"Very productive", "Somewhat productive", "Not very productive", "Not productive at all"},
				Scores:   []int{1, 2, 3, 4},
				Category: "daily_mood",
				QuizType: domain.QuizDailyMood,
			},
			{
				ID:       "dm5",
				Text:     "HOW SOCIAL DO YOU FEEL TODAY?",
				Options:  []string{"Very social", "Somewhat social", "Not very social", "Not social at all"},
				Scores:   []int{1, 2, 3, 4},
				Category: "daily_mood",
				QuizType: domain.QuizDailyMood,
			},
		},
	}
}
