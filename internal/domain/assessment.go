package domain

import "time"

// AssessmentCategoryTechnical is the category assigned to quiz submissions.
// It is the only category the interview flow produces today.
const AssessmentCategoryTechnical = "Technical"

// QuizQuestion is one multiple-choice question produced by the generator.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is the generator's full response shape.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// QuestionResult records how the user answered one question.
type QuestionResult struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	UserAnswer  string `json:"userAnswer"`
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
}

// Assessment is one saved quiz submission. Rows are append-only history,
// listed oldest first.
type Assessment struct {
	ID              string
	UserID          string
	QuizScore       float64
	QuestionResults []QuestionResult
	Category        string
	ImprovementTip  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GradeQuiz computes per-question correctness by comparing the recorded
// correct answer with the user's answer at the same position. A missing
// answer grades as incorrect with an empty user answer.
func GradeQuiz(questions []QuizQuestion, answers []string) []QuestionResult {
	results := make([]QuestionResult, len(questions))
	for i, q := range questions {
		userAnswer := ""
		if i < len(answers) {
			userAnswer = answers[i]
		}
		results[i] = QuestionResult{
			Question:    q.Question,
			Answer:      q.CorrectAnswer,
			UserAnswer:  userAnswer,
			IsCorrect:   q.CorrectAnswer == userAnswer,
			Explanation: q.Explanation,
		}
	}
	return results
}
