package dto

import (
	"time"

	"careerforge/internal/domain"
)

// QuizResponse is a freshly generated interview quiz.
type QuizResponse struct {
	Questions []domain.QuizQuestion `json:"questions"`
}

// SaveQuizResultRequest carries the original questions, the user's answers
// by position, and the computed score.
type SaveQuizResultRequest struct {
	Questions []domain.QuizQuestion `json:"questions"`
	Answers   []string              `json:"answers"`
	Score     float64               `json:"score"`
}

// AssessmentResponse is one saved quiz submission.
type AssessmentResponse struct {
	ID              string                  `json:"id"`
	QuizScore       float64                 `json:"quiz_score"`
	QuestionResults []domain.QuestionResult `json:"question_results"`
	Category        string                  `json:"category"`
	ImprovementTip  string                  `json:"improvement_tip,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

// AssessmentListResponse wraps the caller's assessments, oldest first.
type AssessmentListResponse struct {
	Assessments []*AssessmentResponse `json:"assessments"`
}

// ToAssessmentResponse maps a domain assessment onto its response shape.
func ToAssessmentResponse(a *domain.Assessment) *AssessmentResponse {
	results := a.QuestionResults
	if results == nil {
		results = []domain.QuestionResult{}
	}
	return &AssessmentResponse{
		ID:              a.ID,
		QuizScore:       a.QuizScore,
		QuestionResults: results,
		Category:        a.Category,
		ImprovementTip:  a.ImprovementTip,
		CreatedAt:       a.CreatedAt,
	}
}

// ToAssessmentListResponse maps a slice of domain assessments.
func ToAssessmentListResponse(assessments []*domain.Assessment) *AssessmentListResponse {
	resp := &AssessmentListResponse{Assessments: make([]*AssessmentResponse, 0, len(assessments))}
	for _, a := range assessments {
		resp.Assessments = append(resp.Assessments, ToAssessmentResponse(a))
	}
	return resp
}
