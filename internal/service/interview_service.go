package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careerforge/internal/config"
	"careerforge/internal/domain"
	"careerforge/internal/dto"
	"careerforge/internal/logger"
	"careerforge/internal/repository"
	"careerforge/internal/util"
	"careerforge/internal/validation"

	"go.uber.org/zap"
)

const quizQuestionCount = 5

const mockImprovementTip = "Keep building on the fundamentals — review the topics behind the questions you found hardest and practice them in small daily sessions."

// InterviewService generates interview quizzes and manages quiz results.
type InterviewService interface {
	GenerateQuiz(ctx context.Context, userID string) (*dto.QuizResponse, error)
	SaveQuizResult(ctx context.Context, userID string, req *dto.SaveQuizResultRequest) (*dto.AssessmentResponse, error)
	ListAssessments(ctx context.Context, userID string) (*dto.AssessmentListResponse, error)
}

type interviewService struct {
	userRepo       repository.UserRepository
	assessmentRepo repository.AssessmentRepository
	generator      domain.TextGenerator
	validator      *validation.Validator
	cfg            *config.Config
}

// NewInterviewService creates a new InterviewService instance.
func NewInterviewService(
	userRepo repository.UserRepository,
	assessmentRepo repository.AssessmentRepository,
	generator domain.TextGenerator,
	cfg *config.Config,
) InterviewService {
	return &interviewService{
		userRepo:       userRepo,
		assessmentRepo: assessmentRepo,
		generator:      generator,
		validator:      validation.NewValidator(),
		cfg:            cfg,
	}
}

func buildQuizPrompt(user *domain.User) string {
	skillsClause := ""
	if len(user.Skills) > 0 {
		skillsClause = fmt.Sprintf(" with expertise in %s", strings.Join(user.Skills, ", "))
	}

	return fmt.Sprintf(`
Generate %d technical interview questions for a %s professional%s.

Each question should be multiple choice with 4 options.

Return the response in this JSON format only, no additional text:
{
  "questions": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctAnswer": "string",
      "explanation": "string"
    }
  ]
}
`, quizQuestionCount, user.Industry, skillsClause)
}

// mockQuiz returns the fixed two-question quiz used in mock mode.
func mockQuiz(industry string) *domain.Quiz {
	if industry == "" {
		industry = "software"
	}
	return &domain.Quiz{
		Questions: []domain.QuizQuestion{
			{
				Question: fmt.Sprintf("What is one core responsibility of a %s professional?", industry),
				Options: []string{
					"Writing clear, maintainable code",
					"Ignoring best practices",
					"Avoiding communication with the team",
					"Skipping tests",
				},
				CorrectAnswer: "Writing clear, maintainable code",
				Explanation:   "A key responsibility is writing code that is easy to read, maintain, and extend.",
			},
			{
				Question: "Which practice helps prevent bugs in production?",
				Options: []string{
					"Writing unit and integration tests",
					"Deploying without review",
					"Editing code directly on the server",
					"Skipping code reviews",
				},
				CorrectAnswer: "Writing unit and integration tests",
				Explanation:   "Tests catch issues early and increase confidence in changes.",
			},
		},
	}
}

// GenerateQuiz produces a quiz tailored to the caller's industry and skills.
// Unlike insight generation there is no fallback payload: any failure,
// including malformed model output, surfaces as an error.
func (s *interviewService) GenerateQuiz(ctx context.Context, userID string) (*dto.QuizResponse, error) {
	if s.userRepo == nil {
		return nil, domain.NewInternalError("database is not configured", nil)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	if s.cfg.AI.MockMode {
		return &dto.QuizResponse{Questions: mockQuiz(user.Industry).Questions}, nil
	}

	raw, err := s.generator.Generate(ctx, buildQuizPrompt(user))
	if err != nil {
		logger.Get().Error("Quiz generation failed", zap.String("userID", userID), zap.Error(err))
		return nil, domain.NewAIServiceError("Failed to generate quiz questions", err)
	}

	quiz, err := parseQuiz(raw)
	if err != nil {
		logger.Get().Error("Quiz response could not be parsed",
			zap.String("userID", userID), zap.String("response", raw), zap.Error(err))
		return nil, domain.NewError(domain.CodeAIResponseInvalid, "Failed to generate quiz questions", err)
	}

	return &dto.QuizResponse{Questions: quiz.Questions}, nil
}

// parseQuiz validates the model output against the expected quiz shape.
// The response is untrusted input; a structurally broken quiz is rejected
// rather than passed through.
func parseQuiz(raw string) (*domain.Quiz, error) {
	jsonStr, err := util.ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var quiz domain.Quiz
	if err := json.Unmarshal([]byte(jsonStr), &quiz); err != nil {
		return nil, err
	}

	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz contains no questions")
	}
	for i, q := range quiz.Questions {
		if q.Question == "" || q.CorrectAnswer == "" || len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d is incomplete", i)
		}
	}
	return &quiz, nil
}

func buildImprovementPrompt(industry string, wrongResults []domain.QuestionResult) string {
	var sb strings.Builder
	for i, r := range wrongResults {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "Question: %q\nCorrect Answer: %q\nUser Answer: %q", r.Question, r.Answer, r.UserAnswer)
	}

	return fmt.Sprintf(`
The user got the following %s technical interview questions wrong:

%s

Based on these mistakes, provide a concise, specific improvement tip.
Focus on the knowledge gaps revealed by these wrong answers.
Keep the response under 2 sentences and make it encouraging.
Don't explicitly mention the mistakes, instead focus on what to learn/practice.
`, industry, sb.String())
}

// generateImprovementTip asks the model for a short tip about the missed
// questions. Failure here never fails the save; the result is simply stored
// without a tip.
func (s *interviewService) generateImprovementTip(ctx context.Context, industry string, wrongResults []domain.QuestionResult) string {
	if s.cfg.AI.MockMode {
		return mockImprovementTip
	}

	tip, err := s.generator.Generate(ctx, buildImprovementPrompt(industry, wrongResults))
	if err != nil {
		logger.Get().Error("Improvement tip generation failed, saving result without tip", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(tip)
}

// SaveQuizResult grades the submission, optionally generates an improvement
// tip for wrong answers, and persists the assessment.
func (s *interviewService) SaveQuizResult(ctx context.Context, userID string, req *dto.SaveQuizResultRequest) (*dto.AssessmentResponse, error) {
	if s.userRepo == nil || s.assessmentRepo == nil {
		return nil, domain.NewInternalError("database is not configured", nil)
	}

	if errs := s.validator.ValidateSaveQuizResultRequest(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	questionResults := domain.GradeQuiz(req.Questions, req.Answers)

	var wrongResults []domain.QuestionResult
	for _, r := range questionResults {
		if !r.IsCorrect {
			wrongResults = append(wrongResults, r)
		}
	}

	improvementTip := ""
	if len(wrongResults) > 0 {
		improvementTip = s.generateImprovementTip(ctx, user.Industry, wrongResults)
	}

	assessment := &domain.Assessment{
		ID:              util.NewULID(),
		UserID:          user.ID,
		QuizScore:       req.Score,
		QuestionResults: questionResults,
		Category:        domain.AssessmentCategoryTechnical,
		ImprovementTip:  improvementTip,
	}

	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz result", err)
	}

	return dto.ToAssessmentResponse(assessment), nil
}

// ListAssessments returns the caller's quiz history, oldest first.
func (s *interviewService) ListAssessments(ctx context.Context, userID string) (*dto.AssessmentListResponse, error) {
	if s.userRepo == nil || s.assessmentRepo == nil {
		return nil, domain.NewInternalError("database is not configured", nil)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	assessments, err := s.assessmentRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch assessments", err)
	}
	return dto.ToAssessmentListResponse(assessments), nil
}
