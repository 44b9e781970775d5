package dto

import (
	"time"

	"careerforge/internal/domain"
)

// GenerateCoverLetterRequest carries the job posting the letter targets.
type GenerateCoverLetterRequest struct {
	JobTitle       string `json:"job_title"`
	CompanyName    string `json:"company_name"`
	JobDescription string `json:"job_description"`
}

// CoverLetterResponse is one generated cover letter.
type CoverLetterResponse struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	JobDescription string    `json:"job_description"`
	CompanyName    string    `json:"company_name"`
	JobTitle       string    `json:"job_title"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// CoverLetterListResponse wraps the caller's letters, newest first.
type CoverLetterListResponse struct {
	CoverLetters []*CoverLetterResponse `json:"cover_letters"`
}

// ToCoverLetterResponse maps a domain cover letter onto its response shape.
func ToCoverLetterResponse(l *domain.CoverLetter) *CoverLetterResponse {
	return &CoverLetterResponse{
		ID:             l.ID,
		Content:        l.Content,
		JobDescription: l.JobDescription,
		CompanyName:    l.CompanyName,
		JobTitle:       l.JobTitle,
		Status:         l.Status,
		CreatedAt:      l.CreatedAt,
	}
}

// ToCoverLetterListResponse maps a slice of domain cover letters.
func ToCoverLetterListResponse(letters []*domain.CoverLetter) *CoverLetterListResponse {
	resp := &CoverLetterListResponse{CoverLetters: make([]*CoverLetterResponse, 0, len(letters))}
	for _, l := range letters {
		resp.CoverLetters = append(resp.CoverLetters, ToCoverLetterResponse(l))
	}
	return resp
}
