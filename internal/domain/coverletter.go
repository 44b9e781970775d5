package domain

import "time"

// CoverLetterStatusCompleted marks a letter whose content generation finished.
const CoverLetterStatusCompleted = "completed"

// CoverLetter is a generated letter owned by exactly one user. Content is
// immutable after creation; the row can only be read or deleted by its owner.
type CoverLetter struct {
	ID             string
	UserID         string
	Content        string
	JobDescription string
	CompanyName    string
	JobTitle       string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
