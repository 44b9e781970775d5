package domain

import "time"

// User is a registered member of the platform, keyed one-to-one to an
// external Google identity. Profile fields (industry, experience, bio,
// skills) stay empty until the user completes onboarding.
type User struct {
	ID         string
	GoogleID   string
	Email      string
	Name       string
	ImageURL   string
	Industry   string
	Experience *int
	Bio        string
	Skills     []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// IsOnboarded reports whether the user has set an industry, which gates
// access to tailored insights and quizzes.
func (u *User) IsOnboarded() bool {
	return u != nil && u.Industry != ""
}

// ExternalIdentity is what the identity provider asserts about the caller.
type ExternalIdentity struct {
	ID        string
	Email     string
	GivenName string
	Family    string
	Picture   string
}

// DisplayName resolves a presentable name: "given family" trimmed, then the
// email local part, then the literal "User".
func (i *ExternalIdentity) DisplayName() string {
	name := i.GivenName
	if i.Family != "" {
		if name != "" {
			name += " "
		}
		name += i.Family
	}
	if name != "" {
		return name
	}
	if i.Email != "" {
		for idx := 0; idx < len(i.Email); idx++ {
			if i.Email[idx] == '@' {
				return i.Email[:idx]
			}
		}
		return i.Email
	}
	return "User"
}

// ProfileUpdate carries the onboarding form fields applied by UpdateProfile.
type ProfileUpdate struct {
	Industry   string
	Experience *int
	Bio        string
	Skills     []string
}
