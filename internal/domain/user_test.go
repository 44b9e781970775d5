package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsOnboarded(t *testing.T) {
	assert.False(t, (*User)(nil).IsOnboarded())
	assert.False(t, (&User{}).IsOnboarded())
	assert.True(t, (&User{Industry: "tech-software-development"}).IsOnboarded())
}

func TestExternalIdentity_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		identity ExternalIdentity
		expected string
	}{
		{
			name:     "given and family",
			identity: ExternalIdentity{GivenName: "Jane", Family: "Doe", Email: "jane@example.com"},
			expected: "Jane Doe",
		},
		{
			name:     "given only",
			identity: ExternalIdentity{GivenName: "Jane", Email: "jane@example.com"},
			expected: "Jane",
		},
		{
			name:     "family only",
			identity: ExternalIdentity{Family: "Doe"},
			expected: "Doe",
		},
		{
			name:     "email local part fallback",
			identity: ExternalIdentity{Email: "jane.doe@example.com"},
			expected: "jane.doe",
		},
		{
			name:     "email without at sign",
			identity: ExternalIdentity{Email: "janedoe"},
			expected: "janedoe",
		},
		{
			name:     "nothing available",
			identity: ExternalIdentity{},
			expected: "User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.identity.DisplayName())
		})
	}
}
