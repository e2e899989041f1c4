package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		email    string
		expected string
	}{
		{
			name:     "full name wins over email",
			fullName: "Sarah Jenkins",
			email:    "sjenkins@example.com",
			expected: "Sarah Jenkins",
		},
		{
			name:     "full name kept verbatim",
			fullName: "  jean-pierre  ",
			email:    "jp@example.com",
			expected: "  jean-pierre  ",
		},
		{
			name:     "derived from email local part",
			fullName: "",
			email:    "john.doe@example.com",
			expected: "John Doe",
		},
		{
			name:     "mixed separators in local part",
			fullName: "",
			email:    "john.doe_the-great@example.com",
			expected: "John Doe The Great",
		},
		{
			name:     "single word local part",
			fullName: "",
			email:    "maria@example.com",
			expected: "Maria",
		},
		{
			name:     "no name and no email",
			fullName: "",
			email:    "",
			expected: "Unknown Tutor",
		},
		{
			name:     "email with empty local part",
			fullName: "",
			email:    "@example.com",
			expected: "Unknown Tutor",
		},
		{
			name:     "local part made only of separators",
			fullName: "",
			email:    "._-@example.com",
			expected: "Unknown Tutor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDisplayName(tt.fullName, tt.email))
		})
	}
}
