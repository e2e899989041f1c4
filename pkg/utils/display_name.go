package utils

import (
	"strings"
	"unicode"
)

// FormatDisplayName resolves the name shown for an account in directory and
// booking responses. A non-empty profile name wins; otherwise the name is
// derived from the email local part ("john.doe@x.com" -> "John Doe"); with
// neither available the literal "Unknown Tutor" is returned.
func FormatDisplayName(fullName, email string) string {
	if fullName != "" {
		return fullName
	}

	if email == "" {
		return "Unknown Tutor"
	}

	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	if local == "" {
		return "Unknown Tutor"
	}

	replacer := strings.NewReplacer(".", " ", "_", " ", "-", " ")
	words := strings.Fields(replacer.Replace(local))
	if len(words) == 0 {
		return "Unknown Tutor"
	}

	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
