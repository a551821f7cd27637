package helper

import (
	"strings"

	"github.com/Gayatri-ch/UniPay/internal/domain"
)

const (
	IFSCSuffixLen    = 7
	minSuggestionLen = 3
)

// NormalizeSuffix keeps only ASCII letters and digits and uppercases them.
func NormalizeSuffix(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		}
	}
	return b.String()
}

// SanitizeSuffix is NormalizeSuffix cut to the suffix length. It is the
// canonical form shown back to the user while typing.
func SanitizeSuffix(raw string) string {
	s := NormalizeSuffix(raw)
	if len(s) > IFSCSuffixLen {
		s = s[:IFSCSuffixLen]
	}
	return s
}

// SuggestBranch picks a branch of bank from the sum of the character codes of
// the sanitized suffix. Fewer than three characters, or a bank without
// branches, gives no suggestion.
func SuggestBranch(bank domain.Bank, raw string) (string, bool) {
	s := SanitizeSuffix(raw)
	if len(s) < minSuggestionLen || len(bank.Branches) == 0 {
		return "", false
	}
	seed := 0
	for i := 0; i < len(s); i++ {
		seed += int(s[i])
	}
	return bank.Branches[seed%len(bank.Branches)], true
}
