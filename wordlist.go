package passx

import (
	_ "embed"
	"strings"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// commonPasswords holds the embedded common-password dictionary in file
// order, loaded once at init. Inclusion in a run is gated by
// Options.IncludeCommon, the list is never mutated.
var commonPasswords []string

var commonPasswordSet map[string]struct{}

func init() {
	lines := strings.Split(commonPasswordsRaw, "\n")
	commonPasswordSet = make(map[string]struct{}, len(lines))
	for _, line := range lines {
		pw := strings.TrimSpace(line)
		if pw == "" {
			continue
		}
		commonPasswords = append(commonPasswords, pw)
		commonPasswordSet[strings.ToLower(pw)] = struct{}{}
	}
}

// CommonPasswords returns a copy of the embedded common-password list
func CommonPasswords() []string {
	out := make([]string, len(commonPasswords))
	copy(out, commonPasswords)
	return out
}

// IsCommonPassword reports whether the given password appears in the
// embedded common-password list (case-insensitive).
func IsCommonPassword(password string) bool {
	_, exists := commonPasswordSet[strings.ToLower(password)]
	return exists
}
