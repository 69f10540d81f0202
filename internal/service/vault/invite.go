package vault

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// inviteAlphabet omits characters that are easy to confuse when read aloud
// or typed from a screenshot (0/O, 1/I/L).
const inviteAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// NewInviteCode returns a random URL-safe invite code of the given length.
func NewInviteCode(size int) (string, error) {
	code, err := gonanoid.Generate(inviteAlphabet, size)
	if err != nil {
		return "", fmt.Errorf("generate invite code: %w", err)
	}
	return code, nil
}

// NormalizeInviteCode trims and upper-cases a user supplied invite code.
func NormalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
