package service

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// AvatarURL returns a gravatar URL for the given email at the given pixel
// size, falling back to a generated "retro" image for unknown emails.
func AvatarURL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=retro&r=g", hash, size)
}
