package filestorage

import (
	"strings"

	"github.com/pkg/errors"
)

const maxFileNameLen = 128

// SanitizeFileName validates an untrusted upload filename for use as
// an object key segment. Path separators and traversal sequences are
// rejected outright, anything outside a conservative charset is
// replaced with "_".
func SanitizeFileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("file name is empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return "", errors.New("file name contains a path separator")
	}
	if strings.Contains(name, "..") {
		return "", errors.New("file name contains a traversal sequence")
	}
	if len(name) > maxFileNameLen {
		return "", errors.Errorf("file name longer than %d characters", maxFileNameLen)
	}

	out := []rune(name)
	for idx, r := range out {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '_' || r == ' ':
		default:
			out[idx] = '_'
		}
	}
	safe := strings.Trim(string(out), ". ")
	if safe == "" {
		return "", errors.New("file name has no usable characters")
	}
	return safe, nil
}
