package helper

import (
	"path/filepath"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func GetMimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".webm":
		return "video/webm"
	case ".avi":
		return "video/avi"
	case ".mkv":
		return "video/mkv"
	default:
		return "application/octet-stream"
	}
}

func IsVideoFile(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	videoExtensions := []string{".mp4", ".mov", ".webm", ".avi", ".mkv"}
	for _, v := range videoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

// SanitizeFilename strips any path components a client may have smuggled in.
func SanitizeFilename(filename string) string {
	return filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
}
