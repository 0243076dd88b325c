// Package util implements utility functions
package util

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger *zerolog.Logger

// GetLogger returns the zerolog logger instance
func GetLogger(logLevel zerolog.Level) *zerolog.Logger {
	if logger == nil {
		l := zerolog.New(os.Stdout).Level(logLevel).With().Timestamp().Logger()
		logger = &l
	}

	return logger
}

// AddErrorContext adds context to an error, like:
// "error while getting manga metadata: error while visiting manga URL: Not Found".
// Should be used in functions that can return multiple errors without a spefic origin/context.
func AddErrorContext(context string, err error) error {
	return fmt.Errorf("%s: %w", context, err)
}

// ErrorContains checks if an error contains a specific string
func ErrorContains(err error, s string) bool {
	if err == nil {
		return false
	}

	return strings.Contains(err.Error(), s)
}

// FileExists checks if a file exists
func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// SubstringAfter returns the part of s after the first occurrence of delimiter.
// If the delimiter is not found, s is returned unchanged.
func SubstringAfter(s, delimiter string) string {
	_, after, found := strings.Cut(s, delimiter)
	if !found {
		return s
	}

	return after
}

// SubstringBefore returns the part of s before the first occurrence of delimiter.
// If the delimiter is not found, s is returned unchanged.
func SubstringBefore(s, delimiter string) string {
	before, _, found := strings.Cut(s, delimiter)
	if !found {
		return s
	}

	return before
}

// AbsoluteURL joins a possibly relative URL with the base URL.
// Absolute URLs are returned unchanged.
func AbsoluteURL(baseURL, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if strings.HasPrefix(ref, "//") {
		return "https:" + ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}

	return strings.TrimSuffix(baseURL, "/") + ref
}

// RelativeURL strips the scheme and host from a URL, keeping path, query and fragment.
// Values that can't be parsed are returned unchanged.
func RelativeURL(rawURL string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	relative := parsedURL.EscapedPath()
	if parsedURL.RawQuery != "" {
		relative += "?" + parsedURL.RawQuery
	}
	if parsedURL.Fragment != "" {
		relative += "#" + parsedURL.EscapedFragment()
	}
	if relative == "" {
		relative = "/"
	}

	return relative
}
