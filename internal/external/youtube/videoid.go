package youtube

import (
	"fmt"
	"regexp"
)

// Video ID parsing for the URL shapes users paste in.

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtu\.be/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/shorts/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/embed/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/live/)([A-Za-z0-9_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoID extracts the 11-character video ID from a YouTube URL
// or accepts a bare ID as-is.
func ParseVideoID(raw string) (string, error) {
	if bareVideoID.MatchString(raw) {
		return raw, nil
	}

	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(raw); len(m) == 2 {
			return m[1], nil
		}
	}

	return "", fmt.Errorf("not a recognizable YouTube video URL or ID: %q", raw)
}
