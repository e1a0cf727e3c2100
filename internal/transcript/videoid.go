package transcript

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/yt-digest/internal/config"
)

var reVideoID = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// NaiveVideoID returns whatever follows the last "v=" in the input, or the
// whole input when the marker is absent. It does not validate anything.
func NaiveVideoID(videoURL string) string {
	parts := strings.Split(videoURL, "v=")
	return parts[len(parts)-1]
}

// ParseNaive wraps NaiveVideoID, rejecting only an empty identifier.
func ParseNaive(videoURL string) (string, error) {
	id := strings.TrimSpace(NaiveVideoID(videoURL))
	if id == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidVideoURL, videoURL)
	}
	return id, nil
}

// ParseVideoID extracts an 11-character video ID from watch, share, shorts,
// embed and live URLs, or accepts a bare ID.
func ParseVideoID(videoURL string) (string, error) {
	raw := strings.TrimSpace(videoURL)
	if reVideoID.MatchString(raw) {
		return raw, nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidVideoURL, err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	var id string
	switch host {
	case "youtu.be":
		id = segments[0]
	case "youtube.com", "music.youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			id = v
			break
		}
		if len(segments) >= 2 {
			switch segments[0] {
			case "shorts", "embed", "live", "v":
				id = segments[1]
			}
		}
	}

	if !reVideoID.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVideoURL, videoURL)
	}
	return id, nil
}

// ParserFor maps a transcript.url_parser setting to its IDParser.
func ParserFor(name string) IDParser {
	if name == config.ParserNaive {
		return ParseNaive
	}
	return ParseVideoID
}
