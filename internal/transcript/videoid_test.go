package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/yt-digest/internal/config"
)

func TestNaiveVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"last marker wins", "https://example.com/?v=first&v=second", "second"},
		{"trailing params kept", "https://www.youtube.com/watch?v=abc&t=10", "abc&t=10"},
		{"no marker", "https://youtu.be/dQw4w9WgXcQ", "https://youtu.be/dQw4w9WgXcQ"},
		{"empty", "", ""},
		{"marker at end", "https://www.youtube.com/watch?v=", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NaiveVideoID(tt.url))
		})
	}
}

func TestParseNaive(t *testing.T) {
	id, err := ParseNaive("https://www.youtube.com/watch?v=abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	_, err = ParseNaive("https://www.youtube.com/watch?v=")
	assert.ErrorIs(t, err, ErrInvalidVideoURL)
}

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch param order", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ", false},
		{"mobile", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"no scheme", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"share", "https://youtu.be/dQw4w9WgXcQ?si=xyz", "dQw4w9WgXcQ", false},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"live", "https://www.youtube.com/live/dQw4w9WgXcQ?feature=shared", "dQw4w9WgXcQ", false},
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"bare id padded", "  dQw4w9WgXcQ ", "dQw4w9WgXcQ", false},
		{"missing v", "https://www.youtube.com/watch?list=PL123", "", true},
		{"short id", "https://www.youtube.com/watch?v=abc", "", true},
		{"other host", "https://vimeo.com/watch?v=dQw4w9WgXcQ", "", true},
		{"empty", "", "", true},
		{"garbage", "not a url", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVideoID(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidVideoURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParserFor(t *testing.T) {
	id, err := ParserFor(config.ParserNaive)("not a url v=xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", id)

	_, err = ParserFor(config.ParserStrict)("not a url v=xyz")
	assert.ErrorIs(t, err, ErrInvalidVideoURL)
}
