package provider

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchURL(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		context string
		wantQ   string
	}{
		{
			name:    "context appended",
			query:   "mohinga",
			context: "Myanmar food",
			wantQ:   "mohinga Myanmar food",
		},
		{
			name:    "multi-word query",
			query:   "laphet thoke",
			context: "Myanmar food",
			wantQ:   "laphet thoke Myanmar food",
		},
		{
			name:    "context already in query",
			query:   "mohinga myanmar food",
			context: "Myanmar food",
			wantQ:   "mohinga myanmar food",
		},
		{
			name:    "empty context",
			query:   "mohinga",
			context: "",
			wantQ:   "mohinga",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SearchURL(tt.query, tt.context)
			assert.True(t, strings.HasPrefix(result, BaseURL+SearchEndpoint+"?"))

			parsed, err := url.Parse(result)
			assert.NoError(t, err)
			assert.Equal(t, "isch", parsed.Query().Get("tbm"))
			assert.Equal(t, tt.wantQ, parsed.Query().Get("q"))
		})
	}
}

func TestIsBlockedURL(t *testing.T) {
	assert.True(t, IsBlockedURL("https://www.google.com/sorry/index?continue=x"))
	assert.False(t, IsBlockedURL("https://www.google.com/search?tbm=isch&q=mohinga"))
}

func TestIsUsableSource(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"https://example.com/img.jpg", true},
		{"http://example.com/img.jpg", true},
		{"data:image/png;base64,iVBOR", false},
		{"//example.com/img.jpg", false},
		{"/static/img.jpg", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsUsableSource(tt.src), "IsUsableSource(%q)", tt.src)
	}
}

func TestInferExtension(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		contentType string
		want        string
	}{
		{"content type wins", "https://host/x.png", "image/jpeg", ".jpg"},
		{"png content type", "https://host/x", "image/png", ".png"},
		{"webp content type", "https://host/x", "image/webp", ".webp"},
		{"charset parameter ignored", "https://host/x", "image/png; charset=utf-8", ".png"},
		{"url fallback", "https://host/photo.webp", "application/octet-stream", ".webp"},
		{"jpeg normalized", "https://host/photo.JPEG", "", ".jpg"},
		{"unknown defaults to jpg", "https://host/file.bin", "", ".jpg"},
		{"query string ignored", "https://host/a.png?size=large", "", ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferExtension(tt.url, tt.contentType))
		})
	}
}
