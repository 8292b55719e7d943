package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Go Basics", "go-basics"},
		{"  Advanced Go: Concurrency & Channels  ", "advanced-go-concurrency-channels"},
		{"C++ für Anfänger", "c-f-r-anf-nger"},
		{"100 Days of Code", "100-days-of-code"},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}
