package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple title", title: "My Title", want: "my-title"},
		{name: "already slugified", title: "my-title", want: "my-title"},
		{name: "mixed case", title: "How to Train Your Dragon", want: "how-to-train-your-dragon"},
		{name: "extra whitespace", title: "  spaced   out  ", want: "spaced-out"},
		{name: "single word", title: "Hello", want: "hello"},
		{name: "empty", title: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	once := Slugify("New Title")
	assert.Equal(t, once, Slugify(once))
}
