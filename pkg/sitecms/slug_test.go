package sitecms_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"already a slug", "hello-world", "hello-world"},
		{"punctuation collapses", "Robotics: Nationals 2024!", "robotics-nationals-2024"},
		{"leading and trailing junk", "  --Big Win--  ", "big-win"},
		{"consecutive separators", "a   b___c", "a-b-c"},
		{"uppercase", "ABC", "abc"},
		{"digits survive", "Top 10 Teams", "top-10-teams"},
		{"only junk", "!!! ???", ""},
		{"empty", "", ""},
		{"unicode stripped", "café münchen", "caf-m-nchen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sitecms.Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Hello World",
		"Robotics: Nationals 2024!",
		"  --Big Win--  ",
		"already-a-slug",
		"Top 10 Teams",
	}

	for _, input := range inputs {
		once := sitecms.Slugify(input)
		assert.Equal(t, once, sitecms.Slugify(once), "slugify must be idempotent for %q", input)
	}
}

func TestSlugifyCharset(t *testing.T) {
	valid := regexp.MustCompile(`^$|^[a-z0-9]+(-[a-z0-9]+)*$`)

	inputs := []string{
		"Hello World",
		"!!weird--input__here!!",
		"MIXED Case AND 123",
		"---",
		"a",
	}

	for _, input := range inputs {
		slug := sitecms.Slugify(input)
		assert.Regexp(t, valid, slug, "slug for %q must contain only lowercase alphanumerics and single dashes", input)
	}
}
