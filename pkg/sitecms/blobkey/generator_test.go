package blobkey_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chemosit/sitecms/pkg/sitecms/blobkey"
)

func TestShardedGenerator(t *testing.T) {
	g := blobkey.NewShardedGenerator()

	t.Run("shape", func(t *testing.T) {
		handle := g.NewHandle("photo.jpg")
		assert.Regexp(t, regexp.MustCompile(`^uploads/[0-9a-f]{2}/[0-9a-f]{30}_photo\.jpg$`), handle)
	})

	t.Run("no filename", func(t *testing.T) {
		handle := g.NewHandle("")
		assert.Regexp(t, regexp.MustCompile(`^uploads/[0-9a-f]{2}/[0-9a-f]{30}$`), handle)
	})

	t.Run("unsafe characters sanitized", func(t *testing.T) {
		handle := g.NewHandle("my photo?.jpg")
		assert.NotContains(t, handle, " ")
		assert.NotContains(t, handle, "?")
		assert.True(t, strings.HasSuffix(handle, "my_photo_.jpg"))
	})

	t.Run("handles are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			handle := g.NewHandle("file.txt")
			assert.False(t, seen[handle])
			seen[handle] = true
		}
	})

	t.Run("custom shard length", func(t *testing.T) {
		custom := &blobkey.ShardedGenerator{ShardLength: 4}
		handle := custom.NewHandle("")
		assert.Regexp(t, regexp.MustCompile(`^uploads/[0-9a-f]{4}/[0-9a-f]{28}$`), handle)
	})
}

func TestFlatGenerator(t *testing.T) {
	g := blobkey.NewFlatGenerator()

	handle := g.NewHandle("logo.png")
	assert.Regexp(t, regexp.MustCompile(`^uploads/[0-9a-f-]{36}_logo\.png$`), handle)

	bare := g.NewHandle("")
	assert.Regexp(t, regexp.MustCompile(`^uploads/[0-9a-f-]{36}$`), bare)
}
