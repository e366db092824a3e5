// Package blobkey generates the opaque handles under which uploaded blobs
// are stored. Handles are allocated once at upload time and never reused;
// the record that references a handle owns it exclusively.
package blobkey

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generator defines the interface for blob handle generation strategies
type Generator interface {
	// NewHandle allocates a fresh handle for an upload
	NewHandle(filename string) string
}

// ShardedGenerator produces Git-style sharded handles:
// uploads/ab/cd1234ef5678_filename. Sharding keeps any single prefix
// directory from growing unbounded on filesystem backends.
type ShardedGenerator struct {
	// ShardLength controls how many characters form the shard prefix
	ShardLength int
}

// NewShardedGenerator returns the default generator
func NewShardedGenerator() *ShardedGenerator {
	return &ShardedGenerator{ShardLength: 2}
}

func (g *ShardedGenerator) NewHandle(filename string) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")

	shardLen := g.ShardLength
	if shardLen <= 0 || shardLen >= len(id) {
		shardLen = 2
	}
	shard := id[:shardLen]
	remaining := id[shardLen:]

	name := remaining
	if filename != "" {
		name = fmt.Sprintf("%s_%s", remaining, sanitizeFilename(filename))
	}

	return fmt.Sprintf("uploads/%s/%s", shard, name)
}

// FlatGenerator produces unsharded handles of the form uploads/<uuid>.
// Useful when the backend already handles key distribution (S3).
type FlatGenerator struct{}

func NewFlatGenerator() *FlatGenerator {
	return &FlatGenerator{}
}

func (g *FlatGenerator) NewHandle(filename string) string {
	id := uuid.New().String()
	if filename != "" {
		return fmt.Sprintf("uploads/%s_%s", id, sanitizeFilename(filename))
	}
	return fmt.Sprintf("uploads/%s", id)
}

// sanitizeFilename replaces characters that are unsafe in keys or paths
func sanitizeFilename(filename string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "_",
	)
	return replacer.Replace(filename)
}
