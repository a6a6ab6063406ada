package wordfilter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldguard/pkg/wordfilter"
)

func TestBasic(t *testing.T) {
	list := wordfilter.NewList("bad", "worse")

	tests := []struct {
		name    string
		text    string
		want    string
		matched bool
	}{
		{name: "matches a separated token", text: "this is bad", want: "bad", matched: true},
		{name: "ignores concatenated words", text: "thisisbad", matched: false},
		{name: "matches the first forbidden token", text: "worse and bad", want: "worse", matched: true},
		{name: "is case sensitive", text: "this is BAD", matched: false},
		{name: "does not strip punctuation", text: "this is bad!", matched: false},
		{name: "tolerates repeated spaces", text: "so  bad  here", want: "bad", matched: true},
		{name: "splits only on spaces", text: "this\tbad", matched: false},
		{name: "passes empty text", text: "", matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := wordfilter.Basic(list, tt.text)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("passes with empty list", func(t *testing.T) {
		_, ok := wordfilter.Basic(wordfilter.NewList(), "this is bad")
		assert.False(t, ok)
	})

	t.Run("passes with nil list", func(t *testing.T) {
		_, ok := wordfilter.Basic(nil, "this is bad")
		assert.False(t, ok)
	})

	t.Run("matches configured words by their trimmed form", func(t *testing.T) {
		got, ok := wordfilter.Basic(wordfilter.NewList(" bad "), "so bad")
		assert.True(t, ok)
		assert.Equal(t, "bad", got)
	})
}

func TestExhaustive(t *testing.T) {
	list := wordfilter.NewList("bad")

	tests := []struct {
		name    string
		text    string
		matched bool
	}{
		{name: "finds a word run together with others", text: "thisisbad", matched: true},
		{name: "finds a word after stripping separators", text: "x-bad-y", matched: true},
		{name: "finds a separated word", text: "this is bad", matched: true},
		{name: "lowercases before matching", text: "ThisIsBAD", matched: true},
		{name: "finds a word split by punctuation", text: "b.a.d", matched: true},
		{name: "finds a word at the start", text: "badly", matched: true},
		{name: "passes text without the word", text: "th1s 1s b@d", matched: false},
		{name: "passes clean text", text: "good morning", matched: false},
		{name: "passes empty text", text: "", matched: false},
		{name: "passes punctuation only", text: "!!!", matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := wordfilter.Exhaustive(list, tt.text)
			assert.Equal(t, tt.matched, ok)
		})
	}

	t.Run("returns the normalized match", func(t *testing.T) {
		got, ok := wordfilter.Exhaustive(list, "X-BAD-Y")
		assert.True(t, ok)
		assert.Equal(t, "bad", got)
	})

	t.Run("reports earliest start offset first", func(t *testing.T) {
		got, ok := wordfilter.Exhaustive(wordfilter.NewList("sis", "this"), "thisisbad")
		assert.True(t, ok)
		assert.Equal(t, "this", got)
	})

	t.Run("reports shorter window first at the same offset", func(t *testing.T) {
		got, ok := wordfilter.Exhaustive(wordfilter.NewList("thisis", "th"), "thisisbad")
		assert.True(t, ok)
		assert.Equal(t, "th", got)
	})

	t.Run("never matches listed words that normalization removes", func(t *testing.T) {
		_, ok := wordfilter.Exhaustive(wordfilter.NewList("Bad", "b-d"), "Bad b-d")
		assert.False(t, ok)
	})

	t.Run("matches a word covering the whole text", func(t *testing.T) {
		_, ok := wordfilter.Exhaustive(list, "bad")
		assert.True(t, ok)
	})

	t.Run("matches near the end of long input", func(t *testing.T) {
		text := strings.Repeat("a", 500) + "bad"
		_, ok := wordfilter.Exhaustive(list, text)
		assert.True(t, ok)
	})

	t.Run("keeps accented letters between word characters", func(t *testing.T) {
		_, ok := wordfilter.Exhaustive(list, "baüd")
		assert.False(t, ok)
	})

	t.Run("matches accented words case-insensitively", func(t *testing.T) {
		got, ok := wordfilter.Exhaustive(wordfilter.NewList("café"), "CAFÉ")
		assert.True(t, ok)
		assert.Equal(t, "café", got)
	})

	t.Run("passes with nil list", func(t *testing.T) {
		_, ok := wordfilter.Exhaustive(nil, "bad")
		assert.False(t, ok)
	})
}

func BenchmarkExhaustive(b *testing.B) {
	list := wordfilter.NewList("bad", "worse", "terrible")
	text := strings.Repeat("some perfectly fine words ", 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wordfilter.Exhaustive(list, text)
	}
}
