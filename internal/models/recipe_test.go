package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	assert.Equal(t, Lines{"a", "b"}, SplitLines("a\n\n  b \n"))
	assert.Equal(t, Lines{}, SplitLines(""))
	assert.Equal(t, Lines{}, SplitLines("  \n\t\n"))
	assert.Equal(t, Lines{"first", "second", "third"}, SplitLines("first\nsecond\nthird"))
}

func TestLinesScanJSON(t *testing.T) {
	var l Lines
	err := l.Scan([]byte(`["flour","eggs"]`))
	assert.NoError(t, err)
	assert.Equal(t, Lines{"flour", "eggs"}, l)
}

func TestLinesScanLegacyText(t *testing.T) {
	var l Lines
	err := l.Scan("flour\n\n eggs \n")
	assert.NoError(t, err)
	assert.Equal(t, Lines{"flour", "eggs"}, l)
}

func TestLinesScanNil(t *testing.T) {
	var l Lines
	err := l.Scan(nil)
	assert.NoError(t, err)
	assert.Equal(t, Lines{}, l)
}

func TestLinesValue(t *testing.T) {
	v, err := Lines{"a", "b"}.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(v.([]byte)))

	v, err = Lines{}.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestLikesCount(t *testing.T) {
	cases := map[string]int{
		"":     0,
		"0":    0,
		"42":   42,
		" 7 ":  7,
		"1.2k": 0,
		"-3":   0,
	}
	for likes, want := range cases {
		r := &Recipe{Likes: likes}
		assert.Equal(t, want, r.LikesCount(), "likes=%q", likes)
	}
}

func TestOwnedBy(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	r := &Recipe{UserID: &owner}
	assert.True(t, r.OwnedBy(owner))
	assert.False(t, r.OwnedBy(other))

	anon := &Recipe{}
	assert.False(t, anon.OwnedBy(owner))
}
