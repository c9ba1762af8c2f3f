package testhelpers

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// DotGoldie returns a goldie instance for Graphviz fixtures.
func DotGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".golden.dot"))
}

// MermaidGoldie returns a goldie instance for Mermaid fixtures.
func MermaidGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".golden.mmd"))
}

// TextGoldie returns a goldie instance for plain text fixtures.
func TextGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".golden.txt"))
}
