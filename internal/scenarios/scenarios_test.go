package scenarios

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnown(t *testing.T) {
	for _, name := range Names() {
		s, ok := Lookup(name)
		assert.True(t, ok)
		assert.Equal(t, name, s.Name)
		assert.NotEmpty(t, s.Description)
		assert.Greater(t, s.SolarCapexPerKW, 0.0)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("nonexistent")
	assert.False(t, ok)
}

func TestAllMatchesNames(t *testing.T) {
	assert.Equal(t, len(Names()), len(All()))
}
