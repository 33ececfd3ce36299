package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hybridretrofit/internal/solarprofile"
)

func TestGenerateDeterministic(t *testing.T) {
	profile := solarprofile.Generate(35)
	a := Generate(0.1, profile)
	b := Generate(0.1, profile)
	assert.Equal(t, a, b)
}

func TestGenerateZeroPct(t *testing.T) {
	profile := solarprofile.Generate(35)
	assert.Empty(t, Generate(0, profile))
	assert.Empty(t, Generate(-0.1, profile))
}

func TestGenerateCount(t *testing.T) {
	profile := solarprofile.Generate(35)
	set := Generate(0.25, profile)
	assert.Equal(t, 72, len(set))
}
