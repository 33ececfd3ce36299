package solarprofile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBounds(t *testing.T) {
	for _, lat := range []float64{0, 15, 35, 60} {
		profile := Generate(lat)
		require.Len(t, profile, HoursPerRepr)
		sum := 0.0
		for _, v := range profile {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
			sum += v
		}
		assert.Greater(t, sum, 0.0)
	}
}

func TestGenerateNightHoursZero(t *testing.T) {
	profile := Generate(35)
	for month := 0; month < 12; month++ {
		assert.Equal(t, 0.0, profile[month*24+0])
		assert.Equal(t, 0.0, profile[month*24+23])
	}
}

func TestCompressRoundTrip(t *testing.T) {
	full := make([]float64, 8760)
	values := make([]float64, 12*24)
	idx := 0
	for m, ndays := range daysInMonth {
		for d := 0; d < ndays; d++ {
			for h := 0; h < 24; h++ {
				v := float64(m*24+h) / 1000.0
				values[m*24+h] = v
				full[idx] = v
				idx++
			}
		}
	}

	compressed, err := CompressTo288(full)
	require.NoError(t, err)
	for i, v := range values {
		assert.InDelta(t, v, compressed[i], 1e-9)
	}
}

func TestCompressWrongLength(t *testing.T) {
	_, err := CompressTo288(make([]float64, 100))
	assert.Error(t, err)
}

func TestRescaleToHintKeepsSamplesInUnitRange(t *testing.T) {
	profile := Generate(35)
	rescaled := RescaleToHint(profile, 25) // percent form
	for _, v := range rescaled {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
