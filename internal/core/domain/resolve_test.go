package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func std(id, name string) Standard {
	return Standard{ID: id, Name: name}
}

// TestResolveCitation_ExactMatch tests normalised exact matching
func TestResolveCitation_ExactMatch(t *testing.T) {
	standards := []Standard{
		std("1", "RT/CE/S/104.pdf"),
		std("2", "RT CE S 104 (1).pdf"),
	}

	got, err := ResolveCitation("RT/CE/S/104", standards)
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID, "exact normalised match wins over fuzzy when both exist")
}

// TestResolveCitation_CaseAndSuffixInsensitive tests normalisation
func TestResolveCitation_CaseAndSuffixInsensitive(t *testing.T) {
	standards := []Standard{std("1", "EN 50126.PDF")}

	got, err := ResolveCitation("  en 50126  ", standards)
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
}

// TestResolveCitation_FuzzySubstring tests the second pass
func TestResolveCitation_FuzzySubstring(t *testing.T) {
	standards := []Standard{
		std("1", "EN 50126-1.pdf"),
		std("2", "totally unrelated.pdf"),
	}

	got, err := ResolveCitation("EN 50126-1:2017 Railway Applications", standards)
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
}

// TestResolveCitation_ClosestLengthTieBreak tests the documented heuristic
func TestResolveCitation_ClosestLengthTieBreak(t *testing.T) {
	standards := []Standard{
		std("short", "EN 50126.pdf"),
		std("long", "EN 50126-1 Railway Applications RAMS.pdf"),
	}

	// Both names contain or are contained by the citation; the candidate
	// whose original name length is closest to the citation's wins.
	got, err := ResolveCitation("EN 50126-1 Railway Applications RAMS spec", standards)
	require.NoError(t, err)
	assert.Equal(t, "long", got.ID)
}

// TestResolveCitation_NotFound tests the miss path
func TestResolveCitation_NotFound(t *testing.T) {
	standards := []Standard{std("1", "ISO 9001.pdf")}

	got, err := ResolveCitation("EN 50128", standards)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestResolveCitation_EmptyInputs tests degenerate inputs
func TestResolveCitation_EmptyInputs(t *testing.T) {
	_, err := ResolveCitation("", []Standard{std("1", "a.pdf")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ResolveCitation("a", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
