package numberset_test

import (
	"math/rand/v2"
	"testing"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/numberset"
	apperrors "lucky-draw-backend/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSeed = []string{"03", "17", "22", "41", "56", "78", "90"}

func newTestGenerator(maxAttempts int) *numberset.Generator {
	return numberset.NewGeneratorWithSource(rand.NewPCG(42, 1024), maxAttempts)
}

func assertDistinctDigits(t *testing.T, set []string) {
	t.Helper()
	require.Len(t, set, model.SeedSize)
	seen := make(map[string]bool, len(set))
	for _, d := range set {
		assert.True(t, numberset.IsDigit(d), "digit %q should be two-digit", d)
		assert.False(t, seen[d], "digit %q repeated in %v", d, set)
		seen[d] = true
	}
}

func TestGenerate_MatchCountEqualsPrefix(t *testing.T) {
	gen := newTestGenerator(0)

	for k := model.MinWinningMatch; k <= model.SeedSize; k++ {
		seen := numberset.NewKeySet()
		set, err := gen.Generate(testSeed, k, seen)
		require.NoError(t, err)

		assertDistinctDigits(t, set)
		assert.Equal(t, k, numberset.MatchCount(set, testSeed), "prefix %d", k)
		assert.True(t, seen.Has(set.Key()), "generated key should be recorded")
	}
}

func TestGenerate_TierRoundTrip(t *testing.T) {
	gen := newTestGenerator(0)
	seen := numberset.NewKeySet()

	for _, tier := range model.WinningTiers {
		set, err := gen.Generate(testSeed, tier.MatchCount(), seen)
		require.NoError(t, err)
		assert.Equal(t, tier, model.TierForMatchCount(numberset.MatchCount(set, testSeed)))
	}
}

func TestGenerate_UniqueAcrossBatch(t *testing.T) {
	gen := newTestGenerator(0)
	seen := numberset.NewKeySet()

	sets, err := gen.GenerateBatch(testSeed, model.TierConsolation, 200, seen)
	require.NoError(t, err)
	require.Len(t, sets, 200)

	keys := make(map[string]bool, len(sets))
	for _, s := range sets {
		assert.False(t, keys[s.Key()], "duplicate key %s", s.Key())
		keys[s.Key()] = true
		assert.Equal(t, 4, numberset.MatchCount(s, testSeed))
	}
	assert.Len(t, seen, 200)
}

func TestGenerate_GrandOnlyOnce(t *testing.T) {
	gen := newTestGenerator(50)
	seen := numberset.NewKeySet()

	set, err := gen.Generate(testSeed, model.SeedSize, seen)
	require.NoError(t, err)
	assert.ElementsMatch(t, testSeed, set)

	// 7 個全中只有一種組合，第二次必定耗盡
	_, err = gen.Generate(testSeed, model.SeedSize, seen)
	assert.ErrorIs(t, err, apperrors.ErrGenerationExhausted)
}

func TestGenerate_InvalidPrefix(t *testing.T) {
	gen := newTestGenerator(0)

	_, err := gen.Generate(testSeed, 8, numberset.NewKeySet())
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = gen.Generate(testSeed, -1, numberset.NewKeySet())
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestGenerateFiller_NeverWins(t *testing.T) {
	gen := newTestGenerator(0)
	seen := numberset.NewKeySet()

	for i := 0; i < 500; i++ {
		set, err := gen.GenerateFiller(testSeed, seen)
		require.NoError(t, err)
		assertDistinctDigits(t, set)
		assert.Less(t, numberset.MatchCount(set, testSeed), model.MinWinningMatch)
	}
	assert.Len(t, seen, 500)
}

func TestGenerateFiller_SkipsSeenKeys(t *testing.T) {
	gen := newTestGenerator(0)
	seen := numberset.NewKeySet()

	first, err := gen.GenerateFiller(testSeed, seen)
	require.NoError(t, err)

	second, err := gen.GenerateFiller(testSeed, seen)
	require.NoError(t, err)
	assert.NotEqual(t, first.Key(), second.Key())
}

func TestGenerate_RejectsInvalidSeed(t *testing.T) {
	gen := newTestGenerator(0)

	tests := []struct {
		name string
		seed []string
	}{
		{"too short", []string{"01", "02", "03"}},
		{"duplicate digit", []string{"01", "01", "03", "04", "05", "06", "07"}},
		{"out of range", []string{"01", "02", "03", "04", "05", "06", "100"}},
		{"single char", []string{"1", "02", "03", "04", "05", "06", "07"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.Generate(tt.seed, 5, numberset.NewKeySet())
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

			_, err = gen.GenerateFiller(tt.seed, numberset.NewKeySet())
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}
