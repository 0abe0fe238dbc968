package numberset_test

import (
	"testing"

	"lucky-draw-backend/internal/numberset"

	"github.com/stretchr/testify/assert"
)

func TestKey_OrderIndependent(t *testing.T) {
	a := numberset.NumberSet{"90", "03", "41", "17", "22", "78", "56"}
	b := numberset.NumberSet{"03", "17", "22", "41", "56", "78", "90"}

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "03,17,22,41,56,78,90", a.Key())
	// 不可修改原本的順序
	assert.Equal(t, "90", a[0])
}

func TestMatchCount(t *testing.T) {
	seed := []string{"03", "17", "22", "41", "56", "78", "90"}

	assert.Equal(t, 7, numberset.MatchCount([]string{"90", "78", "56", "41", "22", "17", "03"}, seed))
	assert.Equal(t, 4, numberset.MatchCount([]string{"03", "17", "22", "41", "00", "01", "02"}, seed))
	assert.Equal(t, 0, numberset.MatchCount([]string{"00", "01", "02", "04", "05", "06", "07"}, seed))
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 1, numberset.Capacity(7))
	assert.Equal(t, 93, numberset.Capacity(6))
	assert.Equal(t, 4278, numberset.Capacity(5))
	assert.Equal(t, 129766, numberset.Capacity(4))
	assert.Equal(t, 0, numberset.Capacity(8))
}

func TestValidateSeed(t *testing.T) {
	assert.NoError(t, numberset.ValidateSeed([]string{"00", "11", "22", "33", "44", "55", "99"}))
	assert.Error(t, numberset.ValidateSeed([]string{"00", "11", "22", "33", "44", "55"}))
	assert.Error(t, numberset.ValidateSeed([]string{"00", "11", "22", "33", "44", "55", "ab"}))
}
