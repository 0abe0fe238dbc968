// Package numberset 產生 7 個兩位數字 ("00".."99") 組成的票號組合，
// 並計算與種子號碼 (中獎組合) 的相同個數。
package numberset

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"lucky-draw-backend/internal/model"
	apperrors "lucky-draw-backend/pkg/app_errors"
)

// DigitSpace 每個位置可選的數字數量 ("00".."99")
const DigitSpace = 100

// NumberSet 一組 7 個兩位數字，順序不帶任何意義
type NumberSet []string

// Key 排序後以逗號串接，作為去重用的 multiset key
func (s NumberSet) Key() string {
	return Key(s)
}

// Key 計算任意號碼組合的 multiset key
func Key(numbers []string) string {
	sorted := slices.Clone(numbers)
	slices.Sort(sorted)
	return strings.Join(sorted, ",")
}

// MatchCount 以集合方式計算 numbers 中有幾個數字出現在 seed 內 (不看位置)
func MatchCount(numbers, seed []string) int {
	inSeed := make(map[string]struct{}, len(seed))
	for _, d := range seed {
		inSeed[d] = struct{}{}
	}
	count := 0
	for _, d := range numbers {
		if _, ok := inSeed[d]; ok {
			count++
		}
	}
	return count
}

// FormatDigit 0..99 轉為兩位數字串
func FormatDigit(n int) string {
	return fmt.Sprintf("%02d", n)
}

// ValidateSeed 種子號碼必須為 7 個互不相同的兩位數字
func ValidateSeed(seed []string) error {
	if len(seed) != model.SeedSize {
		return apperrors.NewValidationError("numbers", fmt.Sprintf("must contain exactly %d numbers", model.SeedSize))
	}
	seen := make(map[string]struct{}, len(seed))
	for _, d := range seed {
		if !IsDigit(d) {
			return apperrors.NewValidationError("numbers", fmt.Sprintf("%q is not a two-digit string", d))
		}
		if _, dup := seen[d]; dup {
			return apperrors.NewValidationError("numbers", fmt.Sprintf("%q appears more than once", d))
		}
		seen[d] = struct{}{}
	}
	return nil
}

// IsDigit 是否為 "00".."99"
func IsDigit(d string) bool {
	if len(d) != 2 {
		return false
	}
	n, err := strconv.Atoi(d)
	return err == nil && n >= 0 && n < DigitSpace
}

// Capacity 固定前 k 個種子數字時，最多能產生多少組不重複的組合：C(100-7, 7-k)
func Capacity(fixedPrefixCount int) int {
	if fixedPrefixCount < 0 || fixedPrefixCount > model.SeedSize {
		return 0
	}
	return binomial(DigitSpace-model.SeedSize, model.SeedSize-fixedPrefixCount)
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// KeySet 呼叫端持有的去重集合，跨整批產生共用
type KeySet map[string]struct{}

func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}
