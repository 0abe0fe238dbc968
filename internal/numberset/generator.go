package numberset

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"lucky-draw-backend/internal/model"
	apperrors "lucky-draw-backend/pkg/app_errors"
)

// DefaultMaxAttempts 單一組合最多重試次數
const DefaultMaxAttempts = 10000

// Generator 產生票號組合。rand.Rand 本身不是 goroutine-safe，所以用 mutex 保護
type Generator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	maxAttempts int
}

// NewGenerator 建立以時間為種子的 Generator，maxAttempts <= 0 時使用預設值
func NewGenerator(maxAttempts int) *Generator {
	now := uint64(time.Now().UnixNano())
	return NewGeneratorWithSource(rand.NewPCG(now, now>>7|1), maxAttempts)
}

// NewGeneratorWithSource 指定亂數來源，測試時用固定種子
func NewGeneratorWithSource(src rand.Source, maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		rng:         rand.New(src),
		maxAttempts: maxAttempts,
	}
}

// Generate 取 seed 前 fixedPrefixCount 個數字，其餘位置補上既不在 seed、也不與已選數字重複的亂數，
// 因此與 seed 的相同個數剛好等於 fixedPrefixCount。結果會打亂順序，且 key 不會出現在 seen 中；
// 成功後 key 會被加入 seen。
func (g *Generator) Generate(seed []string, fixedPrefixCount int, seen KeySet) (NumberSet, error) {
	if fixedPrefixCount < 0 || fixedPrefixCount > model.SeedSize {
		return nil, apperrors.NewValidationError("fixed_prefix_count", fmt.Sprintf("must be between 0 and %d", model.SeedSize))
	}
	if fixedPrefixCount == 0 {
		return g.GenerateFiller(seed, seen)
	}
	if err := ValidateSeed(seed); err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(seed))
	for _, d := range seed {
		excluded[d] = struct{}{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		set := make(NumberSet, 0, model.SeedSize)
		set = append(set, seed[:fixedPrefixCount]...)

		chosen := make(map[string]struct{}, model.SeedSize)
		for len(set) < model.SeedSize {
			d := FormatDigit(g.rng.IntN(DigitSpace))
			if _, ok := excluded[d]; ok {
				continue
			}
			if _, ok := chosen[d]; ok {
				continue
			}
			chosen[d] = struct{}{}
			set = append(set, d)
		}

		g.shuffle(set)
		key := set.Key()
		if seen.Has(key) {
			continue
		}
		seen.Add(key)
		return set, nil
	}

	return nil, fmt.Errorf("%w: prefix %d after %d attempts", apperrors.ErrGenerationExhausted, fixedPrefixCount, g.maxAttempts)
}

// GenerateFiller 未中獎 (TierNone) 的組合：7 個完全隨機且互不重複的數字，
// 與 seed 相同個數達到 4 以上 (會誤中 Consolation 以上) 或 key 已存在時重抽。
func (g *Generator) GenerateFiller(seed []string, seen KeySet) (NumberSet, error) {
	if err := ValidateSeed(seed); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		set := g.randomDistinct(model.SeedSize)
		if MatchCount(set, seed) >= model.MinWinningMatch {
			continue
		}
		key := set.Key()
		if seen.Has(key) {
			continue
		}
		seen.Add(key)
		return set, nil
	}

	return nil, fmt.Errorf("%w: filler after %d attempts", apperrors.ErrGenerationExhausted, g.maxAttempts)
}

// GenerateBatch 同一等級連續產生 count 組
func (g *Generator) GenerateBatch(seed []string, tier model.Tier, count int, seen KeySet) ([]NumberSet, error) {
	sets := make([]NumberSet, 0, count)
	for i := 0; i < count; i++ {
		var (
			set NumberSet
			err error
		)
		if tier == model.TierNone {
			set, err = g.GenerateFiller(seed, seen)
		} else {
			set, err = g.Generate(seed, tier.MatchCount(), seen)
		}
		if err != nil {
			return nil, fmt.Errorf("generate %s set %d/%d: %w", tier, i+1, count, err)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// randomDistinct 從 00..99 抽出 n 個不重複的數字 (部分 Fisher-Yates)
func (g *Generator) randomDistinct(n int) NumberSet {
	digits := make([]int, DigitSpace)
	for i := range digits {
		digits[i] = i
	}
	set := make(NumberSet, n)
	for i := 0; i < n; i++ {
		j := i + g.rng.IntN(DigitSpace-i)
		digits[i], digits[j] = digits[j], digits[i]
		set[i] = FormatDigit(digits[i])
	}
	return set
}

func (g *Generator) shuffle(set NumberSet) {
	g.rng.Shuffle(len(set), func(i, j int) {
		set[i], set[j] = set[j], set[i]
	})
}

// Sorted 回傳排序後的複本，方便測試與顯示
func Sorted(set []string) []string {
	out := slices.Clone(set)
	slices.Sort(out)
	return out
}
