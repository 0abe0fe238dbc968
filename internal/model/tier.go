package model

// Tier 獎項等級
type Tier string

const (
	TierGrand       Tier = "Grand"
	TierSilver      Tier = "Silver"
	TierBronze      Tier = "Bronze"
	TierConsolation Tier = "Consolation"
	TierNone        Tier = "None"
)

// WinningTiers 依中獎門檻由高到低排列
var WinningTiers = []Tier{TierGrand, TierSilver, TierBronze, TierConsolation}

// MinWinningMatch 最低中獎門檻 (Consolation)
const MinWinningMatch = 4

// IsValid 驗證等級是否有效
func (t Tier) IsValid() bool {
	switch t {
	case TierGrand, TierSilver, TierBronze, TierConsolation, TierNone:
		return true
	}
	return false
}

// IsWinning 是否為中獎等級
func (t Tier) IsWinning() bool {
	return t.IsValid() && t != TierNone
}

// MatchCount 該等級需要與種子號碼相同的數字個數，TierNone 回傳 0
func (t Tier) MatchCount() int {
	switch t {
	case TierGrand:
		return 7
	case TierSilver:
		return 6
	case TierBronze:
		return 5
	case TierConsolation:
		return 4
	}
	return 0
}

// TierForMatchCount 由相同數字個數推算等級，少於 4 個為 TierNone
func TierForMatchCount(matches int) Tier {
	switch {
	case matches >= 7:
		return TierGrand
	case matches == 6:
		return TierSilver
	case matches == 5:
		return TierBronze
	case matches == 4:
		return TierConsolation
	}
	return TierNone
}
