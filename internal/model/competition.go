package model

import (
	"time"

	apperrors "lucky-draw-backend/pkg/app_errors"
)

// SeedSize 每組號碼固定 7 個兩位數字
const SeedSize = 7

// CompetitionStatus 活動狀態類型
type CompetitionStatus string

const (
	CompetitionStatusActive CompetitionStatus = "active"
	CompetitionStatusEnded  CompetitionStatus = "ended"
)

// IsValid 驗證狀態是否有效
func (s CompetitionStatus) IsValid() bool {
	switch s {
	case CompetitionStatusActive, CompetitionStatusEnded:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態，ended 為終態
func (s CompetitionStatus) CanTransitionTo(target CompetitionStatus) bool {
	transitions := map[CompetitionStatus][]CompetitionStatus{
		CompetitionStatusActive: {CompetitionStatusEnded},
		CompetitionStatusEnded:  {}, // 不能轉換到任何狀態
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// TierCounts 各中獎等級的數量，用於名額 (quota) 與已中獎人數
type TierCounts struct {
	Grand       int `json:"grand"`
	Silver      int `json:"silver"`
	Bronze      int `json:"bronze"`
	Consolation int `json:"consolation"`
}

// For 取出指定等級的數量，TierNone 回傳 0
func (c TierCounts) For(t Tier) int {
	switch t {
	case TierGrand:
		return c.Grand
	case TierSilver:
		return c.Silver
	case TierBronze:
		return c.Bronze
	case TierConsolation:
		return c.Consolation
	}
	return 0
}

// Add 指定等級加上 n，TierNone 忽略
func (c *TierCounts) Add(t Tier, n int) {
	switch t {
	case TierGrand:
		c.Grand += n
	case TierSilver:
		c.Silver += n
	case TierBronze:
		c.Bronze += n
	case TierConsolation:
		c.Consolation += n
	}
}

// Total 所有中獎等級的總和
func (c TierCounts) Total() int {
	return c.Grand + c.Silver + c.Bronze + c.Consolation
}

// Remaining 名額扣除已中獎數，不會小於 0
func (c TierCounts) Remaining(used TierCounts) TierCounts {
	sub := func(a, b int) int {
		if a-b < 0 {
			return 0
		}
		return a - b
	}
	return TierCounts{
		Grand:       sub(c.Grand, used.Grand),
		Silver:      sub(c.Silver, used.Silver),
		Bronze:      sub(c.Bronze, used.Bronze),
		Consolation: sub(c.Consolation, used.Consolation),
	}
}

// Competition 活動 (中獎組合) 模型
type Competition struct {
	ID                int               `json:"id" db:"id"`
	Numbers           []string          `json:"numbers" db:"numbers"`
	TotalParticipants int               `json:"total_participants" db:"total_participants"`
	Quotas            TierCounts        `json:"quotas"`
	Winners           TierCounts        `json:"winners"`
	StartDate         time.Time         `json:"start_date" db:"start_date"`
	EndDate           time.Time         `json:"end_date" db:"end_date"`
	Status            CompetitionStatus `json:"status" db:"status"`
	PoolRound         int               `json:"pool_round" db:"pool_round"`
	EndedAt           *time.Time        `json:"ended_at,omitempty" db:"ended_at"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// IsActive 檢查活動是否進行中
func (c *Competition) IsActive() bool {
	return c.Status == CompetitionStatusActive
}

// IsOverdue 活動結束日已過 (以日期比較)
func (c *Competition) IsOverdue(now time.Time) bool {
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return c.EndDate.Before(today)
}

// CreateCompetitionParams 建立活動的參數
type CreateCompetitionParams struct {
	Numbers           []string
	Quotas            TierCounts
	TotalParticipants int
	StartDate         time.Time
	EndDate           time.Time
}

// CompetitionDetail 活動與其票券、兌獎資料
type CompetitionDetail struct {
	Competition *Competition    `json:"competition"`
	Tickets     []*IssuedTicket `json:"tickets"`
	Activations []*Activation   `json:"activations"`
}

// DateLayout 活動起訖日期格式
const DateLayout = "2006-01-02"

// CreateCompetitionRequest 建立活動的 API 請求
type CreateCompetitionRequest struct {
	Numbers           []string   `json:"numbers" binding:"required,len=7"`
	Quotas            TierCounts `json:"quotas"`
	TotalParticipants int        `json:"total_participants" binding:"required,gt=0"`
	StartDate         string     `json:"start_date" binding:"required"`
	EndDate           string     `json:"end_date" binding:"required"`
}

// ToParams 解析日期字串
func (r CreateCompetitionRequest) ToParams() (CreateCompetitionParams, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return CreateCompetitionParams{}, apperrors.NewValidationError("start_date", "must be formatted as YYYY-MM-DD")
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return CreateCompetitionParams{}, apperrors.NewValidationError("end_date", "must be formatted as YYYY-MM-DD")
	}
	return CreateCompetitionParams{
		Numbers:           r.Numbers,
		Quotas:            r.Quotas,
		TotalParticipants: r.TotalParticipants,
		StartDate:         start,
		EndDate:           end,
	}, nil
}
