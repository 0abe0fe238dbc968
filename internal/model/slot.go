package model

import "time"

// GeneratedSlot 預先產生、尚未發出的票號組合
type GeneratedSlot struct {
	ID            int        `json:"id" db:"id"`
	CompetitionID int        `json:"competition_id" db:"competition_id"`
	Numbers       []string   `json:"numbers" db:"numbers"`
	NumberKey     string     `json:"-" db:"number_key"`
	Tier          Tier       `json:"tier" db:"tier"`
	PoolRound     int        `json:"pool_round" db:"pool_round"`
	Assigned      bool       `json:"assigned" db:"assigned"`
	AssignedAt    *time.Time `json:"assigned_at,omitempty" db:"assigned_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// PoolStats 票池統計
type PoolStats struct {
	Generated int `json:"generated"`
	Assigned  int `json:"assigned"`
}

// IsExhausted 已上線的票號都已發出；尚未上線的輪次不計入
func (s PoolStats) IsExhausted() bool {
	return s.Generated > 0 && s.Assigned >= s.Generated
}

// RegenerationJob 票池用盡時送往 queue 的補票任務
type RegenerationJob struct {
	JobID             string     `json:"job_id"`
	CompetitionID     int        `json:"competition_id"`
	Round             int        `json:"round"`
	Numbers           []string   `json:"numbers"`
	Quotas            TierCounts `json:"quotas"`
	TotalParticipants int        `json:"total_participants"`
	RequestedAt       time.Time  `json:"requested_at"`
}

// RoundComposition 某一輪已寫入的票號組成，上線前用來計算還缺多少
type RoundComposition struct {
	Tiers   TierCounts `json:"tiers"`
	Fillers int        `json:"fillers"`
}

func (r RoundComposition) Total() int {
	return r.Tiers.Total() + r.Fillers
}

// SlotFilter 後台列出票池的條件，Assigned 為 nil 時不篩選
type SlotFilter struct {
	Assigned *bool
	Limit    int
	Offset   int
}

// ListSlotsQuery GET /competitions/:id/slots 的查詢參數
type ListSlotsQuery struct {
	Assigned *bool `form:"assigned"`
	Limit    int   `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset   int   `form:"offset" binding:"omitempty,min=0"`
}

// SlotPage 票池分頁結果，Total 為符合條件的總筆數
type SlotPage struct {
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Slots  []*GeneratedSlot `json:"slots"`
}
