package model

import "time"

// TicketType 一般票或超級票，各自有不同獎品
type TicketType string

const (
	TicketTypeRegular TicketType = "regular"
	TicketTypeSuper   TicketType = "super"
)

func (t TicketType) IsValid() bool {
	return t == TicketTypeRegular || t == TicketTypeSuper
}

// PrizeTier 獎品設定：中獎等級 x 票種 -> 獎品描述
type PrizeTier struct {
	ID         int        `json:"id" db:"id"`
	MatchType  Tier       `json:"match_type" db:"match_type"`
	TicketType TicketType `json:"ticket_type" db:"ticket_type"`
	Prize      string     `json:"prize" db:"prize"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// SavePrizeTierRequest 新增或更新獎品設定
type SavePrizeTierRequest struct {
	MatchType  Tier       `json:"match_type" binding:"required"`
	TicketType TicketType `json:"ticket_type" binding:"required"`
	Prize      string     `json:"prize" binding:"required,max=255"`
}

// UpdatePrizeRequest 只更新獎品內容
type UpdatePrizeRequest struct {
	Prize string `json:"prize" binding:"required,max=255"`
}
