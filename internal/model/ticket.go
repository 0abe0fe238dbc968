package model

import (
	"strings"
	"time"
)

// Identifiers 報名者的聯絡識別欄位，空字串代表未提供
type Identifiers struct {
	Phone  string `json:"phone,omitempty" validate:"omitempty,phone"`
	Email  string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Handle string `json:"handle,omitempty" validate:"omitempty,max=100"`
}

// IdentifierField 欄位名稱，用於重複報名的錯誤訊息
const (
	FieldPhone  = "phone"
	FieldEmail  = "email"
	FieldHandle = "handle"
)

// Normalize 去除前後空白，email 轉小寫
func (i Identifiers) Normalize() Identifiers {
	return Identifiers{
		Phone:  strings.TrimSpace(i.Phone),
		Email:  strings.ToLower(strings.TrimSpace(i.Email)),
		Handle: strings.TrimSpace(i.Handle),
	}
}

// IsEmpty 是否一個識別欄位都沒有
func (i Identifiers) IsEmpty() bool {
	return i.Phone == "" && i.Email == "" && i.Handle == ""
}

// IdentifierValue 單一識別欄位與其值
type IdentifierValue struct {
	Field string
	Value string
}

// Supplied 依 phone -> email -> handle 順序回傳有值的欄位
func (i Identifiers) Supplied() []IdentifierValue {
	out := make([]IdentifierValue, 0, 3)
	if i.Phone != "" {
		out = append(out, IdentifierValue{Field: FieldPhone, Value: i.Phone})
	}
	if i.Email != "" {
		out = append(out, IdentifierValue{Field: FieldEmail, Value: i.Email})
	}
	if i.Handle != "" {
		out = append(out, IdentifierValue{Field: FieldHandle, Value: i.Handle})
	}
	return out
}

// Registrant 報名資料
type Registrant struct {
	Name string `json:"name" validate:"required,max=255"`
	Identifiers
	IsSuperTicket bool   `json:"is_super_ticket"`
	ProofImage    string `json:"proof_image,omitempty" validate:"omitempty,max=2048"`
	PurchaseProof string `json:"purchase_proof,omitempty" validate:"omitempty,max=2048"`
	FollowProof   string `json:"follow_proof,omitempty" validate:"omitempty,max=2048"`
}

// IssuedTicket 已發給報名者的票券
type IssuedTicket struct {
	ID            int    `json:"id" db:"id"`
	TicketID      string `json:"ticket_id" db:"ticket_id"`
	CompetitionID int    `json:"competition_id" db:"competition_id"`
	SlotID        int    `json:"-" db:"slot_id"`
	Name          string `json:"name" db:"name"`
	Identifiers
	Numbers       []string  `json:"numbers" db:"numbers"`
	Tier          Tier      `json:"tier" db:"tier"`
	IssueDate     time.Time `json:"issue_date" db:"issue_date"`
	ExpiryDate    time.Time `json:"expiry_date" db:"expiry_date"`
	IsSuperTicket bool      `json:"is_super_ticket" db:"is_super_ticket"`
	ProofImage    string    `json:"proof_image,omitempty" db:"proof_image"`
	PurchaseProof string    `json:"purchase_proof,omitempty" db:"purchase_proof"`
	FollowProof   string    `json:"follow_proof,omitempty" db:"follow_proof"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// IsWinner 是否為中獎票
func (t *IssuedTicket) IsWinner() bool {
	return t.Tier.IsWinning()
}

// WinnersByTier 依等級分組的中獎票券
type WinnersByTier map[Tier][]*IssuedTicket
