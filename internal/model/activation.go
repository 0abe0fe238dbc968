package model

import "time"

// Activation 報名者針對已發出票券提出的兌獎/啟用申請
type Activation struct {
	ID            int    `json:"id" db:"id"`
	TicketID      string `json:"ticket_id" db:"ticket_id"`
	CompetitionID int    `json:"competition_id" db:"competition_id"`
	Name          string `json:"name,omitempty" db:"name"`
	Identifiers
	CountryCode string    `json:"country_code,omitempty" db:"country_code"`
	Numbers     []string  `json:"numbers" db:"numbers"`
	TicketImage string    `json:"ticket_image,omitempty" db:"ticket_image"`
	ProofImage  string    `json:"proof_image,omitempty" db:"proof_image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// SubmitActivationRequest 兌獎申請，ticket_id 必填，phone 與 email 至少一個
type SubmitActivationRequest struct {
	TicketID    string `json:"ticket_id" validate:"required,max=64"`
	Identifiers
	CountryCode string `json:"country_code,omitempty" validate:"omitempty,max=8"`
	TicketImage string `json:"ticket_image,omitempty" validate:"omitempty,max=2048"`
	ProofImage  string `json:"proof_image,omitempty" validate:"omitempty,max=2048"`
}
