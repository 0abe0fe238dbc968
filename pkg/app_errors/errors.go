package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrInternalServerError     = errors.New("internal server error")
	ErrCompetitionNotFound     = errors.New("competition not found")
	ErrNoActiveCompetition     = errors.New("no active or recent competition")
	ErrActiveCompetitionExists = errors.New("an active competition already exists")
	ErrInvalidStatusTransition = errors.New("invalid competition status transition")
	ErrDuplicateRegistrant     = errors.New("duplicate registrant")
	ErrPoolExhausted           = errors.New("ticket pool exhausted")
	ErrSlotClaimConflict       = errors.New("slot already claimed")
	ErrQuotaExceeded           = errors.New("tier quota exceeded")
	ErrGenerationExhausted     = errors.New("number set generation attempts exhausted")
	ErrRegenerationFailure     = errors.New("pool regeneration failed")
	ErrTicketNotFound          = errors.New("ticket not found")
	ErrTicketIDCollision       = errors.New("ticket identifier collision")
	ErrPrizeTierNotFound       = errors.New("prize tier not found")
)

// ValidationError 輸入格式錯誤，Field 為出錯欄位
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// DuplicateRegistrantError 同一場活動中重複使用的聯絡欄位 (phone / email / handle)
type DuplicateRegistrantError struct {
	Field string
}

func NewDuplicateRegistrantError(field string) *DuplicateRegistrantError {
	return &DuplicateRegistrantError{Field: field}
}

func (e *DuplicateRegistrantError) Error() string {
	return fmt.Sprintf("duplicate %s already used in this competition", e.Field)
}

func (e *DuplicateRegistrantError) Unwrap() error {
	return ErrDuplicateRegistrant
}
