package repository

import (
	"context"
	"errors"
	"fmt"

	"lucky-draw-backend/internal/model"
	apperrors "lucky-draw-backend/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	FindByTicketID(ctx context.Context, ticketID string) (*model.IssuedTicket, error)
	ExistsTicketID(ctx context.Context, ticketID string) (bool, error)
	ListByCompetition(ctx context.Context, competitionID int) ([]*model.IssuedTicket, error)
	ListWinners(ctx context.Context, competitionID int) ([]*model.IssuedTicket, error)
	FindRegistrationByIdentifiers(ctx context.Context, competitionID int, ids model.Identifiers) (string, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, ticket *model.IssuedTicket) (*model.IssuedTicket, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `
	id, ticket_id, competition_id, slot_id, name,
	COALESCE(phone, ''), COALESCE(email, ''), COALESCE(handle, ''),
	numbers, tier, issue_date, expiry_date, is_super_ticket,
	COALESCE(proof_image, ''), COALESCE(purchase_proof, ''), COALESCE(follow_proof, ''),
	created_at`

func scanTicket(row rowScanner) (*model.IssuedTicket, error) {
	var t model.IssuedTicket
	err := row.Scan(
		&t.ID,
		&t.TicketID,
		&t.CompetitionID,
		&t.SlotID,
		&t.Name,
		&t.Phone,
		&t.Email,
		&t.Handle,
		&t.Numbers,
		&t.Tier,
		&t.IssueDate,
		&t.ExpiryDate,
		&t.IsSuperTicket,
		&t.ProofImage,
		&t.PurchaseProof,
		&t.FollowProof,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ticketConstraintErrors unique constraint -> 對應的錯誤
var ticketConstraintErrors = map[string]error{
	"uniq_tickets_phone":     apperrors.NewDuplicateRegistrantError(model.FieldPhone),
	"uniq_tickets_email":     apperrors.NewDuplicateRegistrantError(model.FieldEmail),
	"uniq_tickets_handle":    apperrors.NewDuplicateRegistrantError(model.FieldHandle),
	"uniq_tickets_ticket_id": apperrors.ErrTicketIDCollision,
	"uniq_tickets_slot_id":   apperrors.ErrSlotClaimConflict,
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, ticket *model.IssuedTicket) (*model.IssuedTicket, error) {
	query := `
		INSERT INTO tickets (
			ticket_id, competition_id, slot_id, name, phone, email, handle,
			numbers, tier, issue_date, expiry_date, is_super_ticket,
			proof_image, purchase_proof, follow_proof
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + ticketColumns

	created, err := scanTicket(tx.QueryRow(ctx, query,
		ticket.TicketID, ticket.CompetitionID, ticket.SlotID, ticket.Name,
		nullIfEmpty(ticket.Phone), nullIfEmpty(ticket.Email), nullIfEmpty(ticket.Handle),
		ticket.Numbers, ticket.Tier, ticket.IssueDate, ticket.ExpiryDate, ticket.IsSuperTicket,
		nullIfEmpty(ticket.ProofImage), nullIfEmpty(ticket.PurchaseProof), nullIfEmpty(ticket.FollowProof),
	))
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if mapped, known := ticketConstraintErrors[constraint]; known {
				return nil, mapped
			}
		}
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return created, nil
}

func (r *TicketRepositoryImpl) FindByTicketID(ctx context.Context, ticketID string) (*model.IssuedTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE ticket_id = $1`

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, ticketID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("find ticket %s: %w", ticketID, err)
	}
	return ticket, nil
}

func (r *TicketRepositoryImpl) ExistsTicketID(ctx context.Context, ticketID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tickets WHERE ticket_id = $1)`, ticketID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check ticket id: %w", err)
	}
	return exists, nil
}

func (r *TicketRepositoryImpl) ListByCompetition(ctx context.Context, competitionID int) ([]*model.IssuedTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE competition_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, competitionID)
}

// ListWinners 中獎票券，依等級 (Grand -> Consolation) 排序
func (r *TicketRepositoryImpl) ListWinners(ctx context.Context, competitionID int) ([]*model.IssuedTicket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE competition_id = $1 AND tier <> $2
		ORDER BY CASE tier
			WHEN 'Grand' THEN 1
			WHEN 'Silver' THEN 2
			WHEN 'Bronze' THEN 3
			ELSE 4
		END, created_at
	`
	return r.list(ctx, query, competitionID, model.TierNone)
}

func (r *TicketRepositoryImpl) FindRegistrationByIdentifiers(ctx context.Context, competitionID int, ids model.Identifiers) (string, error) {
	return findRegistration(ctx, r.pool, "tickets", competitionID, ids)
}

func (r *TicketRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]*model.IssuedTicket, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]*model.IssuedTicket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
