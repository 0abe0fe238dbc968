package repository

import (
	"context"
	"fmt"

	"lucky-draw-backend/internal/model"
	apperrors "lucky-draw-backend/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivationRepository interface {
	Create(ctx context.Context, activation *model.Activation) (*model.Activation, error)
	ListByCompetition(ctx context.Context, competitionID int) ([]*model.Activation, error)
	FindRegistrationByIdentifiers(ctx context.Context, competitionID int, ids model.Identifiers) (string, error)
}

type ActivationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewActivationRepository(pool *pgxpool.Pool) ActivationRepository {
	return &ActivationRepositoryImpl{
		pool: pool,
	}
}

const activationColumns = `
	id, ticket_id, competition_id, name,
	COALESCE(phone, ''), COALESCE(email, ''), COALESCE(handle, ''),
	COALESCE(country_code, ''), numbers,
	COALESCE(ticket_image, ''), COALESCE(proof_image, ''), created_at`

func scanActivation(row rowScanner) (*model.Activation, error) {
	var a model.Activation
	err := row.Scan(
		&a.ID,
		&a.TicketID,
		&a.CompetitionID,
		&a.Name,
		&a.Phone,
		&a.Email,
		&a.Handle,
		&a.CountryCode,
		&a.Numbers,
		&a.TicketImage,
		&a.ProofImage,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

var activationConstraintErrors = map[string]error{
	"uniq_activations_phone":  apperrors.NewDuplicateRegistrantError(model.FieldPhone),
	"uniq_activations_email":  apperrors.NewDuplicateRegistrantError(model.FieldEmail),
	"uniq_activations_handle": apperrors.NewDuplicateRegistrantError(model.FieldHandle),
}

func (r *ActivationRepositoryImpl) Create(ctx context.Context, activation *model.Activation) (*model.Activation, error) {
	query := `
		INSERT INTO activations (
			ticket_id, competition_id, name, phone, email, handle,
			country_code, numbers, ticket_image, proof_image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + activationColumns

	created, err := scanActivation(r.pool.QueryRow(ctx, query,
		activation.TicketID, activation.CompetitionID, activation.Name,
		nullIfEmpty(activation.Phone), nullIfEmpty(activation.Email), nullIfEmpty(activation.Handle),
		nullIfEmpty(activation.CountryCode), activation.Numbers,
		nullIfEmpty(activation.TicketImage), nullIfEmpty(activation.ProofImage),
	))
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if mapped, known := activationConstraintErrors[constraint]; known {
				return nil, mapped
			}
		}
		return nil, fmt.Errorf("failed to create activation: %w", err)
	}
	return created, nil
}

func (r *ActivationRepositoryImpl) ListByCompetition(ctx context.Context, competitionID int) ([]*model.Activation, error) {
	query := `SELECT ` + activationColumns + ` FROM activations WHERE competition_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list activations: %w", err)
	}
	defer rows.Close()

	activations := make([]*model.Activation, 0)
	for rows.Next() {
		activation, err := scanActivation(rows)
		if err != nil {
			return nil, err
		}
		activations = append(activations, activation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activations, nil
}

func (r *ActivationRepositoryImpl) FindRegistrationByIdentifiers(ctx context.Context, competitionID int, ids model.Identifiers) (string, error) {
	return findRegistration(ctx, r.pool, "activations", competitionID, ids)
}
