package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/synergysphere/synergy/internal/domain"
)

const inviteColumns = "id, email, role, invited_by, project_id, status, expires_at, created_at"

type InviteRepo struct {
	pool *pgxpool.Pool
}

func NewInviteRepo(pool *pgxpool.Pool) *InviteRepo {
	return &InviteRepo{pool: pool}
}

func (r *InviteRepo) Create(ctx context.Context, inv *domain.TeamInvitation) error {
	query := `
		INSERT INTO team_invitations (id, email, role, invited_by, project_id, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		inv.ID, inv.Email, inv.Role, inv.InvitedBy, inv.ProjectID,
		inv.Status, inv.ExpiresAt, inv.CreatedAt,
	)
	return err
}

func (r *InviteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamInvitation, error) {
	query := "SELECT " + inviteColumns + " FROM team_invitations WHERE id = $1"

	var inv domain.TeamInvitation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.ProjectID,
		&inv.Status, &inv.ExpiresAt, &inv.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &inv, err
}

func (r *InviteRepo) ListPending(ctx context.Context) ([]domain.TeamInvitation, error) {
	query := "SELECT " + inviteColumns + ` FROM team_invitations WHERE status = 'pending' ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []domain.TeamInvitation
	for rows.Next() {
		var inv domain.TeamInvitation
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.ProjectID,
			&inv.Status, &inv.ExpiresAt, &inv.CreatedAt); err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

func (r *InviteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE team_invitations SET status = $1 WHERE id = $2`, status, id)
	return err
}

func (r *InviteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM team_invitations WHERE id = $1`, id)
	return err
}
