package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/repository"
)

const projectColumns = "id, title, description, status, priority, manager_id, team_members, progress, start_date, due_date, created_at, updated_at"

type ProjectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepo(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (id, title, description, status, priority, manager_id, team_members, progress, start_date, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Status, p.Priority, p.ManagerID,
		p.TeamMembers, p.Progress, p.StartDate, p.DueDate, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := "SELECT " + projectColumns + " FROM projects WHERE id = $1"

	var p domain.Project
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Status, &p.Priority, &p.ManagerID,
		&p.TeamMembers, &p.Progress, &p.StartDate, &p.DueDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

func (r *ProjectRepo) List(ctx context.Context, f repository.ProjectFilter) ([]domain.Project, error) {
	var (
		conds []string
		args  []any
	)

	if !f.ManagerView {
		args = append(args, f.ViewerID)
		conds = append(conds, fmt.Sprintf("team_members @> ARRAY[$%d]::uuid[]", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	query := "SELECT " + projectColumns + " FROM projects"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.Priority, &p.ManagerID,
			&p.TeamMembers, &p.Progress, &p.StartDate, &p.DueDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, status = $3, priority = $4, team_members = $5, progress = $6, start_date = $7, due_date = $8, updated_at = $9
		WHERE id = $10`

	_, err := r.pool.Exec(ctx, query,
		p.Title, p.Description, p.Status, p.Priority, p.TeamMembers,
		p.Progress, p.StartDate, p.DueDate, p.UpdatedAt, p.ID,
	)
	return err
}

func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}
