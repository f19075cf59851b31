package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/synergysphere/synergy/internal/domain"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, m *domain.TeamMessage) error {
	query := `
		INSERT INTO team_messages (id, project_id, sender_id, content, message_type, reply_to, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.ProjectID, m.SenderID, m.Content, m.MessageType, m.ReplyTo, m.CreatedAt,
	)
	return err
}

func (r *MessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamMessage, error) {
	query := `
		SELECT m.id, m.project_id, m.sender_id, m.content, m.message_type, m.reply_to, m.created_at, p.full_name
		FROM team_messages m
		JOIN profiles p ON m.sender_id = p.id
		WHERE m.id = $1`

	var m domain.TeamMessage
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.ProjectID, &m.SenderID, &m.Content, &m.MessageType, &m.ReplyTo, &m.CreatedAt, &m.SenderName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &m, err
}

func (r *MessageRepo) List(ctx context.Context, projectID *uuid.UUID) ([]domain.TeamMessage, error) {
	query := `
		SELECT m.id, m.project_id, m.sender_id, m.content, m.message_type, m.reply_to, m.created_at, p.full_name
		FROM team_messages m
		JOIN profiles p ON m.sender_id = p.id`

	var args []any
	if projectID != nil {
		query += " WHERE m.project_id = $1"
		args = append(args, *projectID)
	}
	query += " ORDER BY m.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.TeamMessage
	for rows.Next() {
		var m domain.TeamMessage
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.SenderID, &m.Content, &m.MessageType,
			&m.ReplyTo, &m.CreatedAt, &m.SenderName); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
