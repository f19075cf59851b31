package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/synergysphere/synergy/internal/repository"
)

// NewStore wires the Postgres-backed repositories into a store bundle.
func NewStore(pool *pgxpool.Pool) *repository.Store {
	return &repository.Store{
		Profiles: NewProfileRepo(pool),
		Projects: NewProjectRepo(pool),
		Tasks:    NewTaskRepo(pool),
		Messages: NewMessageRepo(pool),
		Invites:  NewInviteRepo(pool),
		Activity: NewActivityRepo(pool),
	}
}
