package postgres

import (
	"database/sql"

	"toolrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ToolRepository
	repository.RentRepository
	repository.ClientRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		ToolRepository:   NewToolRepository(db),
		RentRepository:   NewRentRepository(db),
		ClientRepository: NewClientRepository(db),
	}
}
