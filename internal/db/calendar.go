package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type CriticalDate struct {
	Descripcion string    `db:"descripcion"`
	Fecha       time.Time `db:"fecha"`
}

type CriticalDateRepository struct {
	db *sqlx.DB
}

func NewCriticalDateRepository(db *sqlx.DB) *CriticalDateRepository {
	return &CriticalDateRepository{
		db: db,
	}
}

func (r *CriticalDateRepository) ListPending() ([]CriticalDate, error) {
	var fechas []CriticalDate

	err := r.db.Select(&fechas, `
	    SELECT descripcion, fecha FROM fechas_criticas
		WHERE estado = 'pendiente'
	`)

	if err != nil {
		return nil, fmt.Errorf("CriticalDateRepository.ListPending: %w", err)
	}

	return fechas, nil
}
