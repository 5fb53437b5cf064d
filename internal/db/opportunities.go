package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Opportunity struct {
	EmpresaID   int64     `db:"empresa_id"`
	Descripcion string    `db:"descripcion"`
	FechaInicio time.Time `db:"fecha_inicio"`
	FechaFin    time.Time `db:"fecha_fin"`
}

type OpportunityRepository struct {
	db *sqlx.DB
}

func NewOpportunityRepository(db *sqlx.DB) *OpportunityRepository {
	return &OpportunityRepository{
		db: db,
	}
}

func (r *OpportunityRepository) ListActive() ([]Opportunity, error) {
	var oportunidades []Opportunity

	err := r.db.Select(&oportunidades, `
	    SELECT empresa_id, descripcion, fecha_inicio, fecha_fin
		FROM oportunidades_practicas
		WHERE estado = 'activo'
	`)

	if err != nil {
		return nil, fmt.Errorf("OpportunityRepository.ListActive: %w", err)
	}

	return oportunidades, nil
}
