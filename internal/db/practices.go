package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

type PracticeRepository struct {
	db *sqlx.DB
}

func NewPracticeRepository(db *sqlx.DB) *PracticeRepository {
	return &PracticeRepository{
		db: db,
	}
}

// SumHoursByCode returns 0 for a student with no recorded practice hours.
func (r *PracticeRepository) SumHoursByCode(codigo string) (int, error) {
	var horas int

	err := r.db.Get(&horas, `
	    SELECT COALESCE(SUM(practicas.horas), 0)
		FROM practicas
		JOIN estudiantes_empresas ON practicas.estudiante_empresa_id = estudiantes_empresas.id
		JOIN estudiantes ON estudiantes.id = estudiantes_empresas.estudiante_id
		WHERE estudiantes.codigo = $1
	`, codigo)

	if err != nil {
		return 0, fmt.Errorf("PracticeRepository.SumHoursByCode: %w", err)
	}

	return horas, nil
}

func (r *PracticeRepository) CompaniesByCode(codigo string) ([]string, error) {
	var empresas []string

	err := r.db.Select(&empresas, `
	    SELECT empresas.nombre
		FROM empresas
		JOIN estudiantes_empresas ON empresas.id = estudiantes_empresas.empresa_id
		JOIN estudiantes ON estudiantes.id = estudiantes_empresas.estudiante_id
		WHERE estudiantes.codigo = $1
	`, codigo)

	if err != nil {
		return nil, fmt.Errorf("PracticeRepository.CompaniesByCode: %w", err)
	}

	return empresas, nil
}
