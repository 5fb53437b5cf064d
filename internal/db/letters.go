package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

type LetterRequest struct {
	ID             int64   `db:"id"`
	EstudianteID   int64   `db:"estudiante_id"`
	EmpresaID      int64   `db:"empresa_id"`
	FechaSolicitud string  `db:"fecha_solicitud"`
	RutaPDF        *string `db:"ruta_pdf"`
}

// GeneratedLetter is one entry of a student's letter history: the company
// the letter was addressed to and the rendered file, if any.
type GeneratedLetter struct {
	CompanyName string  `db:"nombre"`
	RutaPDF     *string `db:"ruta_pdf"`
}

type LetterRequestRepository struct {
	db *sqlx.DB
}

func NewLetterRequestRepository(db *sqlx.DB) *LetterRequestRepository {
	return &LetterRequestRepository{
		db: db,
	}
}

func (r *LetterRequestRepository) Create(estudianteID, empresaID int64, fechaSolicitud string, rutaPDF *string) error {
	_, err := r.db.Exec(`
	    INSERT INTO solicitudes_carta
		(estudiante_id, empresa_id, fecha_solicitud, ruta_pdf)
		VALUES ($1, $2, $3, $4)
	`,
		estudianteID,
		empresaID,
		fechaSolicitud,
		rutaPDF,
	)

	if err != nil {
		return fmt.Errorf("LetterRequestRepository.Create: %w", err)
	}

	return nil
}

func (r *LetterRequestRepository) ListByStudent(estudianteID int64) ([]GeneratedLetter, error) {
	var letters []GeneratedLetter

	err := r.db.Select(&letters, `
	    SELECT empresas.nombre, solicitudes_carta.ruta_pdf
		FROM solicitudes_carta
		JOIN empresas ON solicitudes_carta.empresa_id = empresas.id
		WHERE solicitudes_carta.estudiante_id = $1
	`, estudianteID)

	if err != nil {
		return nil, fmt.Errorf("LetterRequestRepository.ListByStudent: %w", err)
	}

	return letters, nil
}

func (r *LetterRequestRepository) ExistsForStudentAndCompany(estudianteID, empresaID int64) (bool, error) {
	var exists bool

	err := r.db.Get(&exists, `
	    SELECT EXISTS (
		    SELECT 1 FROM solicitudes_carta
			WHERE estudiante_id = $1 AND empresa_id = $2
		)
	`, estudianteID, empresaID)

	if err != nil {
		return false, fmt.Errorf("LetterRequestRepository.ExistsForStudentAndCompany: %w", err)
	}

	return exists, nil
}
