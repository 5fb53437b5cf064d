package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/jmoiron/sqlx"
)

type Student struct {
	ID     int64  `db:"id"`
	Codigo string `db:"codigo"`
	DNI    string `db:"dni"`
	Nombre string `db:"nombre"`
}

type StudentRepository struct {
	db *sqlx.DB
}

func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// IDByCode returns nil when no student carries the code.
func (r *StudentRepository) IDByCode(codigo string) (*int64, error) {
	var id int64

	err := r.db.Get(&id, `
	    SELECT id FROM estudiantes
		WHERE codigo = $1
	`, codigo)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("StudentRepository.IDByCode: %w", err)
	}

	return pointer.To(id), nil
}

func (r *StudentRepository) GetByCode(codigo string) (*Student, error) {
	var student Student

	err := r.db.Get(&student, `
	    SELECT id, codigo, dni, nombre FROM estudiantes
		WHERE codigo = $1
	`, codigo)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("StudentRepository.GetByCode: %w", err)
	}

	return &student, nil
}
