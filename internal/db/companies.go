package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/jmoiron/sqlx"
)

type Company struct {
	ID            int64   `db:"id"`
	Nombre        string  `db:"nombre"`
	Direccion     string  `db:"direccion"`
	ContactoEmail *string `db:"contacto_email"`
}

type CompanyRepository struct {
	db *sqlx.DB
}

func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{
		db: db,
	}
}

// IDByName returns nil when no company is registered under the name.
func (r *CompanyRepository) IDByName(nombre string) (*int64, error) {
	var id int64

	err := r.db.Get(&id, `
	    SELECT id FROM empresas
		WHERE nombre = $1
	`, nombre)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("CompanyRepository.IDByName: %w", err)
	}

	return pointer.To(id), nil
}

func (r *CompanyRepository) Create(nombre, direccion string, contactoEmail *string) (int64, error) {
	var id int64

	err := r.db.Get(&id, `
	    INSERT INTO empresas (nombre, direccion, contacto_email)
		VALUES ($1, $2, $3)
		RETURNING id
	`, nombre, direccion, contactoEmail)

	if err != nil {
		return 0, fmt.Errorf("CompanyRepository.Create: %w", err)
	}

	return id, nil
}
