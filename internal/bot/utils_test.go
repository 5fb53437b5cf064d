package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/luismendozav/practicas_bot/internal/db"
)

func TestFormatCriticalDate(t *testing.T) {
	fecha := db.CriticalDate{
		Descripcion: "Entrega de informe final",
		Fecha:       time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "📅 Entrega de informe final - 2025-03-15", FormatCriticalDate(fecha))
}

func TestFormatCriticalDateMissingPieces(t *testing.T) {
	assert.Equal(t, "📅 Sin descripción - Sin fecha", FormatCriticalDate(db.CriticalDate{}))
}

func TestFormatOpportunity(t *testing.T) {
	oportunidad := db.Opportunity{
		EmpresaID:   7,
		Descripcion: "Practicante de sistemas",
		FechaInicio: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	want := "💼 Empresa ID: 7\n📝 Descripción: Practicante de sistemas\n📅 Fecha: 2025-04-01 a 2025-07-01"
	assert.Equal(t, want, FormatOpportunity(oportunidad))
}
