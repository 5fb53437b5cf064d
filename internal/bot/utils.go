package bot

import (
	"fmt"
	"time"

	"github.com/luismendozav/practicas_bot/internal/db"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "Sin fecha"
	}

	return t.Format(dateLayout)
}

func FormatCriticalDate(fecha db.CriticalDate) string {
	descripcion := fecha.Descripcion
	if descripcion == "" {
		descripcion = "Sin descripción"
	}

	return fmt.Sprintf("📅 %s - %s", descripcion, formatDate(fecha.Fecha))
}

func FormatOpportunity(oportunidad db.Opportunity) string {
	return fmt.Sprintf("💼 Empresa ID: %d\n📝 Descripción: %s\n📅 Fecha: %s a %s",
		oportunidad.EmpresaID,
		oportunidad.Descripcion,
		formatDate(oportunidad.FechaInicio),
		formatDate(oportunidad.FechaFin),
	)
}
