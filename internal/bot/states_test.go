package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeMenuChoice(t *testing.T) {
	cases := []struct {
		name string
		text string
		want MenuChoice
	}{
		{"plain label", "1. Solicitar Carta de Presentación", ChoiceRequestLetter},
		{"emoji prefixed label", "📝 1. Solicitar Carta de Presentación", ChoiceRequestLetter},
		{"hours", "2. Consultar Horas", ChoiceQueryHours},
		{"companies", "3. Consultar Empresas", ChoiceQueryCompanies},
		{"critical dates", "📅 4. Ver Fechas Críticas", ChoiceCriticalDates},
		{"opportunities", "5. Ver Oportunidades de Prácticas", ChoiceOpportunities},
		{"repeat", "🔄 Realizar otra consulta", ChoiceRepeat},
		{"exit", "🏠 Salir", ChoiceExit},
		{"download", "📄 Descargar carta", ChoiceDownloadLetter},
		{"view letters", "📑 6. Ver mis cartas generadas", ChoiceViewLetters},
		{"substring containment", "quiero 2. Consultar Horas por favor", ChoiceQueryHours},
		{"matching is case sensitive", "2. consultar horas", ChoiceNone},
		{"bare salir without emoji", "Salir", ChoiceNone},
		{"unrelated text", "hola", ChoiceNone},
		{"empty", "", ChoiceNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeMenuChoice(tc.text))
		})
	}
}
