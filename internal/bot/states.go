package bot

import "strings"

// MenuChoice is a decoded top-menu selection. Raw text is decoded exactly
// once, at the transport boundary, and the machine switches on the result.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceRequestLetter
	ChoiceQueryHours
	ChoiceQueryCompanies
	ChoiceCriticalDates
	ChoiceOpportunities
	ChoiceRepeat
	ChoiceExit
	ChoiceDownloadLetter
	ChoiceViewLetters
)

// menuMatchers preserves the legacy matching behavior: case-sensitive
// substring containment, first match wins, in this exact order.
var menuMatchers = []struct {
	needle string
	choice MenuChoice
}{
	{"1. Solicitar Carta de Presentación", ChoiceRequestLetter},
	{"2. Consultar Horas", ChoiceQueryHours},
	{"3. Consultar Empresas", ChoiceQueryCompanies},
	{"4. Ver Fechas Críticas", ChoiceCriticalDates},
	{"5. Ver Oportunidades de Prácticas", ChoiceOpportunities},
	{"🔄 Realizar otra consulta", ChoiceRepeat},
	{"🏠 Salir", ChoiceExit},
	{"📄 Descargar carta", ChoiceDownloadLetter},
	{"6. Ver mis cartas generadas", ChoiceViewLetters},
}

func DecodeMenuChoice(text string) MenuChoice {
	for _, m := range menuMatchers {
		if strings.Contains(text, m.needle) {
			return m.choice
		}
	}

	return ChoiceNone
}
