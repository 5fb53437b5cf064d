package session

// Step is the current node of the conversation graph.
type Step string

const (
	StepMenu       Step = "menu"
	StepName       Step = "name"
	StepCode       Step = "code"
	StepDNI        Step = "dni"
	StepCompany    Step = "company"
	StepCompanyRUC Step = "company_ruc"
	StepAddress    Step = "address"
)

// Flow tags which top-level option opened the current sub-flow, so the code
// step knows what to do with a validated student code.
type Flow string

const (
	FlowNone          Flow = ""
	FlowLetterRequest Flow = "letter_request"
	FlowHoursQuery    Flow = "hours_query"
	FlowCompanyQuery  Flow = "company_query"
	FlowViewLetters   Flow = "view_letters"
)

type Session struct {
	Step Step
	Flow Flow

	Nombre       string
	Codigo       string
	EstudianteID int64 // set only after the code was validated against the database
	DNI          string
	Empresa      string
	RUC          string
	Direccion    string
	RutaPDF      string // set only after a letter was rendered
}

// Reset bulk-clears collected fields and the flow tag. It does not touch
// Step; the caller decides where the conversation goes next.
func (s *Session) Reset() {
	s.Flow = FlowNone
	s.Nombre = ""
	s.Codigo = ""
	s.EstudianteID = 0
	s.DNI = ""
	s.Empresa = ""
	s.RUC = ""
	s.Direccion = ""
	s.RutaPDF = ""
}
