package bot

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlekSi/pointer"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/luismendozav/practicas_bot/internal/db"
	"github.com/luismendozav/practicas_bot/internal/letters"
	"github.com/luismendozav/practicas_bot/internal/session"
)

// RequestDate is the request date recorded for every letter request. The
// system has always written this literal instead of the current date.
const RequestDate = "2025-01-02"

const downloadCallbackPrefix = "descargar_carta|"

// Reply is one outbound message, transport-agnostic enough to assert on in
// tests but carrying the telegram markup the delivery layer needs.
type Reply struct {
	Text           string
	Keyboard       *tgbotapi.ReplyKeyboardMarkup
	Inline         *tgbotapi.InlineKeyboardMarkup
	RemoveKeyboard bool
	DocumentPath   string
	Caption        string
}

type StudentDirectory interface {
	IDByCode(codigo string) (*int64, error)
}

type CompanyDirectory interface {
	IDByName(nombre string) (*int64, error)
}

type LetterBook interface {
	Create(estudianteID, empresaID int64, fechaSolicitud string, rutaPDF *string) error
	ListByStudent(estudianteID int64) ([]db.GeneratedLetter, error)
	ExistsForStudentAndCompany(estudianteID, empresaID int64) (bool, error)
}

type PracticeLog interface {
	SumHoursByCode(codigo string) (int, error)
	CompaniesByCode(codigo string) ([]string, error)
}

type CriticalDates interface {
	ListPending() ([]db.CriticalDate, error)
}

type Opportunities interface {
	ListActive() ([]db.Opportunity, error)
}

type Renderer interface {
	Render(student letters.StudentData, company letters.CompanyData) (string, error)
}

// Machine drives one turn of the conversation: it consumes an inbound
// event plus the chat's session and emits the outbound replies.
type Machine struct {
	sessions      *session.Store
	students      StudentDirectory
	companies     CompanyDirectory
	letterBook    LetterBook
	practices     PracticeLog
	criticalDates CriticalDates
	opportunities Opportunities
	renderer      Renderer
}

func NewMachine(
	sessions *session.Store,
	students StudentDirectory,
	companies CompanyDirectory,
	letterBook LetterBook,
	practices PracticeLog,
	criticalDates CriticalDates,
	opportunities Opportunities,
	renderer Renderer,
) *Machine {
	return &Machine{
		sessions:      sessions,
		students:      students,
		companies:     companies,
		letterBook:    letterBook,
		practices:     practices,
		criticalDates: criticalDates,
		opportunities: opportunities,
		renderer:      renderer,
	}
}

func text(s string) Reply {
	return Reply{Text: s}
}

func textNoKeyboard(s string) Reply {
	return Reply{Text: s, RemoveKeyboard: true}
}

func (m *Machine) HandleText(chatID int64, msgText string) []Reply {
	sess := m.sessions.GetOrCreate(chatID)

	switch msgText {
	case "/start":
		sess.Reset()
		sess.Step = session.StepMenu
		return m.startMenu()
	case "/cancel":
		m.sessions.Delete(chatID)
		return []Reply{textNoKeyboard("Operación cancelada. Usa /start para comenzar de nuevo.")}
	}

	switch sess.Step {
	case session.StepMenu:
		return m.handleMenu(chatID, sess, msgText)
	case session.StepName:
		return m.handleName(sess, msgText)
	case session.StepCode:
		return m.handleCode(chatID, sess, msgText)
	case session.StepDNI:
		return m.handleDNI(sess, msgText)
	case session.StepCompany:
		return m.handleCompany(sess, msgText)
	case session.StepCompanyRUC:
		return m.handleCompanyRUC(sess, msgText)
	case session.StepAddress:
		return m.handleAddress(chatID, sess, msgText)
	default:
		log.Printf("Unknown step %q for chatID %d", sess.Step, chatID)
		sess.Step = session.StepMenu
		return m.startMenu()
	}
}

// HandleCallback processes an inline-button click. The only callback in
// use carries the path of a rendered letter to deliver.
func (m *Machine) HandleCallback(chatID int64, data string) []Reply {
	sess := m.sessions.GetOrCreate(chatID)

	if !strings.HasPrefix(data, downloadCallbackPrefix) {
		return nil
	}

	rutaPDF := strings.TrimPrefix(data, downloadCallbackPrefix)

	var replies []Reply
	if rutaPDF != "" && fileExists(rutaPDF) {
		replies = append(replies, Reply{
			DocumentPath: rutaPDF,
			Caption:      "📄 Aquí tienes tu carta de presentación.",
		})
	} else {
		replies = append(replies, text("❌ No se encontró el archivo PDF para esta carta."))
	}

	return append(replies, m.finalMenu(sess)...)
}

func (m *Machine) startMenu() []Reply {
	keyboard := MainMenu()
	return []Reply{{
		Text:     "¡Hola! Soy el chatbot de Prácticas Pre Profesionales.\n¿Qué deseas hacer?",
		Keyboard: &keyboard,
	}}
}

func (m *Machine) finalMenu(sess *session.Session) []Reply {
	sess.Step = session.StepMenu
	keyboard := FinalMenu(sess.RutaPDF != "")
	return []Reply{{
		Text:     "¿Deseas realizar otra acción?",
		Keyboard: &keyboard,
	}}
}

// end terminates the conversation outright: the session is discarded and
// the next inbound event starts from a fresh menu.
func (m *Machine) end(chatID int64, replies ...Reply) []Reply {
	m.sessions.Delete(chatID)
	return replies
}

func (m *Machine) handleMenu(chatID int64, sess *session.Session, msgText string) []Reply {
	switch DecodeMenuChoice(msgText) {
	case ChoiceRequestLetter:
		sess.Reset()
		sess.Flow = session.FlowLetterRequest
		sess.Step = session.StepName
		return []Reply{textNoKeyboard(
			"Perfecto, vamos a solicitar tu carta de presentación.\n" +
				"Primero, ingresa tu nombre completo:",
		)}

	case ChoiceQueryHours:
		sess.Reset()
		sess.Flow = session.FlowHoursQuery
		sess.Step = session.StepCode
		return []Reply{textNoKeyboard("Para consultar tus horas, ingresa tu código de estudiante:")}

	case ChoiceQueryCompanies:
		sess.Reset()
		sess.Flow = session.FlowCompanyQuery
		sess.Step = session.StepCode
		return []Reply{textNoKeyboard("Para consultar tus empresas, ingresa tu código de estudiante:")}

	case ChoiceCriticalDates:
		return m.showCriticalDates(chatID, sess)

	case ChoiceOpportunities:
		return m.showOpportunities(chatID, sess)

	case ChoiceRepeat:
		sess.Step = session.StepMenu
		return m.startMenu()

	case ChoiceExit:
		return m.end(chatID, textNoKeyboard("¡Hasta luego! Usa /start cuando quieras volver a usar el bot."))

	case ChoiceDownloadLetter:
		var replies []Reply
		if sess.RutaPDF != "" && fileExists(sess.RutaPDF) {
			replies = append(replies, Reply{
				DocumentPath: sess.RutaPDF,
				Caption:      "📄 Aquí tienes tu carta de presentación.",
			})
		} else {
			replies = append(replies, text("❌ No se encontró la carta para descargar. Por favor, genera una nueva."))
		}
		return append(replies, m.finalMenu(sess)...)

	case ChoiceViewLetters:
		sess.Reset()
		sess.Flow = session.FlowViewLetters
		sess.Step = session.StepCode
		return []Reply{textNoKeyboard("Para ver tus cartas generadas, ingresa tu código de estudiante:")}

	default:
		keyboard := FallbackMenu()
		return []Reply{{
			Text:     "Por favor, selecciona una opción válida del menú.",
			Keyboard: &keyboard,
		}}
	}
}

func (m *Machine) handleName(sess *session.Session, msgText string) []Reply {
	sess.Nombre = msgText
	sess.Step = session.StepCode
	return []Reply{text("Ahora ingresa tu código de estudiante:")}
}

func (m *Machine) handleCode(chatID int64, sess *session.Session, msgText string) []Reply {
	estudianteID, err := m.students.IDByCode(msgText)
	if err != nil {
		log.Printf("handleCode: cannot resolve student %q: %v", msgText, err)
		return []Reply{text("❌ Error al consultar la base de datos. Por favor, intenta nuevamente:")}
	}

	if estudianteID == nil {
		return []Reply{text("❌ Código de estudiante no encontrado. Por favor, verifica e ingresa nuevamente:")}
	}

	sess.Codigo = msgText
	sess.EstudianteID = *estudianteID

	switch sess.Flow {
	case session.FlowViewLetters:
		return m.showGeneratedLetters(sess)

	case session.FlowLetterRequest:
		sess.Step = session.StepDNI
		return []Reply{
			text(fmt.Sprintf("✅ Código de estudiante %s encontrado.", msgText)),
			text("Ahora ingresa tu DNI:"),
		}

	case session.FlowHoursQuery:
		return m.reportHours(chatID, sess)

	case session.FlowCompanyQuery:
		return m.reportCompanies(chatID, sess)

	default:
		// A code arrived without any flow selected; the conversation
		// ends without returning to the menu, as it always has.
		return m.end(chatID, text("Opción no válida."))
	}
}

func (m *Machine) showGeneratedLetters(sess *session.Session) []Reply {
	cartas, err := m.letterBook.ListByStudent(sess.EstudianteID)
	if err != nil {
		log.Printf("showGeneratedLetters: %v", err)
		return []Reply{text("❌ Error al consultar la base de datos. Por favor, intenta nuevamente:")}
	}

	var replies []Reply

	if len(cartas) == 0 {
		replies = append(replies, text("No tienes cartas generadas."))
		return append(replies, m.finalMenu(sess)...)
	}

	mensaje := "Tus cartas generadas:\n"
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, carta := range cartas {
		rutaPDF := pointer.GetString(carta.RutaPDF)
		if rutaPDF != "" {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(carta.CompanyName, downloadCallbackPrefix+rutaPDF),
			))
		} else {
			mensaje += fmt.Sprintf("• %s: Sin PDF\n", carta.CompanyName)
		}
	}

	if len(rows) > 0 {
		inline := tgbotapi.NewInlineKeyboardMarkup(rows...)
		replies = append(replies, Reply{
			Text:   mensaje + "Selecciona una empresa para descargar la carta:",
			Inline: &inline,
		})
	} else {
		replies = append(replies, text(mensaje))
	}

	return append(replies, m.finalMenu(sess)...)
}

func (m *Machine) reportHours(chatID int64, sess *session.Session) []Reply {
	horas, err := m.practices.SumHoursByCode(sess.Codigo)
	if err != nil {
		log.Printf("reportHours: %v", err)
		return m.end(chatID, text("❌ Error al consultar las horas. Por favor, intenta nuevamente."))
	}

	replies := []Reply{text(fmt.Sprintf("📊 Has acumulado %d horas de prácticas.", horas))}
	return append(replies, m.finalMenu(sess)...)
}

func (m *Machine) reportCompanies(chatID int64, sess *session.Session) []Reply {
	empresas, err := m.practices.CompaniesByCode(sess.Codigo)
	if err != nil {
		log.Printf("reportCompanies: %v", err)
		return m.end(chatID, text("❌ Error al consultar las empresas. Por favor, intenta nuevamente."))
	}

	var replies []Reply
	if len(empresas) > 0 {
		lineas := make([]string, 0, len(empresas))
		for _, empresa := range empresas {
			lineas = append(lineas, "• "+empresa)
		}
		replies = append(replies, text("🏢 Has realizado prácticas en las siguientes empresas:\n"+strings.Join(lineas, "\n")))
	} else {
		replies = append(replies, text("📝 No tienes empresas registradas."))
	}

	return append(replies, m.finalMenu(sess)...)
}

func (m *Machine) handleDNI(sess *session.Session, msgText string) []Reply {
	sess.DNI = msgText
	sess.Step = session.StepCompany
	return []Reply{text("Ingresa la razón social de la empresa donde solicitarás la carta:")}
}

func (m *Machine) handleCompany(sess *session.Session, msgText string) []Reply {
	sess.Empresa = msgText
	sess.Step = session.StepCompanyRUC
	return []Reply{text("Ingresa el RUC de la empresa:")}
}

func (m *Machine) handleCompanyRUC(sess *session.Session, msgText string) []Reply {
	sess.RUC = msgText
	sess.Step = session.StepAddress
	return []Reply{text("Ingresa la dirección de la empresa:")}
}

// handleAddress captures the last field and finalizes the request: resolve
// the company, persist the request, render the letter, persist again with
// the file path.
func (m *Machine) handleAddress(chatID int64, sess *session.Session, msgText string) []Reply {
	sess.Direccion = msgText

	empresaID, err := m.companies.IDByName(sess.Empresa)
	if err != nil {
		log.Printf("handleAddress: cannot resolve company %q: %v", sess.Empresa, err)
		return m.end(chatID, text("❌ Error al generar la carta. Por favor, intenta nuevamente."))
	}

	if empresaID == nil {
		// Back to the company prompt; RUC and address collected so far
		// stay in the session and are reused on the next attempt.
		sess.Step = session.StepCompany
		return []Reply{text("❌ Empresa no encontrada. Por favor, verifica el nombre de la empresa.")}
	}

	// The duplicate check is informational only: resubmitting for the
	// same company creates a new request. Whether it should block instead
	// is an open product decision.
	if exists, err := m.letterBook.ExistsForStudentAndCompany(sess.EstudianteID, *empresaID); err == nil && exists {
		log.Printf("letter request already exists for student %d and company %d", sess.EstudianteID, *empresaID)
	}

	if err := m.letterBook.Create(sess.EstudianteID, *empresaID, RequestDate, nil); err != nil {
		log.Printf("handleAddress: cannot register request: %v", err)
		return m.end(chatID, text("❌ Error al registrar la solicitud. Por favor, intenta nuevamente."))
	}

	rutaPDF, err := m.renderer.Render(
		letters.StudentData{
			Nombre: sess.Nombre,
			Codigo: sess.Codigo,
			DNI:    sess.DNI,
		},
		letters.CompanyData{
			Nombre:    sess.Empresa,
			RUC:       sess.RUC,
			Direccion: sess.Direccion,
		},
	)
	if err != nil {
		log.Printf("handleAddress: cannot render letter: %v", err)
		return m.end(chatID, text("❌ Error al generar la carta. Por favor, intenta nuevamente."))
	}

	if err := m.letterBook.Create(sess.EstudianteID, *empresaID, RequestDate, pointer.To(rutaPDF)); err != nil {
		log.Printf("handleAddress: cannot attach letter to request: %v", err)
		return m.end(chatID, text("❌ Error al generar la carta. Por favor, intenta nuevamente."))
	}

	sess.RutaPDF = rutaPDF

	replies := []Reply{text(
		"✅ ¡Tu carta de presentación ha sido generada con éxito!\n" +
			"Recibirás una notificación cuando esté lista.",
	)}
	return append(replies, m.finalMenu(sess)...)
}

func (m *Machine) showCriticalDates(chatID int64, sess *session.Session) []Reply {
	fechas, err := m.criticalDates.ListPending()
	if err != nil {
		log.Printf("showCriticalDates: %v", err)
		return m.end(chatID, text("❌ Error al consultar las fechas críticas."))
	}

	var replies []Reply
	if len(fechas) > 0 {
		lineas := make([]string, 0, len(fechas))
		for _, fecha := range fechas {
			lineas = append(lineas, FormatCriticalDate(fecha))
		}
		replies = append(replies, text("📋 Fechas críticas pendientes:\n"+strings.Join(lineas, "\n")))
	} else {
		replies = append(replies, text("✅ No hay fechas críticas pendientes."))
	}

	return append(replies, m.finalMenu(sess)...)
}

func (m *Machine) showOpportunities(chatID int64, sess *session.Session) []Reply {
	oportunidades, err := m.opportunities.ListActive()
	if err != nil {
		log.Printf("showOpportunities: %v", err)
		return m.end(chatID, text("❌ Error al consultar las oportunidades."))
	}

	var replies []Reply
	if len(oportunidades) > 0 {
		// One message per opportunity, as the bot has always sent them.
		for _, oportunidad := range oportunidades {
			replies = append(replies, text(FormatOpportunity(oportunidad)))
		}
	} else {
		replies = append(replies, text("📝 No hay oportunidades de prácticas activas."))
	}

	return append(replies, m.finalMenu(sess)...)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
