package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func oneTime(keyboard tgbotapi.ReplyKeyboardMarkup) tgbotapi.ReplyKeyboardMarkup {
	keyboard.OneTimeKeyboard = true
	return keyboard
}

func MainMenu() tgbotapi.ReplyKeyboardMarkup {
	return oneTime(tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("1. Solicitar Carta de Presentación"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("2. Consultar Horas"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("3. Consultar Empresas"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("4. Ver Fechas Críticas"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("5. Ver Oportunidades de Prácticas"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("6. Ver mis cartas generadas"),
		),
	))
}

// FallbackMenu is shown after an unrecognized selection; the original bot
// used emoji-prefixed labels only here.
func FallbackMenu() tgbotapi.ReplyKeyboardMarkup {
	return oneTime(tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📝 1. Solicitar Carta de Presentación"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📊 2. Consultar Horas"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🏢 3. Consultar Empresas"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📅 4. Ver Fechas Críticas"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("💼 5. Ver Oportunidades de Prácticas"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📑 6. Ver mis cartas generadas"),
		),
	))
}

// FinalMenu offers the download action only when a letter has been
// rendered in this session.
func FinalMenu(hasLetter bool) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton

	if hasLetter {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📄 Descargar carta"),
		))
	}

	rows = append(rows, tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton("🔄 Realizar otra consulta"),
	))
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton("🏠 Salir"),
	))

	return oneTime(tgbotapi.NewReplyKeyboard(rows...))
}
