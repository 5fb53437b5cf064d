package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Service binds the conversation machine to the Telegram API: it turns
// updates into machine events and delivers the resulting replies.
type Service struct {
	botAPI  *tgbotapi.BotAPI
	machine *Machine
}

func NewService(botAPI *tgbotapi.BotAPI, machine *Machine) *Service {
	return &Service{
		botAPI:  botAPI,
		machine: machine,
	}
}

// Run consumes updates over long polling until the update channel closes.
func (s *Service) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := s.botAPI.GetUpdatesChan(u)

	for update := range updates {
		s.HandleUpdate(update)
	}
}

// HandleUpdate processes a single update; the webhook binary calls this
// directly.
func (s *Service) HandleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		if _, err := s.botAPI.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
			log.Printf("failed to answer callback query: %v", err)
		}

		if update.CallbackQuery.Message == nil {
			return
		}

		chatID := update.CallbackQuery.Message.Chat.ID
		s.deliver(chatID, s.machine.HandleCallback(chatID, update.CallbackQuery.Data))
		return
	}

	if update.Message == nil || update.Message.Text == "" {
		return
	}

	chatID := update.Message.Chat.ID
	s.deliver(chatID, s.machine.HandleText(chatID, update.Message.Text))
}

func (s *Service) deliver(chatID int64, replies []Reply) {
	for _, reply := range replies {
		if reply.DocumentPath != "" {
			doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(reply.DocumentPath))
			doc.Caption = reply.Caption
			if _, err := s.botAPI.Send(doc); err != nil {
				log.Printf("failed to send document %s: %v", reply.DocumentPath, err)
			}
			continue
		}

		msg := tgbotapi.NewMessage(chatID, reply.Text)
		switch {
		case reply.Keyboard != nil:
			msg.ReplyMarkup = *reply.Keyboard
		case reply.Inline != nil:
			msg.ReplyMarkup = *reply.Inline
		case reply.RemoveKeyboard:
			msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		}

		if _, err := s.botAPI.Send(msg); err != nil {
			log.Printf("failed to send message to %d: %v", chatID, err)
		}
	}
}
