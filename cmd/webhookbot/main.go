package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"

	"github.com/luismendozav/practicas_bot/internal/bot"
	"github.com/luismendozav/practicas_bot/internal/config"
	"github.com/luismendozav/practicas_bot/internal/db"
	"github.com/luismendozav/practicas_bot/internal/letters"
	"github.com/luismendozav/practicas_bot/internal/session"
)

// Webhook variant of the bot: same machine and wiring as cmd/practicasbot,
// but updates arrive over HTTP instead of long polling.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	database, err := db.New(cfg)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer database.Close()

	if err := db.ExecScripts(database.Conn, "db_scripts/init.sql"); err != nil {
		log.Fatalf("Error running SQL scripts: %v", err)
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Error creating telegram bot: %v", err)
	}

	renderer, err := letters.NewGenerator(cfg.LettersDir)
	if err != nil {
		log.Fatalf("Error creating letter generator: %v", err)
	}

	sessions := session.NewStore(session.DefaultTTL)
	stopJanitor := sessions.StartJanitor(5 * time.Minute)
	defer stopJanitor()

	machine := bot.NewMachine(
		sessions,
		db.NewStudentRepository(database.Conn),
		db.NewCompanyRepository(database.Conn),
		db.NewLetterRequestRepository(database.Conn),
		db.NewPracticeRepository(database.Conn),
		db.NewCriticalDateRepository(database.Conn),
		db.NewOpportunityRepository(database.Conn),
		renderer,
	)

	botService := bot.NewService(botAPI, machine)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// The token in the path keeps strangers from posting fake updates.
	r.Post("/webhook/"+cfg.BotToken, func(w http.ResponseWriter, req *http.Request) {
		var update tgbotapi.Update
		if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
			log.Printf("webhook: cannot decode update: %v", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		botService.HandleUpdate(update)
		w.Write([]byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Bot is running!"))
	})

	log.Printf("Webhook server listening on %s", cfg.WebhookAddr)

	if err := http.ListenAndServe(cfg.WebhookAddr, r); err != nil {
		log.Fatalf("Webhook server stopped: %v", err)
	}
}
