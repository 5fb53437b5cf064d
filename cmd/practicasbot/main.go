package main

import (
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"

	"github.com/luismendozav/practicas_bot/internal/bot"
	"github.com/luismendozav/practicas_bot/internal/config"
	"github.com/luismendozav/practicas_bot/internal/db"
	"github.com/luismendozav/practicas_bot/internal/letters"
	"github.com/luismendozav/practicas_bot/internal/session"
)

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

	log.Printf("Bot started as @%s", botAPI.Self.UserName)

	botService.Run()
}
