package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pathakanu/medReminder/internal/config"
	"github.com/pathakanu/medReminder/internal/database"
	"github.com/pathakanu/medReminder/internal/medinfo"
	"github.com/pathakanu/medReminder/internal/notify"
	myopenai "github.com/pathakanu/medReminder/internal/openai"
	"github.com/pathakanu/medReminder/internal/scheduler"
	"github.com/pathakanu/medReminder/internal/twilio"
	"github.com/pathakanu/medReminder/internal/web"
)

func main() {
	logger := log.New(os.Stdout, "[medReminder] ", log.LstdFlags|log.Lshortfile)
	cfg := config.Load()

	store, err := database.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Fatalf("database init failed: %v", err)
	}
	defer store.Close()

	reminderScheduler := scheduler.New(store, buildNotifier(cfg, logger), cfg.CheckInterval, cfg.LocalTimezone, logger)
	if err := reminderScheduler.Start(); err != nil {
		logger.Fatalf("scheduler start: %v", err)
	}

	info := medinfo.New(cfg.InfoBaseURL, cfg.InfoTimeout, myopenai.New(cfg.OpenAIAPIKey), logger)
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: web.New(store, info, logger).Router(cfg.SessionSecret),
	}

	go func() {
		logger.Printf("server starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	waitForShutdown(server, reminderScheduler, logger)
}

func buildNotifier(cfg *config.Config, logger *log.Logger) notify.Notifier {
	notifiers := notify.Multi{notify.NewLogger(logger)}
	if cfg.DesktopNotifications {
		notifiers = append(notifiers, notify.NewDesktop())
	}
	if cfg.WhatsAppEnabled() {
		logger.Printf("notify: forwarding reminders to WhatsApp %s", cfg.NotifyWhatsAppTo)
		notifiers = append(notifiers, twilio.New(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber, cfg.NotifyWhatsAppTo))
	}
	return notifiers
}

func waitForShutdown(server *http.Server, reminderScheduler *scheduler.Scheduler, logger *log.Logger) {
	stopCtx := make(chan os.Signal, 1)
	signal.Notify(stopCtx, syscall.SIGINT, syscall.SIGTERM)
	<-stopCtx
	logger.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Printf("server shutdown error: %v", err)
	}
	reminderScheduler.Stop()
}
