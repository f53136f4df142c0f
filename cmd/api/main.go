package main

import (
	"log"
	"net/http"

	"github.com/HBKLXNDR/telegram-consultant/cmd/api/config"
	"github.com/HBKLXNDR/telegram-consultant/cmd/api/handlers"
	"github.com/HBKLXNDR/telegram-consultant/services/bot"
	"github.com/HBKLXNDR/telegram-consultant/services/logger"
	"github.com/HBKLXNDR/telegram-consultant/services/telegram"
	"github.com/HBKLXNDR/telegram-consultant/services/workqueue"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/gocraft/work"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load env vars: %v", err)
	}

	// initialise services
	l := logger.New()
	defer l.Sync()

	tgBot, err := telegram.New(cfg.BotToken)
	if err != nil {
		log.Fatalf("failed to initialise bot: %v", err)
	}

	if err := tgBot.SetCommands(bot.Commands); err != nil {
		l.Warn("failed to register bot commands", zap.Error(err))
	}

	redisPool := workqueue.NewPool(cfg.RedisURL, cfg.RedisPassword)
	scheduler := workqueue.NewScheduler(cfg.RedisNamespace, redisPool)

	botCfg := bot.Config{
		WebAppURL:     cfg.WebAppURL,
		HomepageURL:   cfg.HomepageURL,
		StaffChatID:   cfg.StaffChatID,
		StaffUsername: cfg.StaffUsername,
	}
	pipeline := bot.NewPipeline(l, tgBot, scheduler, botCfg)
	dispatcher := bot.NewDispatcher(l, tgBot, pipeline, botCfg)
	webApp := bot.NewWebApp(l, tgBot)

	h := handlers.New(l, cfg, dispatcher, webApp, pipeline)

	// worker pool for delayed follow-up sends
	workerPool := work.NewWorkerPool(struct{}{}, 2, cfg.RedisNamespace, redisPool)
	workerPool.Job(workqueue.JobFollowUp, h.JobFollowUp)
	workerPool.Start()
	defer workerPool.Stop()

	// initialise main router with basic middlewares, cors settings etc
	router := mainRouter()

	// mount services
	router.Mount("/", h.Routes())

	err = http.ListenAndServe(":"+cfg.Port, router)
	if err != nil {
		log.Print(err)
	}
}

func mainRouter() chi.Router {
	router := chi.NewRouter()

	// A good base middleware stack
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// stop crawlers
	router.Get("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow: /"))
	})

	return router
}
