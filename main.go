package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/nijaru/yt-brief/config"
	"github.com/nijaru/yt-brief/handlers"
	"github.com/nijaru/yt-brief/logger"
	"github.com/nijaru/yt-brief/middleware"
	"github.com/nijaru/yt-brief/summarizer"
	"github.com/nijaru/yt-brief/youtube"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment")
	}

	cfg := config.LoadConfig()
	if err := config.ValidateConfig(cfg); err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	log, err := logger.New(cfg.LogDir, cfg.Debug)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize logger")
	}

	ctx := context.Background()

	gemini, err := summarizer.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize Gemini client")
	}
	defer gemini.Close()

	transcripts := youtube.NewClient(nil)
	scraper := youtube.NewScraper(cfg.Scrape.PageTimeout)
	summarizeHandler := handlers.NewSummarizeHandler(transcripts, scraper, gemini)

	mux := http.NewServeMux()
	mux.HandleFunc("/", handlers.ServeIndex)
	mux.HandleFunc("/summarize", summarizeHandler.Summarize)
	mux.HandleFunc("/health", handlers.HealthCheckHandler)

	handler := middleware.Chain(mux,
		middleware.Logging(log),
		middleware.CORS(cfg.CORS),
		middleware.RateLimit(cfg.RateLimit),
	)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"port":  cfg.ServerPort,
			"model": cfg.Gemini.Model,
		}).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	log.Info("Server stopped")
}
