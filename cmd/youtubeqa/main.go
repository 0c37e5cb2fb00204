package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GuxJ02/API-ExtensionChrome/internal/app"
	"github.com/GuxJ02/API-ExtensionChrome/internal/captions"
	"github.com/GuxJ02/API-ExtensionChrome/internal/chunk"
	"github.com/GuxJ02/API-ExtensionChrome/internal/config"
	"github.com/GuxJ02/API-ExtensionChrome/internal/groq"
	"github.com/GuxJ02/API-ExtensionChrome/internal/server"
	"github.com/GuxJ02/API-ExtensionChrome/internal/subtitles"
	"github.com/GuxJ02/API-ExtensionChrome/internal/transcript"
	"github.com/GuxJ02/API-ExtensionChrome/internal/updater"
	"github.com/GuxJ02/API-ExtensionChrome/internal/ytdlp"

	"github.com/gin-gonic/gin"
)

type cliFlags struct {
	ConfigPath string
	ListenAddr string
	Debug      bool
}

func parseFlags() *cliFlags {
	f := &cliFlags{}
	flag.StringVar(&f.ConfigPath, "config", "youtubeqa.yaml", "path to config file")
	flag.StringVar(&f.ListenAddr, "addr", "", "listen address (overrides config)")
	flag.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	flag.Parse()
	return f
}

func main() {
	flags := parseFlags()

	// .env optionnel, utile en développement
	_ = godotenv.Load()

	// déterminer binDir pour la config par défaut
	binDir := "."
	if exePath, err := os.Executable(); err == nil {
		binDir = filepath.Dir(exePath)
	}
	if flags.ConfigPath == "youtubeqa.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "youtubeqa.yaml")
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if flags.ListenAddr != "" {
		cfg.ListenAddr = flags.ListenAddr
	}

	setupLogging(cfg, flags.Debug)

	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		log.Fatal().Msg("GROQ_API_KEY is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// source de repli yt-dlp
	dl := ytdlp.New(cfg.YtDlp.Name, cfg.YtDlp.ResolvedPath, *ytdlp.NewConfig(cfg.Languages, cfg.YtDlp.ShowWarnings))
	if err := dl.CheckBinary(); err != nil {
		log.Warn().Err(err).Msg("yt-dlp binary not found, fallback source degraded")
	} else if ver, err := dl.GetVersion(ctx); err == nil {
		log.Info().Str("version", ver).Msg("yt-dlp detected")
		if cfg.YtDlp.AutoUpdateCheck {
			go checkYtDlpUpdate(ctx, ver)
		}
	}

	sources := []captions.Source{
		transcript.NewClient(),
		subtitles.NewFallbackSource(dl),
	}

	llm := groq.NewClient(apiKey, groq.Options{
		Model:               cfg.Groq.Model,
		Temperature:         *cfg.Groq.Temperature,
		TopP:                *cfg.Groq.TopP,
		MaxCompletionTokens: cfg.Groq.MaxCompletionTokens,
		Timeout:             cfg.GroqTimeout(),
	})

	pipeline := app.New(sources, llm, cfg.Languages, chunk.Options{
		MaxSeconds: cfg.Chunking.MaxSeconds,
		MaxChars:   cfg.Chunking.MaxChars,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(pipeline, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// la réponse attend la complétion LLM entière, donc bien au-delà
		// du timeout Groq configuré
		WriteTimeout: cfg.GroqTimeout() + 30*time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogging(cfg *config.Config, debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	// sortie lisible hors production
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func checkYtDlpUpdate(ctx context.Context, localVer string) {
	check, err := updater.CheckYtDlpUpdate(ctx, localVer)
	if err != nil {
		log.Warn().Err(err).Msg("yt-dlp update check failed")
		return
	}
	if check.IsUpToDate {
		log.Debug().Str("version", check.CurrentVersion).Msg("yt-dlp is up to date")
		return
	}
	log.Warn().
		Str("current", check.CurrentVersion).
		Str("latest", check.LatestRelease.TagName).
		Str("download", check.GetUpdateLink(runtime.GOOS)).
		Msg("a newer yt-dlp release is available")
}
