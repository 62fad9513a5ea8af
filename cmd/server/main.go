package main

import (
	"flag"
	"holdem-server/internal/config"
	"holdem-server/internal/mux"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/table"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address, overrides the configuration")

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Fatal("could not load .env")
	}

	setupLogger()

	cfg := config.Instance()

	// fail fast
	if cfg.JWT.Secret == "" {
		logrus.Fatal("missing jwt secret in configuration")
	}

	gameOpts := texasholdem.Options{
		SmallBlind:     cfg.Game.SmallBlind,
		BigBlind:       cfg.Game.BigBlind,
		OrbitsPerLevel: cfg.Game.OrbitsPerLevel,
		RevealDelay:    cfg.RevealDelay(),
	}

	if texasholdem.NameFromOptions(gameOpts) == "" {
		logrus.WithField("game", cfg.Game).Fatal("invalid game configuration")
	}

	tableOpts := table.Options{
		MaxPlayers:    cfg.Game.MaxPlayers,
		StartingStack: cfg.Game.StartingStack,
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	listen := cfg.Addr
	if *addr != "" {
		listen = *addr
	}

	srv := &http.Server{
		Addr:         listen,
		Handler:      loggingHandler(c.Handler(mux.NewMux(logrus.StandardLogger(), Version, gameOpts, tableOpts))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).WithField("game", texasholdem.NameFromOptions(gameOpts)).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
