package initialize

import (
	"io"
	"os"
	"strings"

	"recipe-vault/backend/config"
	"recipe-vault/backend/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// basic zerolog setup: console writer to stdout
	SetupLogger(config.Log{Format: "console", Level: "info"}, os.Stdout)
}

// SetupLogger replaces global.Logger according to cfg.
func SetupLogger(cfg config.Log, out io.Writer) {
	var w io.Writer = out
	if !strings.EqualFold(cfg.Format, "json") {
		w = zerolog.ConsoleWriter{Out: out}
	}
	global.Logger = log.Output(w).With().Timestamp().Logger()
	SetLogLevel(cfg.Level)
}

func SetLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
