package global

import (
	"recipe-vault/backend/config"

	"github.com/rs/zerolog"
)

var (
	Config config.Config
	Logger = zerolog.Nop()
)
