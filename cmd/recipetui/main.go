package main

import (
	"flag"

	"recipe-vault/cmd/recipetui/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

func main() {
	url := flag.String("url", "http://127.0.0.1:5555", "recipe-vault server base URL")
	flag.Parse()

	client, err := ui.NewClient(*url)
	if err != nil {
		log.Fatal().Err(err).Msg("create client")
	}
	if _, err := tea.NewProgram(ui.NewRootModel(client), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal().Err(err).Msg("run ui")
	}
}
