// Package cli implements the interactive AuthGate client.
package cli

import (
	"bufio"
	"os"

	"github.com/sgurov/authgate/internal/client/api"
	"github.com/sgurov/authgate/internal/client/config"
)

type App struct {
	config *config.Config
	client *api.Client

	// Session state for the current REPL run.
	token    string
	userName string

	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	client := api.New(c.ServerBaseURL, c.RequestTimeout)
	return &App{config: c, client: client, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return "(" + a.userName + ")"
}
