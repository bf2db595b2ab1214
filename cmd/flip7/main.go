package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Verbose bool `short:"v" env:"FLIP7_VERBOSE" help:"Enable debug logging"`
	NoColor bool `env:"NO_COLOR" help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version    kong.VersionFlag `help:"Show version"`
	Play       PlayCmd          `cmd:"" help:"Play a single game and print the result"`
	League     LeagueCmd        `cmd:"" help:"Run a strategy league"`
	Watch      WatchCmd         `cmd:"" help:"Play a single game and replay it round by round"`
	Strategies StrategiesCmd    `cmd:"" help:"List the strategy combinations a config produces"`
}

func main() {
	if err := loadEnv(os.Getenv("FLIP7_ENV_FILE")); err != nil {
		log.Warn("Failed to load env file", "error", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("flip7"),
		kong.Description("Flip 7 card game simulator and strategy league"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// loadEnv loads KEY=value pairs from filename (".env" when empty) without
// overriding variables that are already set. A missing file is not an error.
func loadEnv(filename string) error {
	if filename == "" {
		filename = ".env"
	}
	err := godotenv.Load(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
