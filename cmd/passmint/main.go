package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/passmint/passmint/pkg/clip"
	"github.com/passmint/passmint/pkg/passgen"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "gen":
			if err := runGen(os.Args[2:], os.Stdout, clip.System); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			return
		case "init":
			initCmd := flag.NewFlagSet("init", flag.ExitOnError)
			initCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: passmint init [flags]\n\nWrite a config file interactively.\n\nFlags:\n")
				initCmd.PrintDefaults()
			}
			path := initCmd.String("config", localConfigName, "where to write the config file")
			_ = initCmd.Parse(os.Args[2:])

			if err := runInitWizard(*path); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: passmint [flags]\n       passmint <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  gen   Generate passwords on stdout\n  init  Write a config file interactively\n")
	}

	configPath := flag.String("config", "", "path to configuration file (default: .passmint.yaml or the user config dir)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	debug := flag.Bool("debug", false, "write a debug log to passmint.log")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool) error {
	if debug {
		f, err := tea.LogToFile("passmint.log", "passmint")
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
	}

	cfg, err := loadConfig(resolveConfigPath(configPath))
	if err != nil {
		return err
	}

	st := passgen.NewState(cfg.generator())
	model := newAppModel(st, clip.System)

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}
