package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/passmint/passmint/pkg/passgen"
)

// runInitWizard asks for the generation options interactively and writes
// them to path as YAML. An existing file is only replaced after an explicit
// confirmation.
func runInitWizard(path string) error {
	defaults := defaultAppConfig()

	length := strconv.Itoa(defaults.Length)
	digits := defaults.Digits
	symbols := defaults.Symbols
	count := strconv.Itoa(defaults.Count)

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Password length (%d-%d)", passgen.MinLength, passgen.MaxLength)).
			Value(&length).
			Validate(validateLength),
		huh.NewConfirm().Title("Include digits (0-9)?").Value(&digits),
		huh.NewConfirm().Title("Include symbols (punctuation)?").Value(&symbols),
		huh.NewInput().
			Title("Passwords per gen run").
			Value(&count).
			Validate(validatePositiveInt),
	)).Run(); err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		var overwrite bool
		if err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title(fmt.Sprintf("%s exists. Overwrite?", path)).Value(&overwrite),
		)).Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Printf("Keeping %s\n", path)
			return nil
		}
	}

	cfg := appConfig{Digits: digits, Symbols: symbols}
	cfg.Length, _ = strconv.Atoi(length)
	cfg.Count, _ = strconv.Atoi(count)

	if err := writeConfigFile(path, cfg); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

// writeConfigFile marshals cfg and writes it to path, creating parent
// directories as needed.
func writeConfigFile(path string, cfg appConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0o644)
}

func validateLength(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < passgen.MinLength || n > passgen.MaxLength {
		return fmt.Errorf("must be an integer between %d and %d", passgen.MinLength, passgen.MaxLength)
	}

	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive integer")
	}

	return nil
}
