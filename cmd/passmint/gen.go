package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/passmint/passmint/pkg/clip"
	"github.com/passmint/passmint/pkg/passgen"
)

// runGen prints passwords to out, one per line, and optionally copies the
// first one to the clipboard. Options come from the config file; flags given
// on the command line override it.
func runGen(args []string, out io.Writer, cb clip.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: passmint gen [flags]\n\nGenerate passwords on stdout.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	var (
		configPath string
		length     int
		digits     bool
		symbols    bool
		count      int
		copyFirst  bool
	)

	fs.StringVar(&configPath, "config", "", "path to configuration file")
	fs.IntVar(&length, "length", 0, "password length (clamped to 6-100)")
	fs.IntVar(&length, "l", 0, "password length (clamped to 6-100)")
	fs.BoolVar(&digits, "digits", false, "include digits")
	fs.BoolVar(&digits, "d", false, "include digits")
	fs.BoolVar(&symbols, "symbols", false, "include symbols")
	fs.BoolVar(&symbols, "s", false, "include symbols")
	fs.IntVar(&count, "count", 0, "number of passwords")
	fs.IntVar(&count, "n", 0, "number of passwords")
	fs.BoolVar(&copyFirst, "copy", false, "copy the first password to the clipboard")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(resolveConfigPath(configPath))
	if err != nil {
		return err
	}

	// Only flags that were actually set override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "length", "l":
			cfg.Length = length
		case "digits", "d":
			cfg.Digits = digits
		case "symbols", "s":
			cfg.Symbols = symbols
		case "count", "n":
			cfg.Count = count
		}
	})

	cfg.Length = passgen.ClampLength(cfg.Length)
	if cfg.Count < 1 {
		cfg.Count = 1
	}

	var first string
	for i := range cfg.Count {
		pw := passgen.Generate(cfg.generator())
		if i == 0 {
			first = pw
		}
		fmt.Fprintln(out, pw)
	}

	// A failed copy is reported but the passwords were already printed, so
	// the run still succeeds.
	if copyFirst {
		if st := clip.Copy(cb, first); st != clip.StatusCopied {
			fmt.Fprintln(os.Stderr, "warning: clipboard copy failed")
		}
	}

	return nil
}
