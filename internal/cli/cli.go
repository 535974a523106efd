package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/modbundle/internal/app"
)

// Environment variables consulted when the matching flag is not given.
const (
	EnvManifest    = "MODBUNDLE_MANIFEST"
	EnvSourceDir   = "MODBUNDLE_SRC"
	EnvExtension   = "MODBUNDLE_EXT"
	EnvHeaderLines = "MODBUNDLE_HEADER_LINES"
	EnvLogLevel    = "MODBUNDLE_LOG_LEVEL"
	EnvLogFormat   = "MODBUNDLE_LOG_FORMAT"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("modbundle", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
modbundle - Concatenate library modules into one file in dependency order.

Usage:
  modbundle [options] MODULE... > OUTFILE
  modbundle [options] all > OUTFILE

Example:
  modbundle pbkdf2 tiger > my_crypto.js

Dependencies are handled automatically, and the order is corrected.
The header of every file after the first is dropped.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to an HCL manifest file or directory. Empty uses the built-in table. [$"+EnvManifest+"]")
	srcFlag := flagSet.String("src", app.DefaultSourceDir, "Directory holding the module sources. [$"+EnvSourceDir+"]")
	extFlag := flagSet.String("ext", app.DefaultExtension, "Extension of module source files. [$"+EnvExtension+"]")
	headerFlag := flagSet.Int("header-lines", app.DefaultHeaderLines, "Header lines dropped from every file after the first. [$"+EnvHeaderLines+"]")
	orderOnlyFlag := flagSet.Bool("order-only", false, "Print the resolved module order instead of the bundle.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'. [$"+EnvLogFormat+"]")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. [$"+EnvLogLevel+"]")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No modules provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := app.Config{
		ManifestPath: pickString(explicit["manifest"], *manifestFlag, EnvManifest),
		OrderOnly:    *orderOnlyFlag,
		LogFormat:    strings.ToLower(pickString(explicit["log-format"], *logFormatFlag, EnvLogFormat)),
		LogLevel:     strings.ToLower(pickString(explicit["log-level"], *logLevelFlag, EnvLogLevel)),
	}

	if flagSet.NArg() == 1 && flagSet.Arg(0) == "all" {
		cfg.All = true
	} else {
		cfg.Modules = flagSet.Args()
	}
	slog.Debug("Modules requested.", "all", cfg.All, "modules", cfg.Modules)

	cfg.Overrides.SourceDir = overrideString(explicit["src"], *srcFlag, EnvSourceDir)
	cfg.Overrides.Extension = overrideString(explicit["ext"], *extFlag, EnvExtension)
	headerLines, err := overrideInt(explicit["header-lines"], *headerFlag, EnvHeaderLines)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	cfg.Overrides.HeaderLines = headerLines

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// pickString returns the flag value when the flag was given, then the
// environment value, then the flag default.
func pickString(explicit bool, flagValue, env string) string {
	if explicit {
		return flagValue
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	return flagValue
}

// overrideString is like pickString but returns nil when neither the flag
// nor the environment set a value, leaving room for manifest settings.
func overrideString(explicit bool, flagValue, env string) *string {
	if explicit {
		return &flagValue
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return &v
	}
	return nil
}

func overrideInt(explicit bool, flagValue int, env string) (*int, error) {
	if explicit {
		return &flagValue, nil
	}
	v, ok := os.LookupEnv(env)
	if !ok || v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: must be an integer", env, v)
	}
	return &n, nil
}
