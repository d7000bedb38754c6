package log

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/fatih/color"
	pos "github.com/pinpt/go-filterset/os"
	"github.com/spf13/cobra"
)

// RegisterFlags will register the flags for logging
func RegisterFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("log-level", pos.Getenv("FILTERSET_LOG_LEVEL", "info"), "set the log level")
	rootCmd.PersistentFlags().String("log-color", "dark", "set the log color profile (dark, light or none). only applies to console logging")
	rootCmd.PersistentFlags().String("log-format", pos.Getenv("FILTERSET_LOG_FORMAT", "default"), "set the log format (json, logfmt, default)")
	rootCmd.PersistentFlags().String("log-output", "-", "the location of the log file, use - for default or specify a location")
}

// NewCommandLogger returns a new Logger for a given command. Logs go to stderr by default
// so that stdout stays reserved for command output.
func NewCommandLogger(cmd *cobra.Command, opts ...WithLogOptions) (LoggerCloser, error) {
	isContainer := pos.IsInsideContainer()

	var writer io.Writer
	var isfile bool
	o, _ := cmd.Flags().GetString("log-output")
	switch o {
	case "-", "", "/dev/stderr", "stderr":
		writer = os.Stderr
	case "/dev/stdout", "stdout":
		writer = os.Stdout
	case "/dev/null":
		writer = ioutil.Discard
	default:
		f, err := os.Create(o)
		if err != nil {
			return nil, fmt.Errorf("cannot open %s. %w", o, err)
		}
		writer = f
		isfile = true
	}

	var logFormat OutputFormat
	lf, _ := cmd.Flags().GetString("log-format")
	switch lf {
	case "json":
		logFormat = JSONLogFormat
	case "logfmt":
		logFormat = LogFmtLogFormat
	default:
		if isfile || isContainer {
			logFormat = LogFmtLogFormat
		} else {
			logFormat = ConsoleLogFormat
		}
	}

	var logColorTheme ColorTheme
	lc, _ := cmd.Flags().GetString("log-color")
	switch lc {
	case "light":
		logColorTheme = LightLogColorTheme
	case "none":
		logColorTheme = NoColorTheme
		color.NoColor = true
	default:
		if color.NoColor {
			logColorTheme = NoColorTheme
		} else {
			logColorTheme = DarkLogColorTheme
		}
	}

	lvl, _ := cmd.Flags().GetString("log-level")
	minLogLevel := LevelFromString(strings.ToLower(lvl))

	// if discard writer, optimize the return
	if writer == ioutil.Discard {
		minLogLevel = NoneLevel
	}

	if isContainer || isfile {
		// if inside docker or in a file, we want timestamp
		opts = append(opts, WithDefaultTimestampLogOption())
	}

	return NewLogger(writer, logFormat, logColorTheme, minLogLevel, cmd.Name(), opts...), nil
}
