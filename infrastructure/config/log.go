package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dana-network/danad/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel       = "info"
	defaultLogFilename    = "danactl.log"
	defaultErrLogFilename = "danactl_err.log"
)

// LogFlags holds the logging configuration shared by all commands.
type LogFlags struct {
	LogDir     string `long:"logdir" description:"Directory to log output. When unset logs are only written to stderr"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
}

// ResolveLogging applies the debug levels and starts the log backend.
func (logFlags *LogFlags) ResolveLogging() error {
	if logFlags.DebugLevel == "" {
		logFlags.DebugLevel = defaultLogLevel
	}

	// Special show command to list supported subsystems and exit.
	if logFlags.DebugLevel == "show" {
		fmt.Println("Supported subsystems", logger.SupportedSubsystems())
		os.Exit(0)
	}

	err := logger.ParseAndSetDebugLevels(logFlags.DebugLevel)
	if err != nil {
		return err
	}

	var logFile, errLogFile string
	if logFlags.LogDir != "" {
		logFlags.LogDir = cleanAndExpandPath(logFlags.LogDir)
		logFile = filepath.Join(logFlags.LogDir, defaultLogFilename)
		errLogFile = filepath.Join(logFlags.LogDir, defaultErrLogFilename)
	}
	err = logger.InitLog(logFile, errLogFile)
	if err != nil {
		return errors.Wrap(err, "failed to initialize the log")
	}
	return nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
