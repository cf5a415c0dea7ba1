package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/swatchy/internal/clipboard"
	"github.com/alexisbeaulieu97/swatchy/internal/config"
	"github.com/alexisbeaulieu97/swatchy/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config    *config.Config
	Logger    *logger.Logger
	Clipboard clipboard.Writer

	closers []io.Closer
}

// newClipboard is swapped out by tests.
var newClipboard = func() clipboard.Writer {
	return clipboard.NewSystem()
}

// loadAppContext resolves configuration and builds the logger. When
// quietConsole is set and no log file is configured, logs are discarded so
// they do not draw over the interactive screen.
func loadAppContext(flags *rootFlags, logWriter io.Writer, quietConsole bool) (*AppContext, error) {
	path := flags.configPath
	explicit := path != ""
	if !explicit {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, newCommandError("start", "determining config path", err, "Ensure your HOME directory is set correctly.")
		}
		path = defaultPath
	}

	var (
		cfg *config.Config
		err error
	)
	if explicit {
		cfg, err = config.ParseConfig(path)
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, newCommandError("start", fmt.Sprintf("loading configuration %q", path), err, "Fix the configuration errors shown above and try again.")
	}

	app := &AppContext{Config: cfg, Clipboard: newClipboard()}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}

	writer := logWriter
	switch {
	case cfg.Log.File != "":
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, newCommandError("start", fmt.Sprintf("opening log file %q", cfg.Log.File), err, "Check that the log directory exists and is writable.")
		}
		app.closers = append(app.closers, file)
		writer = file
	case quietConsole:
		app.Logger = logger.Discard()
		return app, nil
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        writer,
		Component:     "swatchy",
	})
	if err != nil {
		return nil, newCommandError("start", "creating logger", err, "Use one of trace, debug, info, warn, error or disabled for log.level.")
	}
	app.Logger = log

	return app, nil
}

// Close releases files opened for the application.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}
