package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchy/internal/tui"
)

// runProgram is swapped out by tests so the screen is never taken over.
var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
}

func runInteractive(cmd *cobra.Command, flags *rootFlags, args []string) error {
	app, err := loadAppContext(flags, cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}
	defer app.Close()

	session, err := resolveSession(app, args, "")
	if err != nil {
		return err
	}

	log := app.Logger.WithColor(session.Color(), session.Opacity())
	log.Info("launching palette")

	m := tui.NewModel(tui.Options{
		Session:       session,
		Clipboard:     app.Clipboard,
		Logger:        log,
		StatusTimeout: app.Config.UI.StatusTimeout,
		OpacityStep:   app.Config.UI.OpacityStep,
		Unicode:       app.Config.UI.Unicode && supportsUnicode(cmd.OutOrStdout()),
	})

	final, err := runProgram(m)
	if err != nil {
		log.Error(err, "palette exited with error")
		return newCommandError("run palette", "running the interactive screen", err, "Run swatchy show for non-interactive output.")
	}

	if fm, ok := final.(tui.Model); ok {
		log.WithColor(fm.Session().Color(), fm.Session().Opacity()).Debug("palette closed")
	}
	return nil
}
