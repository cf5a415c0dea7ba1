package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatchy/internal/config"
	"github.com/alexisbeaulieu97/swatchy/internal/palette"
)

// normalizeColorArg accepts "#RRGGBB", "RRGGBB" and the shorthand forms,
// returning the canonical "#"-prefixed input.
func normalizeColorArg(arg string) (string, error) {
	value := strings.TrimSpace(arg)
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	if !config.IsSwatchHex(value) {
		return "", newCommandError("read color", fmt.Sprintf("parsing %q", arg), fmt.Errorf("not a hex color"), "Use #RRGGBB or #RGB, for example #336699.")
	}
	return strings.ToUpper(value), nil
}

// resolveSession builds the palette session for a command invocation. An
// explicit color argument wins over the configured color, and an opacity
// flag wins over the configured opacity.
func resolveSession(app *AppContext, args []string, opacity string) (palette.Session, error) {
	session := palette.NewSession(app.Config.Color, app.Config.Opacity)

	if len(args) > 0 {
		hex, err := normalizeColorArg(args[0])
		if err != nil {
			return session, err
		}
		session = session.WithColor(hex)
	}

	if opacity != "" {
		a, err := palette.ParseOpacity(opacity)
		if err != nil {
			return session, newCommandError("read opacity", fmt.Sprintf("parsing %q", opacity), err, "Use a value between 0 and 1, or a percentage such as 40%.")
		}
		session = session.WithOpacity(a)
	}

	return session, nil
}
