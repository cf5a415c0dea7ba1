package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchy/internal/clipboard"
	"github.com/alexisbeaulieu97/swatchy/internal/palette"
)

func newCopyCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <shade|harmony|hex|hexa|rgba> [index] [color]",
		Short: "Copy a derived color to the clipboard",
		Long: `Copy a shade or harmony by index, or the base color as hex, hex+alpha or rgba text.

Examples:
  swatchy copy shade 0 #336699
  swatchy copy harmony 2
  swatchy copy rgba #336699`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(flags, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer app.Close()

			value, err := selectCopyValue(app, args)
			if err != nil {
				return err
			}
			log := app.Logger.WithFields(map[string]any{"value": value})

			result := clipboard.Copy(cmd.Context(), app.Clipboard, value)
			if !result.OK {
				log.Error(result.Err, "copy failed")
				return newCommandError("copy color", result.Message(), result.Err, "Install xclip, xsel or wl-clipboard, or use swatchy show to print values.")
			}
			log.Debug("copied to clipboard")
			fmt.Fprintln(cmd.OutOrStdout(), result.Message())
			return nil
		},
	}

	return cmd
}

// selectCopyValue resolves the value named by args. Indexed sections take
// "<section> <index> [color]"; base values take "<hex|hexa|rgba> [color]".
func selectCopyValue(app *AppContext, args []string) (string, error) {
	switch args[0] {
	case "hex", "hexa", "rgba":
		if len(args) > 2 {
			return "", newCommandError("copy color", fmt.Sprintf("too many arguments for %s", args[0]), fmt.Errorf("expected at most one color"), "Use swatchy copy "+args[0]+" [color].")
		}
		session, err := resolveSession(app, args[1:], "")
		if err != nil {
			return "", err
		}
		p := session.Reveal().Derive()
		switch args[0] {
		case "hex":
			return p.Hex, nil
		case "hexa":
			return p.HexAlpha, nil
		default:
			return p.RGBAText, nil
		}
	}

	section, err := palette.ParseSection(args[0])
	if err != nil {
		return "", newCommandError("copy color", fmt.Sprintf("reading section %q", args[0]), err, "Use shade, harmony, hex, hexa or rgba.")
	}
	if len(args) < 2 {
		return "", newCommandError("copy color", "missing index", fmt.Errorf("%s requires an index", section), "Use swatchy show to list indexes.")
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return "", newCommandError("copy color", fmt.Sprintf("parsing index %q", args[1]), err, "Use a number, for example 0.")
	}

	session, err := resolveSession(app, args[2:], "")
	if err != nil {
		return "", err
	}
	swatch, err := session.Reveal().Derive().Swatch(section, index)
	if err != nil {
		return "", newCommandError("copy color", "selecting swatch", err, "Use swatchy show to list indexes.")
	}
	return swatch.Hex, nil
}
