package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newShowCmd(flags *rootFlags) *cobra.Command {
	var (
		opacity string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "show [color]",
		Short: "Print the palette derived from a color",
		Long:  `Print the base color conversions, shades and harmonies. Without a color argument the configured color is used.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(flags, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer app.Close()

			session, err := resolveSession(app, args, opacity)
			if err != nil {
				return err
			}
			p := session.Reveal().Derive()
			app.Logger.WithColor(p.Hex, p.Opacity).Debug("palette derived")

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				renderPaletteText(out, p, supportsUnicode(out))
			case "json":
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(p); err != nil {
					return fmt.Errorf("failed to encode palette: %w", err)
				}
			case "yaml":
				encoder := yaml.NewEncoder(out)
				encoder.SetIndent(2)
				if err := encoder.Encode(p); err != nil {
					return fmt.Errorf("failed to encode palette: %w", err)
				}
				if err := encoder.Close(); err != nil {
					return fmt.Errorf("failed to encode palette: %w", err)
				}
			default:
				return newCommandError("show palette", fmt.Sprintf("unsupported format %q", format), fmt.Errorf("unknown output format"), "Use --format text, json or yaml.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opacity, "opacity", "a", "", "Opacity between 0 and 1 or a percentage (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")

	return cmd
}
