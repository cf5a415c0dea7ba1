package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchy/pkg/diff"
)

func newCompareCmd(flags *rootFlags) *cobra.Command {
	var opacity string

	cmd := &cobra.Command{
		Use:   "compare <color> <color>",
		Short: "Show which derived values differ between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(flags, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer app.Close()

			var docs [2]string
			var labels [2]string
			for i, arg := range args {
				session, err := resolveSession(app, []string{arg}, opacity)
				if err != nil {
					return err
				}
				p := session.Derive()
				var buf bytes.Buffer
				renderPaletteText(&buf, p, false)
				docs[i] = buf.String()
				labels[i] = p.Hex
			}

			out := cmd.OutOrStdout()
			listing := diff.Unified(docs[0], docs[1], labels[0], labels[1])
			if listing == "" {
				fmt.Fprintf(out, "%s and %s derive identical palettes\n", labels[0], labels[1])
				return nil
			}

			added, removed := diff.Changed(docs[0], docs[1])
			app.Logger.WithFields(map[string]any{"added": added, "removed": removed}).Debug("palettes compared")
			fmt.Fprint(out, listing)
			fmt.Fprintf(out, "\n%d removed, %d added\n", removed, added)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opacity, "opacity", "a", "", "Opacity applied to both colors")

	return cmd
}
