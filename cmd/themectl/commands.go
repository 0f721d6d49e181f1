package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dashboard-theme/internal/auth"
	"dashboard-theme/internal/export"
	"dashboard-theme/internal/theme"
	"dashboard-theme/internal/ui"
)

func newListCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every theme token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []map[string]string
			for _, tk := range theme.Default().Tokens() {
				if group != "" && tk.Group() != group {
					continue
				}
				row := map[string]string{
					"path":  tk.Path,
					"value": tk.Value,
					"kind":  string(tk.Kind),
				}
				if tk.Kind == theme.KindColor {
					row["swatch"] = ui.Swatch(tk.Value)
				}
				rows = append(rows, row)
			}
			if len(rows) == 0 {
				return fmt.Errorf("no tokens in group %q", group)
			}

			fmt.Fprint(cmd.OutOrStdout(), ui.RenderTable(ui.RenderTableOptions{
				Columns: []ui.TableColumn{
					{Key: "path", Header: "TOKEN"},
					{Key: "value", Header: "VALUE", MaxWidth: 48},
					{Key: "kind", Header: "KIND"},
					{Key: "swatch", Header: ""},
				},
				Rows: rows,
			}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "only list tokens in this group (colors, font, spacing, ...)")
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <token|group>",
		Short: "Print a token value (colors.primary) or every value in a group (breakpoints)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := theme.Default()
			v, err := t.Value(args[0])
			if err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}

			group := map[string]string{}
			for _, tk := range t.Tokens() {
				if tk.Group() == args[0] {
					group[tk.Name()] = tk.Value
				}
			}
			if len(group) == 0 {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSimpleTable(group))
			return nil
		},
	}
}

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Show the named colour accessors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := theme.Default()
			rows := make([]map[string]string, 0, 7)
			for _, a := range theme.Accessors() {
				rows = append(rows, map[string]string{
					"getter": "get" + a.Name,
					"role":   "colors." + a.Role,
					"value":  ui.SwatchLabel(a.Get(t)),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderTable(ui.RenderTableOptions{
				Columns: []ui.TableColumn{
					{Key: "getter", Header: "ACCESSOR"},
					{Key: "role", Header: "TOKEN"},
					{Key: "value", Header: "VALUE"},
				},
				Rows: rows,
			}))
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var output string

	names := make([]string, 0, 4)
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}

	cmd := &cobra.Command{
		Use:       "export <" + strings.Join(names, "|") + ">",
		Short:     "Render the theme for the dashboard",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(args[0])
			if err != nil {
				return err
			}
			body, err := export.Render(theme.Default(), f)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}
			if err := os.WriteFile(output, body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			ui.LogStatus("success", fmt.Sprintf("Wrote %s (%d bytes)", output, len(body)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate token values and report text contrast",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			t := theme.Default()

			if err := t.Validate(); err != nil {
				var verr *theme.ValidationError
				if errors.As(err, &verr) {
					fmt.Fprint(out, ui.FormatNote(strings.Join(verr.Problems, "\n"), "✗ Invalid theme"))
				}
				return err
			}

			pairs, err := t.TextContrast()
			if err != nil {
				return err
			}

			failing := 0
			rows := make([]map[string]string, 0, len(pairs))
			for _, p := range pairs {
				grade := ui.Error("fail")
				switch {
				case p.PassesAAA():
					grade = ui.Success("AAA")
				case p.PassesAA():
					grade = ui.Warn("AA")
				default:
					failing++
				}
				rows = append(rows, map[string]string{
					"fg":    p.Foreground,
					"bg":    p.Background,
					"ratio": fmt.Sprintf("%.2f:1", p.Ratio),
					"grade": grade,
				})
			}

			fmt.Fprintf(out, "%s %d tokens valid\n", ui.Success("✔"), len(t.Tokens()))
			fmt.Fprint(out, ui.RenderTable(ui.RenderTableOptions{
				Columns: []ui.TableColumn{
					{Key: "fg", Header: "TEXT"},
					{Key: "bg", Header: "ON"},
					{Key: "ratio", Header: "RATIO", Align: ui.AlignRight},
					{Key: "grade", Header: "WCAG"},
				},
				Rows: rows,
			}))

			if failing == 0 {
				ui.SuccessNote(fmt.Sprintf("All %d text colour pairs meet WCAG AA.", len(pairs)))
				return nil
			}

			var below []string
			for _, p := range pairs {
				if !p.PassesAA() {
					below = append(below, fmt.Sprintf("%s on %s: %.2f:1", p.Foreground, p.Background, p.Ratio))
				}
			}
			ui.WarningNote(strings.Join(below, "\n"))
			if strict {
				return fmt.Errorf("%d colour pairs below WCAG AA", failing)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any text colour is below WCAG AA contrast")
	return cmd
}

func newHashKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-key",
		Short: "Read API keys from stdin and print bcrypt hashes for the keys file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				key := strings.TrimSpace(scanner.Text())
				if key == "" {
					continue
				}
				hash, err := auth.HashKey(key)
				if err != nil {
					return fmt.Errorf("hash key: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), hash)
			}
			return scanner.Err()
		},
	}
}
