package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sitecfg/internal/config"
	"sitecfg/internal/logging"
	"sitecfg/internal/preflight"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var formatName string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample site configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, target, err := resolveInitTarget(strings.TrimSpace(targetPath), formatName, cmd.Flags().Changed("format"))
			if err != nil {
				return err
			}

			if err := preflight.CheckWritableTarget("config destination", target).Err(); err != nil {
				return err
			}

			if err := config.CreateSample(target, format, overwrite); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}
			logging.NewComponentLogger(ctx.logger, "init").Info("sample config written",
				logging.String(logging.FieldPath, target),
				logging.String("format", string(format)),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the site and socials sections, then run 'sitecfg validate'.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file (default: ./site.<format>)")
	cmd.Flags().StringVar(&formatName, "format", "toml", "File format: toml or yaml")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

// resolveInitTarget combines --path and --format. An explicit format must
// agree with the path's extension; otherwise the extension decides.
func resolveInitTarget(path, formatName string, formatSet bool) (config.Format, string, error) {
	format, err := config.ParseFormat(formatName)
	if err != nil {
		return "", "", err
	}
	if path == "" {
		target, err := config.ExpandPath("site." + string(format))
		return format, target, err
	}

	target, err := config.ExpandPath(path)
	if err != nil {
		return "", "", fmt.Errorf("resolve config path: %w", err)
	}
	fromPath, err := config.FormatFromPath(target)
	if err != nil {
		return "", "", err
	}
	if formatSet && fromPath != format {
		return "", "", fmt.Errorf("--format %s does not match %s", format, target)
	}
	return fromPath, target, nil
}
