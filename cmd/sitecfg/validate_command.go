package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitecfg/internal/logging"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the site configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.logger, "validate")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)

			findings := cfg.Lint()
			for _, finding := range findings {
				fmt.Fprintf(out, "warning: %s\n", finding)
				logger.Warn("configuration lint finding",
					logging.String(logging.FieldConfigKey, finding.Field),
					logging.String("message", finding.Message),
				)
			}
			if strict && len(findings) > 0 {
				return fmt.Errorf("configuration has %d warning(s) and --strict is set", len(findings))
			}

			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat lint warnings as errors")
	return cmd
}
