package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sitecfg/internal/config"
	"sitecfg/internal/locale"
)

type showOutput struct {
	Path    string              `json:"path"`
	Site    config.Site         `json:"site"`
	Locales []string            `json:"locales"`
	Socials []config.SocialLink `json:"socials"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved site configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			locales := cfg.ResolvedLocales(locale.Environment{})
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), showOutput{
					Path:    ctx.configPath,
					Site:    cfg.Site,
					Locales: locales,
					Socials: nonNil(cfg.Socials),
				})
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "Config: %s\n\n", ctx.configPath)
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, siteRows(cfg.Site), nil, colorize))
			fmt.Fprintf(out, "\nLocales: %s\n", describeLocales(cfg, locales))
			if len(cfg.Socials) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderSocials(cfg.Socials, true, colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newSocialsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var all bool

	cmd := &cobra.Command{
		Use:   "socials",
		Short: "List social links in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			links := cfg.Socials
			if !all {
				links = slices.Collect(cfg.ActiveSocialLinks())
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), nonNil(links))
			}

			out := cmd.OutOrStdout()
			if len(links) == 0 {
				fmt.Fprintln(out, "No social links")
				return nil
			}
			fmt.Fprintln(out, renderSocials(links, all, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&all, "all", false, "Include inactive links")
	return cmd
}

func newLocalesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "locales",
		Short: "Print the resolved locales",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			locales := cfg.ResolvedLocales(locale.Environment{})
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), locales)
			}
			out := cmd.OutOrStdout()
			for _, tag := range locales {
				fmt.Fprintln(out, tag)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func siteRows(site config.Site) [][]string {
	return [][]string{
		{"Website", site.Website},
		{"Title", site.Title},
		{"Author", site.Author},
		{"Description", site.Desc},
		{"Light/dark mode", yesNo(site.LightAndDarkMode)},
		{"Posts per page", strconv.Itoa(site.PostPerPage)},
		{"Logo", describeLogo(site.LogoImage)},
	}
}

func describeLogo(logo *config.LogoImage) string {
	switch {
	case logo == nil:
		return "not configured"
	case !logo.Enable:
		return "disabled"
	}
	kind := "raster"
	if logo.SVG {
		kind = "svg"
	}
	return fmt.Sprintf("%s %dx%d", kind, logo.Width, logo.Height)
}

func describeLocales(cfg *config.Config, resolved []string) string {
	parts := make([]string, 0, len(resolved))
	for _, tag := range resolved {
		parts = append(parts, fmt.Sprintf("%s (%s)", tag, locale.DisplayName(tag)))
	}
	joined := strings.Join(parts, ", ")
	if len(cfg.Locale) == 0 {
		joined += " [environment default]"
	}
	return joined
}

func renderSocials(links []config.SocialLink, withActive bool, colorize bool) string {
	headers := []string{"#", "Name", "Link", "Title"}
	if withActive {
		headers = append(headers, "Active")
	}
	rows := make([][]string, 0, len(links))
	for i, link := range links {
		row := []string{strconv.Itoa(i + 1), link.Name, link.Href, link.LinkTitle}
		if withActive {
			row = append(row, yesNo(link.Active))
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, []columnAlignment{alignRight}, colorize)
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
