package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/zclarity/internal/adapters/config"
	"github.com/bnema/zclarity/internal/adapters/i18n"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage zclarity settings",
	}

	cmd.AddCommand(newConfigGetCmd(app), newConfigSetCmd(app))

	return cmd
}

func newConfigGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "locale\t%s\nstorage.path\t%s\n",
				app.settings.Locale, app.settings.StoragePath)
			return err
		},
	}
}

func newConfigSetCmd(app *app) *cobra.Command {
	var locale string
	var storagePath string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := app.settings

			if cmd.Flags().Changed("locale") {
				if !i18n.Supported(locale) {
					return fmt.Errorf("unsupported locale %q (available: %s)",
						locale, strings.Join(i18n.Locales(), ", "))
				}
				settings.Locale = locale
			}
			if cmd.Flags().Changed("storage-path") {
				settings.StoragePath = storagePath
			}

			if err := config.Save(settings); err != nil {
				return err
			}

			app.settings = settings
			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "UI locale (th|en)")
	cmd.Flags().StringVar(&storagePath, "storage-path", "", "Directory for session storage")

	return cmd
}
