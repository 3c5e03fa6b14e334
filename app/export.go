package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nosytlabs/nosytlabs-site/internal/daemon"
	"github.com/nosytlabs/nosytlabs-site/internal/export"
)

func init() { //nolint: gochecknoinits
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "./dist", "Output directory")
	exportCmd.Flags().IntVar(&exportConcurrency, "concurrency", export.DefaultConcurrency, "Pages rendered at once")

	rootCmd.AddCommand(exportCmd)
}

var (
	exportDir         string
	exportConcurrency int

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the public pages as static files",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			defer func() {
				_ = d.Close()
			}()

			res, err := d.Export(cmd.Context(), exportDir, exportConcurrency)
			if err != nil {
				return err //nolint:wrapcheck
			}

			log.Info().Int("pages", res.Pages).Int("assets", res.Assets).Str("out", exportDir).Msg("export done")

			return nil
		},
	}
)
