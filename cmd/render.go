package cmd

import (
	"os"

	"github.com/dunossauro/dunoslide"
	"github.com/dunossauro/dunoslide/config"
	"github.com/spf13/cobra"
)

var (
	htmlOut   string
	staticURL string
)

var renderCmd = &cobra.Command{
	Use:   "render [FILE]",
	Short: "render a presentation into a single HTML file",
	Long: `render a presentation into a single HTML file.

Theme assets such as fonts are referenced under --static-url.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		e, err := newEngine(cfg, newLogger(), themeName)
		if err != nil {
			return err
		}
		p, err := e.Load(args[0])
		if err != nil {
			return err
		}
		html, err := e.Render(p, staticURL)
		if err != nil {
			return err
		}
		if err := os.WriteFile(htmlOut, []byte(html), 0o600); err != nil {
			return err
		}
		cmd.PrintErrf("Saved to %s\n", htmlOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&htmlOut, "output", "o", "presentation.html", "output HTML file")
	renderCmd.Flags().StringVarP(&staticURL, "static-url", "", dunoslide.DefaultStaticURL, "URL prefix of theme static files")
	renderCmd.Flags().StringVarP(&themeName, "theme", "t", "", "theme overriding the one set in the document")
}
