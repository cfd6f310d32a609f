package cmd

import (
	"context"
	"strings"
	"time"

	"github.com/dunossauro/dunoslide/config"
	"github.com/dunossauro/dunoslide/export"
	"github.com/dunossauro/dunoslide/theme/dunossauro"
	"github.com/fatih/color"
	"github.com/k1LoW/exec"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check dunoslide environment and configuration",
	Long:  `Check dunoslide environment and configuration to ensure everything is set up correctly.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Color setup
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		yellow := color.New(color.FgYellow)
		bold := color.New(color.Bold)

		allOK := true

		// 1. Check configuration file (optional)
		cmd.Print("🔧 Checking configuration file ... ")
		cfg, err := config.Load(profile)
		if err != nil {
			red.Println("✗ CONFIG ERROR")
			cmd.Printf("   Error loading config: %v\n", err)
			cfg = &config.Config{}
			allOK = false
		} else {
			green.Println("✓ OK")
			cmd.Printf("   Config directory: %s\n", config.ConfigHomePath())
		}

		// 2. Check themes
		cmd.Print("🎨 Checking themes ... ")
		r := newRegistry(cfg)
		var broken []string
		for _, name := range r.Names() {
			if _, err := r.Resolve(name); err != nil {
				broken = append(broken, err.Error())
			}
		}
		if len(broken) > 0 {
			red.Println("✗ BROKEN THEME")
			for _, b := range broken {
				cmd.Printf("   %s\n", b)
			}
			allOK = false
		} else {
			green.Println("✓ OK")
			cmd.Printf("   Themes: %s\n", strings.Join(r.Names(), ", "))
		}

		cmd.Print("📦 Checking vendor scripts ... ")
		if missing := dunossauro.MissingVendorAssets(); len(missing) > 0 {
			yellow.Println("⚠️ MISSING")
			cmd.Printf("   %s; run go generate ./theme/dunossauro before building\n", strings.Join(missing, ", "))
		} else {
			green.Println("✓ OK")
		}

		// 3. Check browser for export (optional)
		cmd.Print("🌐 Checking browser for export ... ")
		browserPath, err := export.FindBrowser(cfg.Browser)
		if err != nil {
			yellow.Println("⚠️ NOT FOUND")
			cmd.Printf("   %v\n", err)
		} else {
			v, err := browserVersion(ctx, browserPath)
			if err != nil {
				yellow.Println("⚠️ NOT EXECUTABLE")
				cmd.Printf("   %s: %v\n", browserPath, err)
			} else {
				green.Println("✓ OK")
				cmd.Printf("   %s (%s)\n", browserPath, v)
			}
		}

		// Final message
		cmd.Println()
		if allOK {
			bold.Printf("🎉 ")
			green.Print("All checks passed! You are ready to use dunoslide")
			bold.Println(".")
			cmd.Println()
			cmd.Println("Try the sample presentation:")
			yellow.Println("  dunoslide sample --open")
		} else {
			red.Println("⚠️  Setup is incomplete.")
			cmd.Println("\nPlease fix the issues above to use dunoslide properly.")
		}
		return nil
	},
}

func browserVersion(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
