// Package cmd implements the prism inspection CLI: small commands for
// converting values between domain-range conventions and resolving named
// colours, layered on top of the library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/prism/config"
	"github.com/zjrosen/prism/internal/log"
	"github.com/zjrosen/prism/scale"
)

var (
	version = "dev"
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:     "prism",
	Short:   "Inspect prism colour utilities",
	Long:    `Convert values between domain-range scale conventions and resolve named colours using the prism utilities library.`,
	Version: version,
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: PRISM_* environment variables)")
}

func initConfig() {
	if path := os.Getenv("PRISM_DEBUG"); path != "" {
		if _, err := log.Init(path); err == nil {
			log.SetEnabled(true)
		}
	}

	settings := config.Load()
	if cfgFile != "" {
		settings = config.LoadFile(cfgFile)
	}
	config.Apply(settings)

	if name := settings.DomainRangeScale; name != "" {
		if s, err := scale.Parse(name); err == nil {
			_ = scale.Set(s)
		}
	}
}
