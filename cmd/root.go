package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "sbom2doc",
	Short: "Generate documentation for an SBOM",
	Long:  "sbom2doc parses a Software Bill of Materials (CycloneDX or SPDX JSON) and renders a document with package, license and copyright information as console text, Markdown, JSON or PDF.",
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Add debug information and write diagnostic CSV reports")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")

	viper.SetEnvPrefix("SBOM2DOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(rootCmd.PersistentFlags())
}

func Execute() error {
	return rootCmd.Execute()
}
