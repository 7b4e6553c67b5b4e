package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/terminex/internal"
	"codeberg.org/snonux/terminex/internal/models"
	"codeberg.org/snonux/terminex/internal/terminology"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "terminex",
		Short: "Terminology-aware machine translation",
		Long: `terminex translates text through an external machine-translation service
while keeping controlled terminology intact. Known terms from per-language
CSV dictionaries are replaced with placeholders before translation and
restored with their controlled translations afterwards.

Examples:
  terminex list                                 # Show available domains and languages
  terminex translate "Machine learning" --target es
  terminex export --format csv --domain commerce
  terminex sample                               # Write a sample terminology CSV`,
		Version: internal.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.ListModels {
				lister := models.NewLister(GetOpenAIKey())
				return lister.ListAvailableModels()
			}
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.terminex.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flags.Terminology, "terminology", "t", "", "Terminology CSV file or directory")
	rootCmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	rootCmd.AddCommand(newListCommand(flags))
	rootCmd.AddCommand(newTranslateCommand(flags))
	rootCmd.AddCommand(newExportCommand(flags))
	rootCmd.AddCommand(newSampleCommand(flags))

	bindFlagsToViper(rootCmd)

	return rootCmd
}

func newListCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available terminology domains and languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := terminology.ListAvailableOptions(terminologySource(flags))
			if err != nil {
				return err
			}

			fmt.Printf("Domains:   %v\n", options.Domains)
			fmt.Printf("Languages: %v\n", options.Languages)
			fmt.Printf("Terms:     %d\n", options.TermCount)
			return nil
		},
	}
}

func newExportCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [language]",
		Short: "Export terminology as JSON or CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := terminology.ExportFilter{Domain: flags.Domain}
			if len(args) > 0 {
				filter.Language = args[0]
			}

			output, err := terminology.Export(terminologySource(flags), flags.Format, filter)
			if err != nil {
				return err
			}

			if flags.Output != "" {
				if err := os.WriteFile(flags.Output, []byte(output), 0644); err != nil {
					return fmt.Errorf("failed to write export file: %w", err)
				}
				fmt.Printf("Terminology exported to: %s\n", flags.Output)
				return nil
			}

			fmt.Println(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Export format (json or csv)")
	cmd.Flags().StringVarP(&flags.Domain, "domain", "d", "", "Only export terms of this domain")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func newSampleCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample terminology CSV for testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return terminology.SaveSample(flags.SamplePath)
		},
	}

	cmd.Flags().StringVarP(&flags.SamplePath, "output", "o", terminology.DefaultSamplePath, "Sample file path")

	return cmd
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("terminology.path", cmd.PersistentFlags().Lookup("terminology"))
}

// terminologySource resolves the terminology path from the flag or config.
func terminologySource(flags *Flags) string {
	if flags.Terminology != "" {
		return flags.Terminology
	}
	return viper.GetString("terminology.path")
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".terminex" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".terminex")
	}

	// Environment variables
	viper.SetEnvPrefix("TERMINEX")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.gemini_key")
}
