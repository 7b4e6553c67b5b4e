package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/terminex/internal/processor"
)

func newTranslateCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate text keeping controlled terminology intact",
		Long: `translate sends text through the configured translation engine via the
pivot language. Terms found in the terminology are replaced with
placeholders first and restored with their controlled translations in the
final text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.TargetLang == "" {
				return fmt.Errorf("target language is required (use --target)")
			}
			if flags.BatchFile == "" && len(args) == 0 {
				return fmt.Errorf("provide text to translate or use --batch")
			}

			proc, err := processor.New(processor.Options{
				Terminology: terminologySource(flags),
				Engine:      flags.Engine,
				OpenAIKey:   GetOpenAIKey(),
				OpenAIModel: flags.OpenAIModel,
				GeminiKey:   GetGeminiKey(),
				GeminiModel: flags.GeminiModel,
				SourceLang:  flags.SourceLang,
				PivotLang:   flags.PivotLang,
				TargetLang:  flags.TargetLang,
				MemoryPath:  flags.MemoryPath,
				OutputDir:   flags.OutputDir,
				BatchFile:   flags.BatchFile,
			})
			if err != nil {
				return err
			}
			defer proc.Close()

			if flags.BatchFile != "" {
				return proc.ProcessBatch(cmd.Context())
			}
			return proc.ProcessText(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVar(&flags.TargetLang, "target", "", "Target language code (required)")
	cmd.Flags().StringVar(&flags.SourceLang, "source", flags.SourceLang, "Source language code")
	cmd.Flags().StringVar(&flags.PivotLang, "pivot", flags.PivotLang, "Intermediate pivot language code")
	cmd.Flags().StringVar(&flags.Engine, "engine", flags.Engine, "Translation engine (openai or gemini)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate texts from file (one per line)")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Save results under this directory")
	cmd.Flags().StringVar(&flags.MemoryPath, "memory", "", "SQLite translation memory file")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for translation")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for translation")

	return cmd
}
