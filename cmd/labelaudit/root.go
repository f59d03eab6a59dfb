package main

import (
	"github.com/spf13/cobra"
)

var (
	providerFlag string
	modelFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "labelaudit",
	Short: "Extract inspection data from shipping label photos",
	Long: `labelaudit reads a JPEG photo of a shipping or inspection label and asks a
multimodal model to transcribe it into structured inspection rows.

The inference credential is read from LABELAUDIT_API_KEY (or API_KEY).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&providerFlag, "provider", "", "inference provider: gemini or openai (default from LABELAUDIT_INFERENCE_PROVIDER)",
	)
	rootCmd.PersistentFlags().StringVar(
		&modelFlag, "model", "", "model name override",
	)

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(serveCmd)
}
