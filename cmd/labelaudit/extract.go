package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"labelaudit/internal/app"
	"labelaudit/internal/config"
	"labelaudit/internal/domain"
	"labelaudit/internal/export"
	"labelaudit/internal/logger"
	"labelaudit/internal/port"
)

var (
	apiKeyFlag string
	outFlag    string
)

var extractCmd = &cobra.Command{
	Use:   "extract <image.jpg>",
	Short: "Extract inspection rows from a label image",
	Long: `Send one JPEG label image to the configured model and print the result.

The output format follows the --out extension (.json, .csv or .xlsx).
Without --out the result is printed to stdout as JSON.

Examples:
  labelaudit extract label.jpg
  labelaudit extract label.jpg --out inspection.xlsx
  labelaudit extract label.jpg --provider openai --model gpt-4o`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyInferenceFlags(&cfg.Inference)

		format, err := outputFormat(outFlag)
		if err != nil {
			return err
		}

		zl, err := logger.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync(zl)

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading image: %w", err)
		}

		ext, err := app.NewExtractor(&cfg.Inference, credentials(), zl)
		if err != nil {
			return err
		}

		data, err := ext.Extract(cmd.Context(), base64.StdEncoding.EncodeToString(raw))
		if err != nil {
			return err
		}
		zl.Info("extraction complete",
			zap.String("image", args[0]),
			zap.Int("items", len(data.Items)),
			zap.Int("total_pcs", data.TotalPCS()),
		)

		return writeResult(cmd.OutOrStdout(), outFlag, data, format)
	},
}

func init() {
	extractCmd.Flags().StringVar(&apiKeyFlag, "api-key", "", "inference API key (overrides "+config.APIKeyEnv+")")
	extractCmd.Flags().StringVar(&outFlag, "out", "", "output file (.json, .csv or .xlsx)")
}

func applyInferenceFlags(cfg *config.InferenceConfig) {
	if providerFlag != "" {
		cfg.Provider = providerFlag
	}
	if modelFlag != "" {
		cfg.Model = modelFlag
	}
}

func credentials() port.CredentialSource {
	if apiKeyFlag != "" {
		return config.StaticCredentials(apiKeyFlag)
	}
	return config.NewEnvCredentials()
}

// outputFormat maps an output path to an export format. An empty path means JSON.
func outputFormat(path string) (domain.ExportFormat, error) {
	if path == "" {
		return domain.ExportFormatJSON, nil
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return domain.ParseExportFormat(ext)
}

func writeResult(stdout io.Writer, path string, data *domain.ExtractedData, format domain.ExportFormat) error {
	if path == "" {
		return export.Write(stdout, data, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := export.Write(f, data, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
