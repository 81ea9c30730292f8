package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweetcross/crossclient"
	"github.com/sweetcross/crossclient/internal/config"
	"github.com/sweetcross/crossclient/internal/infrastructure/logging"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: logging.MaskSensitiveAttrs,
	}))
	slog.SetDefault(logger)

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crossclient",
		Short:         "CROSSプラットフォームへ結果ファイルを提出するクライアント",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSubmitCmd())
	return root
}

func newSubmitCmd() *cobra.Command {
	var (
		configPath string
		filePath   string
		fileName   string
		contract   string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "結果ファイルをアップロードします",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			slog.Info("configuration loaded", "config", cfg.String())

			client, err := crossclient.New(
				cfg.Username,
				cfg.Password,
				crossclient.WithBaseURL(cfg.BaseURL),
				crossclient.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			)
			if err != nil {
				return err
			}

			if err := client.Connect(ctx); err != nil {
				return err
			}
			slog.Info("authenticated", "username", client.Username())

			if contract == "" {
				contract = cfg.Contract
			}
			receipt, err := client.SubmitResults(ctx, crossclient.SubmitRequest{
				Path:     filePath,
				FileName: fileName,
				Contract: contract,
			})
			if err != nil {
				return err
			}

			slog.Info("submission successful",
				"submission_id", receipt.SubmissionID.String(),
				"contract", receipt.Contract,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "提出する結果ファイルのパス")
	cmd.Flags().StringVar(&fileName, "name", "", "アップロード時のファイル名（省略時はファイルのベース名）")
	cmd.Flags().StringVarP(&contract, "contract", "c", "", "提出先コントラクト（省略時は設定またはデフォルト）")
	cmd.Flags().StringVar(&configPath, "config", "", "設定ファイルのパス")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
