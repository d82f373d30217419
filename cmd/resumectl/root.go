package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for resumectl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resumectl",
		Short: "Extract structured data from PDF resumes",
		Long: `resumectl reads PDF resumes and extracts contact details, seniority
and skills into a JSON record.

The PDF text layer is used when present. Scanned documents fall back to OCR,
which requires a build with -tags ocr and Tesseract installed.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewExtractCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
