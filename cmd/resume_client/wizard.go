package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/jonathan/resume-assistant/internal/viewstate"
	"github.com/spf13/cobra"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Generate a resume from a PDF",
	Long:  "Run the resume creation wizard: upload --pdf for parsing, apply any field overrides, generate the resume and print it.",
	RunE:  runWizard,
}

var (
	wizardPDF        string
	wizardOut        string
	wizardFormat     string
	wizardTargetRole string
	wizardHeadline   string
	wizardFutureGoal string
	wizardKeywords   []string
	wizardTech       []string
)

func init() {
	wizardCmd.Flags().StringVar(&wizardPDF, "pdf", "", "Resume PDF to parse (required)")
	wizardCmd.Flags().StringVarP(&wizardOut, "out", "o", "", "Write the generated resume as JSON to this file")
	wizardCmd.Flags().StringVar(&wizardFormat, "format", "", "Override the resume format")
	wizardCmd.Flags().StringVar(&wizardTargetRole, "target-role", "", "Override the target role")
	wizardCmd.Flags().StringVar(&wizardHeadline, "headline", "", "Override the headline")
	wizardCmd.Flags().StringVar(&wizardFutureGoal, "future-goal", "", "Override the future goal")
	wizardCmd.Flags().StringSliceVar(&wizardKeywords, "keyword", nil, "Add a strength keyword (repeatable)")
	wizardCmd.Flags().StringSliceVar(&wizardTech, "tech", nil, "Add to the main tech stack (repeatable)")
	_ = wizardCmd.MarkFlagRequired("pdf")

	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, _ []string) error {
	document, err := os.ReadFile(wizardPDF)
	if err != nil {
		return fmt.Errorf("failed to read PDF: %w", err)
	}
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	return a.withSession(ctx, func(types.UserProfile) error {
		upload := viewstate.NewUpload(a.parser)
		upload.SelectDocument(filepath.Base(wizardPDF), document)
		upload.Submit(ctx)
		if _, ok := upload.Parsed().Consume(); !ok {
			return fmt.Errorf("failed to parse PDF: %s", upload.State().Snapshot().Error)
		}

		detail := viewstate.NewDetailInput(a.parser, a.generator)
		detail.Init()
		detail.UpdateDetail(func(d *types.ParsedResumeDetail) {
			override(&d.ResumeFormat, wizardFormat)
			override(&d.TargetRole, wizardTargetRole)
			override(&d.Headline, wizardHeadline)
			override(&d.FutureGoal, wizardFutureGoal)
		})
		for _, k := range wizardKeywords {
			detail.AddStrengthKeyword(k)
		}
		for _, t := range wizardTech {
			detail.AddTech(t)
		}
		a.printer.PrintParsedDetail(detail.State().Snapshot().Detail)
		detail.Submit()

		generate := viewstate.NewGenerate(a.generator)
		generate.Start(ctx)
		if _, ok := generate.Generated().Consume(); !ok {
			return fmt.Errorf("failed to generate resume: %s", generate.State().Snapshot().Error)
		}

		complete := viewstate.NewComplete(a.generator)
		if !complete.Init() {
			return fmt.Errorf("generated resume was not stored")
		}
		resume := complete.State().Snapshot().Resume
		a.printer.PrintGeneratedResume(resume)

		if wizardOut != "" {
			data, err := json.MarshalIndent(resume, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode resume: %w", err)
			}
			if err := os.WriteFile(wizardOut, data, 0644); err != nil {
				return fmt.Errorf("failed to write resume: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved resume to %s\n", wizardOut)
		}
		return nil
	})
}

func override(field *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*field = v
	}
}
