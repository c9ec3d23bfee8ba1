package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-assistant/internal/schemas"
	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/jonathan/resume-assistant/internal/viewstate"
	"github.com/spf13/cobra"
)

var mypageCmd = &cobra.Command{
	Use:   "mypage",
	Short: "Show or replace the my page profile",
}

var mypageShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print education, work experience, awards and certifications",
	RunE:  runMypageShow,
}

var mypageUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace the whole my page profile with a JSON file",
	Long:  "Replace all four my page collections with the contents of --file. Collections missing from the file are cleared; item ids in the file are ignored.",
	RunE:  runMypageUpdate,
}

var mypageFile string

func init() {
	mypageUpdateCmd.Flags().StringVarP(&mypageFile, "file", "f", "", "JSON file with educations, awards, certifications and work_experiences (required)")
	_ = mypageUpdateCmd.MarkFlagRequired("file")

	mypageCmd.AddCommand(mypageShowCmd, mypageUpdateCmd)
	rootCmd.AddCommand(mypageCmd)
}

func runMypageShow(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	return a.withSession(cmd.Context(), func(types.UserProfile) error {
		page := viewstate.NewMypage(a.mypage)
		page.Load(cmd.Context())
		state := page.State().Snapshot()
		if state.Error != "" {
			return fmt.Errorf("failed to load my page: %s", state.Error)
		}
		a.printer.PrintMypage(state.Page)
		return nil
	})
}

func runMypageUpdate(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(mypageFile)
	if err != nil {
		return fmt.Errorf("failed to read my page file: %w", err)
	}
	if err := schemas.ValidateBytes(schemas.Mypage, data); err != nil {
		return fmt.Errorf("invalid my page file: %w", err)
	}
	var local types.Mypage
	if err := json.Unmarshal(data, &local); err != nil {
		return fmt.Errorf("failed to parse my page file: %w", err)
	}

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	return a.withSession(cmd.Context(), func(types.UserProfile) error {
		o := a.mypage.Update(cmd.Context(), local.ToRequest())
		page, ok := o.Value()
		if !ok {
			return fmt.Errorf("failed to update my page: %s", o.String())
		}
		a.printer.PrintMypage(page)
		return nil
	})
}
