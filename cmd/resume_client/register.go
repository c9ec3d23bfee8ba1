package main

import (
	"fmt"

	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/jonathan/resume-assistant/internal/viewstate"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long:  "Create an account with --email and --password plus the profile fields below. The password rules are enforced by the server.",
	RunE:  runRegister,
}

var (
	registerUsername string
	registerName     string
	registerAge      int
	registerGender   string
	registerJob      string
	registerPhone    string
)

func init() {
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Username (defaults to the email)")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name (required)")
	registerCmd.Flags().IntVar(&registerAge, "age", 0, "Age")
	registerCmd.Flags().StringVar(&registerGender, "gender", "", "Gender: M/F/O, male/female or 남/여")
	registerCmd.Flags().StringVar(&registerJob, "job", "", "Job title")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number")

	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	signup := viewstate.NewSignup(a.auth)
	signup.UpdateForm(func(f *types.RegisterParams) {
		f.Username = registerUsername
		f.Email = a.cfg.Email
		f.Password = a.cfg.Password
		f.Name = registerName
		f.Age = registerAge
		f.Gender = registerGender
		f.Job = registerJob
		f.PhoneNumber = registerPhone
	})
	signup.UpdatePasswordConfirm(a.cfg.Password)
	if err := signup.Validate(); err != nil {
		return fmt.Errorf("invalid registration: %w", err)
	}

	signup.Submit(cmd.Context())
	result, ok := signup.Registered().Consume()
	if !ok {
		return fmt.Errorf("registration failed: %s", signup.State().Snapshot().Error)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	a.printer.PrintUser(result.User)
	return nil
}
