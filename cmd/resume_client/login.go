package main

import (
	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/jonathan/resume-assistant/internal/viewstate"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check the credentials and show the profile",
	Long:  "Sign in with --email and --password, print the user with their my page and personas, and sign out again.",
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	return a.withSession(cmd.Context(), func(user types.UserProfile) error {
		profile := viewstate.NewProfile(a.auth, a.mypage, a.personas, user)
		profile.Load(cmd.Context())
		state := profile.State().Snapshot()

		a.printer.PrintUser(state.User)
		if state.Error != "" {
			a.log.Warn("profile incomplete: " + state.Error)
			return nil
		}
		a.printer.PrintMypage(state.Page)
		a.printer.PrintPersonas(state.Personas)
		return nil
	})
}
