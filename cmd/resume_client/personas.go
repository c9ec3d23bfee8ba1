package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/jonathan/resume-assistant/internal/viewstate"
	"github.com/spf13/cobra"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "Manage interviewer personas",
}

var personasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List personas",
	RunE:  runPersonasList,
}

var personasCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a custom persona",
	RunE:  runPersonasCreate,
}

var personasUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a custom persona; only the given flags change",
	Args:  cobra.ExactArgs(1),
	RunE:  runPersonasUpdate,
}

var personasDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom persona",
	Args:  cobra.ExactArgs(1),
	RunE:  runPersonasDelete,
}

var (
	personaFilter      types.PersonaFilter
	personaName        string
	personaDescription string
	personaPrompt      string
	personaInactive    bool
)

func init() {
	personasListCmd.Flags().BoolVar(&personaFilter.ActiveOnly, "active-only", false, "Only active personas")
	personasListCmd.Flags().BoolVar(&personaFilter.CustomOnly, "custom-only", false, "Only user-created personas")
	personasListCmd.Flags().BoolVar(&personaFilter.DefaultOnly, "default-only", false, "Only default personas")

	for _, c := range []*cobra.Command{personasCreateCmd, personasUpdateCmd} {
		c.Flags().StringVar(&personaName, "name", "", "Persona name")
		c.Flags().StringVar(&personaDescription, "description", "", "Short description")
		c.Flags().StringVar(&personaPrompt, "prompt", "", "Prompt that shapes the interviewer")
		c.Flags().BoolVar(&personaInactive, "inactive", false, "Mark the persona inactive")
	}

	personasCmd.AddCommand(personasListCmd, personasCreateCmd, personasUpdateCmd, personasDeleteCmd)
	rootCmd.AddCommand(personasCmd)
}

func runPersonasList(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	return a.withSession(cmd.Context(), func(types.UserProfile) error {
		list := viewstate.NewPersonaList(a.personas)
		list.Load(cmd.Context(), personaFilter)
		state := list.State().Snapshot()
		if state.Error != "" {
			return fmt.Errorf("failed to list personas: %s", state.Error)
		}
		a.printer.PrintPersonas(state.Personas)
		return nil
	})
}

func runPersonasCreate(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	return a.withSession(cmd.Context(), func(types.UserProfile) error {
		editor := viewstate.NewPersonaEditor(a.personas)
		editor.UpdateName(personaName)
		editor.UpdateDescription(personaDescription)
		editor.UpdatePrompt(personaPrompt)
		editor.SetActive(!personaInactive)
		return savePersona(cmd.Context(), a, editor)
	})
}

func runPersonasUpdate(cmd *cobra.Command, args []string) error {
	id, err := parsePersonaID(args[0])
	if err != nil {
		return err
	}
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	return a.withSession(cmd.Context(), func(types.UserProfile) error {
		current, err := findPersona(cmd.Context(), a, id)
		if err != nil {
			return err
		}
		editor, err := viewstate.EditPersona(a.personas, current)
		if err != nil {
			return fmt.Errorf("cannot update persona %d: %w", id, err)
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			editor.UpdateName(personaName)
		}
		if flags.Changed("description") {
			editor.UpdateDescription(personaDescription)
		}
		if flags.Changed("prompt") {
			editor.UpdatePrompt(personaPrompt)
		}
		if flags.Changed("inactive") {
			editor.SetActive(!personaInactive)
		}
		return savePersona(cmd.Context(), a, editor)
	})
}

func runPersonasDelete(cmd *cobra.Command, args []string) error {
	id, err := parsePersonaID(args[0])
	if err != nil {
		return err
	}
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	return a.withSession(cmd.Context(), func(types.UserProfile) error {
		list := viewstate.NewPersonaList(a.personas)
		list.Load(cmd.Context(), types.PersonaFilter{})
		list.Delete(cmd.Context(), id)
		if _, ok := list.Deleted().Consume(); !ok {
			return fmt.Errorf("failed to delete persona %d: %s", id, list.State().Snapshot().Error)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted persona %d\n", id)
		return nil
	})
}

func savePersona(ctx context.Context, a *app, editor *viewstate.PersonaEditor) error {
	if err := editor.Validate(); err != nil {
		return fmt.Errorf("invalid persona: %w", err)
	}
	editor.Submit(ctx)
	saved, ok := editor.Saved().Consume()
	if !ok {
		return fmt.Errorf("failed to save persona: %s", editor.State().Snapshot().Error)
	}
	a.printer.PrintPersonas([]types.Persona{saved})
	return nil
}

func findPersona(ctx context.Context, a *app, id int64) (types.Persona, error) {
	o := a.personas.List(ctx, types.PersonaFilter{})
	personas, ok := o.Value()
	if !ok {
		return types.Persona{}, fmt.Errorf("failed to list personas: %s", o.String())
	}
	i := slices.IndexFunc(personas, func(p types.Persona) bool { return p.ID == id })
	if i < 0 {
		return types.Persona{}, fmt.Errorf("persona %d not found", id)
	}
	return personas[i], nil
}

func parsePersonaID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid persona id %q", s)
	}
	return id, nil
}
