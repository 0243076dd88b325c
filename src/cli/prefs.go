package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/diogovalentte/tukangkomik/src/preferences"
	"github.com/diogovalentte/tukangkomik/src/sources"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show and change the source preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the source preferences with their current values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		screen, err := preferenceScreen()
		if err != nil {
			return err
		}

		values, err := screen.Values(cmd.Context())
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), values)
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a source preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		screen, err := preferenceScreen()
		if err != nil {
			return err
		}

		if err = screen.Change(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], args[1])
		return nil
	},
}

var prefsEditCmd = &cobra.Command{
	Use:   "edit [key]",
	Short: "Change a source preference interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		screen, err := preferenceScreen()
		if err != nil {
			return err
		}

		values, err := screen.Values(cmd.Context())
		if err != nil {
			return err
		}
		if len(values) == 0 {
			return fmt.Errorf("the source has no preferences")
		}

		var current *preferences.PreferenceValue
		if len(args) == 1 {
			for i := range values {
				if values[i].Key == args[0] {
					current = &values[i]
				}
			}
			if current == nil {
				return fmt.Errorf("preference '%s' not found", args[0])
			}
		} else {
			items := []string{}
			for _, value := range values {
				items = append(items, fmt.Sprintf("%s (%s)", value.Title, value.Value))
			}

			selectPrompt := promptui.Select{
				Label: "Select preference",
				Items: items,
			}
			idx, _, err := selectPrompt.Run()
			if err != nil {
				return fmt.Errorf("selection cancelled")
			}
			current = &values[idx]
		}

		label := current.Title
		if current.DialogTitle != "" {
			label = current.DialogTitle
		}
		prompt := promptui.Prompt{
			Label:     label,
			Default:   current.Value,
			AllowEdit: true,
		}
		newValue, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("edit cancelled")
		}

		if err = screen.Change(cmd.Context(), current.Key, newValue); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", current.Key, newValue)
		return nil
	},
}

func preferenceScreen() (*preferences.Screen, error) {
	id, err := sourceID()
	if err != nil {
		return nil, err
	}

	return sources.GetPreferenceScreen(id)
}

func init() {
	prefsCmd.AddCommand(prefsGetCmd, prefsSetCmd, prefsEditCmd)
	rootCmd.AddCommand(prefsCmd)
}
