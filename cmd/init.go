package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	stdinIsTerminal  = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	confirmOverwrite = promptOverwrite
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default sw-checklist.yaml configuration file",
		Long: `Create a sw-checklist.yaml in the current working directory populated with the
current defaults so it can be edited manually. An existing file is only
replaced with --force or after confirmation on an interactive terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if _, err := os.Stat(targetPath); err == nil && !force {
				if !stdinIsTerminal() {
					return fmt.Errorf("config file %s already exists (use --force to overwrite)", targetPath)
				}

				ok, err := confirmOverwrite(targetPath)
				if err != nil {
					return err
				}

				if !ok {
					return fmt.Errorf("config file %s left unchanged", targetPath)
				}
			}

			if err := viper.WriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", targetPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, forceFlagName, false, "overwrite an existing configuration file")

	return cmd
}

func promptOverwrite(path string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s exists. Overwrite", path),
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, fmt.Errorf("overwrite confirmation cancelled: %w", err)
	}

	return true, nil
}
