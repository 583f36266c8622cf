package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	logger "github.com/metal3d/cakesort/log"
	"github.com/spf13/cobra"
)

func buildCompletionCommand() *cobra.Command {
	noDocumentation := false
	bashv1Completion := false
	completionCmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Short:     "Generates completion scripts",
		Example:   fmt.Sprintf(strings.Join(completionExamples, "\n"), filepath.Base(os.Args[0])),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("shell type required")
			}
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				if bashv1Completion {
					return cmd.Root().GenBashCompletion(out)
				}
				return cmd.Root().GenBashCompletionV2(out, !noDocumentation)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell type %q", args[0])
			}
		},
	}
	completionCmd.Flags().BoolVar(
		&noDocumentation,
		"no-documentation", noDocumentation,
		"Do not include documentation")
	completionCmd.Flags().BoolVar(
		&bashv1Completion,
		"bashv1", bashv1Completion,
		"Use bash version 1 completion")

	return completionCmd
}

func buildMainCommand() *cobra.Command {

	cmd := cobra.Command{
		Use:          "cakesort [command]",
		Short:        "cakesort checks the order of imports and class members in JavaScript files.",
		Example:      fmt.Sprintf(strings.Join(examples, "\n"), filepath.Base(os.Args[0])),
		Long:         fmt.Sprintf(usage, filepath.Base(os.Args[0])),
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeViper(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("You need to specify a command or an option")
		},
	}

	config := defaultConfig()
	checkCommand := buildCheckCommand(config)
	cmd.AddCommand(checkCommand)
	cmd.AddCommand(buildPrintConfigCommand(config, checkCommand))
	cmd.AddCommand(buildCompletionCommand())
	return &cmd
}

func buildPrintConfigCommand(config *CheckConfig, checkCommand *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "print-config",
		Short: "Print the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeViper(checkCommand); err != nil {
				return err
			}
			return printConfigFile(config, cmd.OutOrStdout())
		},
	}
}

func buildCheckCommand(config *CheckConfig) *cobra.Command {
	checkCommand := &cobra.Command{
		Use:   "check [flags] [file.js|directory|stdin]",
		Short: "Check the order of imports, methods and properties in JavaScript files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !stdinIsPiped() {
				return errors.New("You should provide a file or a directory or stream content to stdin.")
			}
			if config.Jobs < 1 {
				return fmt.Errorf("Invalid jobs count %d, it must be at least 1", config.Jobs)
			}
			if len(config.Extensions) == 0 {
				return errors.New("At least one file extension is required")
			}
			for _, pattern := range config.Exclude {
				if !doublestar.ValidatePattern(pattern) {
					return fmt.Errorf("Invalid exclude pattern %q", pattern)
				}
			}
			logger.SetVerbose(config.Verbose)
			return run(cmd.Context(), config, cmd.OutOrStdout(), args...)
		},
	}

	checkCommand.Flags().BoolVarP(
		&config.Verbose,
		"verbose", "v", config.Verbose,
		"Verbose output")
	checkCommand.Flags().BoolVar(
		&config.ConstructorFirst,
		"constructor-first", config.ConstructorFirst,
		"Allow a constructor as first class member, out of alphabetical order")
	checkCommand.Flags().StringVar(
		&config.Delimiter,
		"delimiter", config.Delimiter,
		`Text starting a line comment that opens a new class section, as in "// -- Private Methods --"`)
	checkCommand.Flags().StringSliceVar(
		&config.Extensions,
		"ext", config.Extensions,
		"File extensions to check when walking directories")
	checkCommand.Flags().StringSliceVar(
		&config.Exclude,
		"exclude", config.Exclude,
		"Glob patterns (with ** support) of paths to skip")
	checkCommand.Flags().IntVarP(
		&config.Jobs,
		"jobs", "j", config.Jobs,
		"Number of files analyzed in parallel")
	return checkCommand
}
