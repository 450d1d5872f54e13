// Package cmd provides the root command and CLI setup for sw-checklist.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/softwarewrighter/sw-checklist/internal/adapter"
	"github.com/softwarewrighter/sw-checklist/internal/controller"
	"github.com/softwarewrighter/sw-checklist/internal/domain"
	"github.com/softwarewrighter/sw-checklist/internal/domain/handlers"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
	"github.com/softwarewrighter/sw-checklist/internal/version"
)

// workflow is built on first use so that flags and config are settled.
var workflow domain.Workflow

var (
	verboseFlag   bool
	versionFlag   bool
	shortHelpFlag bool
	reportFlag    string
	plainFlag     bool
	parallelFlag  uint
	timeoutFlag   time.Duration
	editionFlag   bool
)

const rootShortDescription = `CLI tool for validating Software Wrighter LLC project conformance

Use --help for additional details including AI Coding Agent instructions.`

const rootLongDescription = `CLI tool for validating Software Wrighter LLC project conformance

This tool inspects a project directory and checks for compliance with
Software Wrighter LLC standards and best practices. It finds every
Cargo.toml under the given path and runs the checks that fit each crate.

For Rust crates with clap, it validates:
  - Help output (-h vs --help)
  - Version output (-V vs --version)
  - Required metadata in version output
  - AI Coding Agent instructions in help

For all Rust crates, it validates modularity:
  - Function LOC: warns >25 lines, fails >50 lines
  - Module function count: warns >4 functions, fails >7 functions
  - Crate module count: warns >4 modules, fails >7 modules
  - Project crate count: warns >4 crates, fails >7 crates

` + aiAgentInstructions

const aiAgentInstructions = `AI CODING AGENT INSTRUCTIONS:

This tool validates that projects conform to Software Wrighter LLC standards.
It performs various checks based on the project type detected.

USAGE FOR AI AGENTS:
  1. Run this tool on any project to get a checklist of requirements
  2. Address each issue reported by the tool
  3. Re-run to verify all checks pass

EXAMPLE WORKFLOW:
  $ sw-checklist /path/to/project
  # Review output and fix issues
  $ sw-checklist /path/to/project
  # Verify all checks pass

CURRENT CHECKS:

  Rust projects with clap:
  - Help and version output validation
  - AI Coding Agent instructions in --help
  - Version metadata (copyright, license, repository, build info)

  All Rust projects (modularity checks):
  - Functions: warns if >25 LOC, fails if >50 LOC
  - Modules: warns if >4 functions, fails if >7 functions
  - Crates: warns if >4 modules, fails if >7 modules
  - Projects: warns if >4 crates, fails if >7 crates

  WASM projects:
  - Frontend validation checks (index.html, favicon, footer)

  All projects:
  - sw-install presence check (warning if not installed)

Exit status is 1 when any check fails, 0 otherwise. Warnings never fail a run.

For more information, see the repository:
https://github.com/softwarewrighter/sw-checklist`

// rootCmd represents the base command, which runs the checklist.
var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
	rootCmd.AddCommand(newListCmd(), newViewCmd(), newInitCmd(), newVersionCmd())
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sw-checklist [path]",
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger("", viper.GetBool(verboseConfigKey))

			if workflow == nil {
				workflow = buildWorkflow(cmd)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Get().Long())
				return nil
			}

			if shortHelpFlag {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s", cmd.Short, cmd.UsageString())

				return nil
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Root:     pathArg(args),
				Report:   m.Path(viper.GetString(reportConfigKey)),
				Parallel: viper.GetUint(parallelConfigKey),
				Verbose:  viper.GetBool(verboseConfigKey),
				Version:  version.Get().Version,
			})
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(verboseConfigKey), "show verbose output")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), verboseConfigKey)

	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, viper.GetBool(plainConfigKey), "force plain text output")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(plainFlagName), plainConfigKey)

	cmd.Flags().BoolVarP(&versionFlag, versionFlagName, "V", false, "print version information")

	// -h prints the short help; --help the full text with agent instructions.
	cmd.Flags().Bool("help", false, "print help including AI Coding Agent instructions")
	cmd.Flags().BoolVarP(&shortHelpFlag, "short-help", "h", false, "print short help")
	_ = cmd.Flags().MarkHidden("short-help")

	cmd.Flags().StringVar(&reportFlag, reportFlagName, viper.GetString(reportConfigKey), "write the results to a report file (.json for JSON, YAML otherwise)")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)

	cmd.Flags().UintVarP(&parallelFlag, parallelFlagName, "p", viper.GetUint(parallelConfigKey), "number of crates checked in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().DurationVar(&timeoutFlag, timeoutFlagName, viper.GetDuration(timeoutConfigKey), "timeout for each binary invocation")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), timeoutConfigKey)

	cmd.Flags().BoolVar(&editionFlag, editionFlagName, viper.GetBool(editionConfigKey), "require the 2024 edition in every crate")
	bindFlagToConfig(cmd.Flags().Lookup(editionFlagName), editionConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// buildWorkflow assembles the checker from the current configuration.
func buildWorkflow(cmd *cobra.Command) domain.Workflow {
	fs := adapter.NewLocalSourceFSAdapter()
	thresholds := m.DefaultThresholds()
	installDir := handlers.ResolveInstallDir(fs, viper.GetString(installDirKey))
	runner := adapter.NewLocalBinaryRunnerAdapter(viper.GetDuration(timeoutConfigKey))

	checks := []domain.Handler{
		handlers.NewCLIHandler(fs, runner, installDir),
		handlers.NewWebHandler(fs),
	}
	if viper.GetBool(editionConfigKey) {
		checks = append(checks, handlers.NewEditionHandler())
	}

	return domain.NewWorkflow(
		adapter.NewLocalReportStore(),
		newUI(cmd),
		domain.NewLocator(fs, adapter.NewLocalManifestReader(fs), domain.NewClassifier()),
		domain.NewOrchestrator(domain.NewStructureAnalyzer(fs, thresholds), checks...),
		domain.NewGroupCounter(fs, thresholds),
		handlers.NewInstallAdvisory(fs, installDir),
	)
}

func newUI(cmd *cobra.Command) controller.UI {
	progress := controller.NewProgressManager(cmd.ErrOrStderr(), true)

	if viper.GetBool(plainConfigKey) || !controller.IsTerminal(cmd.OutOrStdout()) {
		return controller.NewSimpleUI(cmd, progress)
	}

	return controller.NewTUI(cmd.OutOrStdout(), progress)
}

func pathArg(args []string) m.Path {
	if len(args) == 0 {
		return "."
	}

	return m.Path(args[0])
}

// Execute runs the root command and exits with the checklist verdict.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err == nil {
		return
	}

	var exitErr *domain.CheckExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	rootCmd.PrintErrln("Error:", err)
	os.Exit(1)
}
