// Package cli implements the fraction command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/fraction/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	decimal   bool
	verbose   bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags     rootFlags
	configDir string
	config    *viper.Viper
	log       *log.Logger
}

// sysError marks a failure of the environment rather than of the input.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemErr(format string, args ...any) error {
	return &sysError{err: fmt.Errorf(format, args...)}
}

// NewRootCmd creates the top-level "fraction" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: log.New(io.Discard, "", 0)}

	root := &cobra.Command{
		Use:   "fraction",
		Short: "Exact rational arithmetic on int32 fractions",
		Long: "fraction evaluates, compares and converts fractions with int32\n" +
			"numerators and denominators, always kept in lowest terms.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&a.flags.decimal, "decimal", false, "print results as decimals")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newEvalCmd(a))
	root.AddCommand(newCmpCmd(a))
	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newReadCmd(a))

	return root
}

// setup resolves the config directory, loads config.yaml and configures
// logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.flags.verbose {
		a.log = log.New(cmd.ErrOrStderr(), "[FRACTION] ", log.LstdFlags)
	}

	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return systemErr("resolve config dir: %w", err)
	}
	a.configDir = dir

	v, err := loadConfig(dir)
	if err != nil {
		return &sysError{err: err}
	}
	if err := v.BindPFlag(cfgKeyJSON, cmd.Root().PersistentFlags().Lookup("json")); err != nil {
		return systemErr("bind json flag: %w", err)
	}
	a.config = v
	a.log.Printf("config dir %s (file: %q)", dir, v.ConfigFileUsed())
	return nil
}

// Run executes the CLI with the given arguments and streams and returns the
// process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "fraction:", err)
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// Execute runs the root command against the process streams and exits with
// the appropriate code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
