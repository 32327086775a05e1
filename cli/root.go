// Package cli implements the proptab command.
package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/crillab/proptab/config"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go install".
var Version string

// settings are resolved once per invocation, from the configuration files and the flags.
type settings struct {
	cfg     config.Config
	colored bool
}

func newRootCmd() *cobra.Command {
	var s settings
	root := &cobra.Command{
		Use:   "proptab",
		Short: "Truth tables and principal normal forms of propositional formulas.",
		Long: `Truth tables, principal normal forms and equivalence of propositional formulas.

Formulas use single-letter variables and the following operators, from highest to lowest priority:
  ! or n     negation       (¬)
  ^ or a     conjunction    (∧)
  v          disjunction    (∨)
  ->         implication    (→)
  <->        biconditional  (↔)
Letters are not case sensitive, except v, a and n which are operators when lowercase.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if getFlag(cmd, "version") {
				fmt.Fprintf(cmd.OutOrStdout(), "proptab %s\n", version())
				return nil
			}
			return cmd.Help()
		},
	}
	root.Flags().Bool("version", false, "Report version of this executable")
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().String("config", "", "configuration file (default: proptab.toml in the current directory or its parents)")
	root.PersistentFlags().String("color", "", "colorize output: auto, always or never")
	root.PersistentFlags().Int("max-vars", 0, "maximum number of variables of an enumerated formula")
	root.AddCommand(
		newTableCmd(&s),
		newFormCmd(&s, "dnf", "principal disjunctive normal form"),
		newFormCmd(&s, "cnf", "principal conjunctive normal form"),
		newPostfixCmd(&s),
		newEquivCmd(&s),
		newClassifyCmd(),
		newSatCmd(),
		newDimacsCmd(),
		newReplCmd(&s),
	)
	return root
}

// Execute runs the command given on the command line.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func version() string {
	if Version != "" {
		// Built via "make"
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		return info.Main.Version
	}
	// Unknown, perhaps "go run"
	return "(unknown version)"
}

// load reads the configuration, then applies the flags on top of it.
func (s *settings) load(cmd *cobra.Command) error {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	var err error
	if path := getString(cmd, "config"); path != "" {
		s.cfg, err = config.LoadFile(path)
	} else {
		var dir string
		if dir, err = os.Getwd(); err != nil {
			return fmt.Errorf("could not get working directory: %v", err)
		}
		s.cfg, err = config.Load(dir)
	}
	if err != nil {
		return fmt.Errorf("could not load configuration: %v", err)
	}
	if cmd.Flags().Changed("color") {
		s.cfg.Color = getString(cmd, "color")
	}
	if cmd.Flags().Changed("max-vars") {
		s.cfg.MaxVars = getInt(cmd, "max-vars")
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	switch s.cfg.Color {
	case "always":
		s.colored = true
	case "never":
		s.colored = false
	default:
		s.colored = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	log.Debugf("configuration: %+v", s.cfg)
	return nil
}
