package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crillab/proptab/render"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const replHelp = `Symbols: ( ) ! v ^ -> <-> (v is a lowercase V, ^ is Shift+6)
Spaces are ignored and letters are not case sensitive.
Type a formula to get its normal forms and truth table,
"f1 == f2" to compare two formulas, or "quit" to leave.`

func newReplCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read formulas from the standard input and describe them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := term.IsTerminal(int(os.Stdin.Fd()))
			return s.repl(cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
		},
	}
}

// repl reads one request per line from in and answers on out.
// Errors on a line are logged and do not stop the loop.
// The help message and the prompts are only printed when interactive is true.
func (s *settings) repl(in io.Reader, out io.Writer, interactive bool) error {
	prompt := func() {
		if interactive {
			fmt.Fprint(out, "> ")
		}
	}
	if interactive {
		fmt.Fprintf(out, "%s\n\n", replHelp)
	}
	prompt()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "quit" || line == "exit":
			return nil
		case strings.Contains(line, "=="):
			parts := strings.SplitN(line, "==", 2)
			if err := s.compare(out, s.cfg.Equivalence, parts[0], parts[1]); err != nil {
				log.Error(err)
			}
		default:
			if err := s.describe(out, line); err != nil {
				log.Error(err)
			}
		}
		prompt()
	}
	return scanner.Err()
}

// describe prints the canonical form, the normal forms and the truth table of raw.
func (s *settings) describe(out io.Writer, raw string) error {
	f, err := s.enumerable(raw)
	if err != nil {
		return err
	}
	t, err := f.Table()
	if err != nil {
		return err
	}
	dnf, err := f.DNF()
	if err != nil {
		return err
	}
	cnf, err := f.CNF()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Formula: %s\n", f)
	if err := render.Forms(out, dnf, cnf); err != nil {
		return err
	}
	return render.Text(out, t, s.colored)
}
