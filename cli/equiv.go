package cli

import (
	"fmt"
	"io"

	"github.com/crillab/proptab/bdd"
	"github.com/crillab/proptab/bf"
	"github.com/crillab/proptab/prop"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEquivCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equiv [flags] formula1 formula2",
		Short: "Tell whether two formulas are equivalent.",
		Long: `Tell whether two formulas are equivalent.
The "table" method compares truth tables row by row and ignores variable names:
formulas with the same number of variables and the same table are equivalent.
The "bdd" and "sat" methods match variables by name.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := s.cfg.Equivalence
			if cmd.Flags().Changed("method") {
				method = getString(cmd, "method")
			}
			return s.compare(cmd.OutOrStdout(), method, args[0], args[1])
		},
	}
	cmd.Flags().String("method", "table", "comparison method: table, bdd or sat")
	return cmd
}

func (s *settings) equivalent(method string, f1, f2 *prop.Formula) (bool, error) {
	log.Debugf("comparing %s and %s with method %q", f1, f2, method)
	switch method {
	case "table":
		for _, f := range []*prop.Formula{f1, f2} {
			if err := s.checkSize(f); err != nil {
				return false, err
			}
		}
		return prop.Equivalent(f1, f2)
	case "bdd":
		return bdd.Equivalent(f1, f2)
	case "sat":
		return bf.Equivalent(f1, f2)
	default:
		return false, fmt.Errorf("unknown equivalence method %q", method)
	}
}

// compare prints whether raw1 and raw2 are equivalent according to method.
func (s *settings) compare(out io.Writer, method, raw1, raw2 string) error {
	f1, f2 := parse(raw1), parse(raw2)
	eq, err := s.equivalent(method, f1, f2)
	if err != nil {
		return err
	}
	if eq {
		fmt.Fprintf(out, "%s and %s are equivalent\n", f1, f2)
	} else {
		fmt.Fprintf(out, "%s and %s are not equivalent\n", f1, f2)
	}
	return nil
}
