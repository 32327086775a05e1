package cli

import (
	"fmt"
	"sort"

	"github.com/crillab/proptab/bdd"
	"github.com/crillab/proptab/bf"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify formula",
		Short: "Tell whether a formula is a tautology, a contradiction or neither.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := parse(args[0])
			d, err := bdd.Compile(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %s models out of %d\n", f, d.Class(), d.Models(), uint64(1)<<f.NbVars())
			return nil
		},
	}
}

func newSatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sat [flags] formula",
		Short: "Find an assignment satisfying a formula.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := bf.FromFormula(parse(args[0]))
			if err != nil {
				return err
			}
			model := bf.Solve(f)
			out := cmd.OutOrStdout()
			if model == nil {
				fmt.Fprintln(out, "UNSATISFIABLE")
				if getFlag(cmd, "explain") {
					mus, err := bf.Explain(f)
					if err != nil {
						return err
					}
					for _, clause := range mus {
						fmt.Fprintf(out, "c %s\n", clause)
					}
				}
				return nil
			}
			fmt.Fprintln(out, "SATISFIABLE")
			keys := make(sort.StringSlice, 0, len(model))
			for k := range model {
				keys = append(keys, k)
			}
			sort.Sort(keys)
			for _, k := range keys {
				val := 0
				if model[k] {
					val = 1
				}
				fmt.Fprintf(out, "%s: %d\n", k, val)
			}
			return nil
		},
	}
	cmd.Flags().Bool("explain", false, "print a minimal set of clauses that cannot be satisfied together")
	return cmd
}

func newDimacsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dimacs formula",
		Short: "Print the CNF translation of a formula in the DIMACS format.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := bf.FromFormula(parse(args[0]))
			if err != nil {
				return err
			}
			return bf.Dimacs(f, cmd.OutOrStdout())
		},
	}
}
