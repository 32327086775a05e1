package cli

import (
	"fmt"
	"os"

	"github.com/crillab/proptab/prop"
	"github.com/crillab/proptab/shorthand"
	"github.com/spf13/cobra"
)

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// parse normalizes raw and returns the corresponding formula.
func parse(raw string) *prop.Formula {
	return prop.New(shorthand.Normalize(raw))
}

// enumerable parses raw and checks its truth table is small enough to be computed.
func (s *settings) enumerable(raw string) (*prop.Formula, error) {
	f := parse(raw)
	if err := s.checkSize(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *settings) checkSize(f *prop.Formula) error {
	if f.NbVars() > s.cfg.MaxVars {
		return fmt.Errorf("%s has %d variables, more than the limit of %d (see --max-vars)", f, f.NbVars(), s.cfg.MaxVars)
	}
	return nil
}
