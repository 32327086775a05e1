package cli

import (
	"fmt"

	"github.com/crillab/proptab/prop"
	"github.com/crillab/proptab/render"
	"github.com/spf13/cobra"
)

func newTableCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table [flags] formula",
		Short: "Print the truth table of a formula.",
		Long: `Print the truth table of a formula.
Rows are ordered by the binary value of the assignment, the first variable in
alphabetical order being the most significant bit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := s.enumerable(args[0])
			if err != nil {
				return err
			}
			t, err := f.Table()
			if err != nil {
				return err
			}
			format := s.cfg.Format
			if cmd.Flags().Changed("format") {
				format = getString(cmd, "format")
			}
			switch format {
			case "text":
				return render.Text(cmd.OutOrStdout(), t, s.colored)
			case "yaml":
				doc := render.NewDocument(t)
				if getFlag(cmd, "forms") {
					if doc.DNF, err = f.DNF(); err != nil {
						return err
					}
					if doc.CNF, err = f.CNF(); err != nil {
						return err
					}
				}
				return render.YAML(cmd.OutOrStdout(), doc)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().String("format", "text", "output format: text or yaml")
	cmd.Flags().Bool("forms", false, "include the normal forms in yaml output")
	return cmd
}

func newFormCmd(s *settings, name, desc string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " formula",
		Short: "Print the " + desc + " of a formula.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := s.enumerable(args[0])
			if err != nil {
				return err
			}
			var form string
			if name == "dnf" {
				form, err = f.DNF()
			} else {
				form, err = f.CNF()
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), form)
			return nil
		},
	}
}

func newPostfixCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "postfix formula",
		Short: "Print the postfix form of a formula.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postfix, err := prop.Postfix(parse(args[0]).Expr())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), postfix)
			return nil
		},
	}
}
