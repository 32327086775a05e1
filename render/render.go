// Package render writes truth tables for humans and for other programs.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/crillab/proptab/prop"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
)

const sep = " | "

// Text writes t as a header line made of the variables and the expression, followed by one line per row.
// When colored is true, results are printed in green (1) or red (0).
func Text(w io.Writer, t prop.Table, colored bool) error {
	trueBit, falseBit := "1", "0"
	if colored {
		green, red := color.New(color.FgGreen, color.Bold), color.New(color.FgRed)
		green.EnableColor()
		red.EnableColor()
		trueBit, falseBit = green.Sprint("1"), red.Sprint("0")
	}
	header := strings.Join(append(append([]string{}, t.Vars...), t.Expr), sep)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("could not write table: %v", err)
	}
	cols := make([]string, len(t.Vars)+1)
	for _, row := range t.Rows {
		for i, b := range row.Assignment() {
			cols[i] = bit(b)
		}
		if row.Result() {
			cols[len(t.Vars)] = trueBit
		} else {
			cols[len(t.Vars)] = falseBit
		}
		if _, err := fmt.Fprintln(w, strings.Join(cols, sep)); err != nil {
			return fmt.Errorf("could not write table: %v", err)
		}
	}
	return nil
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// A Document is the serializable view of a formula: its table and, optionally, its normal forms.
type Document struct {
	Expr string   `yaml:"expr"`
	Vars []string `yaml:"vars"`
	Rows [][]int  `yaml:"rows,flow"`
	DNF  string   `yaml:"dnf,omitempty"`
	CNF  string   `yaml:"cnf,omitempty"`
}

// NewDocument returns the document describing t.
func NewDocument(t prop.Table) Document {
	doc := Document{Expr: t.Expr, Vars: t.Vars, Rows: make([][]int, len(t.Rows))}
	if doc.Vars == nil {
		doc.Vars = []string{}
	}
	for i, row := range t.Rows {
		doc.Rows[i] = row.Bits()
	}
	return doc
}

// YAML writes doc as a YAML document.
func YAML(w io.Writer, doc Document) error {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %v", doc.Expr, err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("could not write YAML output: %v", err)
	}
	return nil
}

// Forms writes the principal normal forms of a formula, one per line.
func Forms(w io.Writer, dnf, cnf string) error {
	_, err := fmt.Fprintf(w, "DNF: %s\nCNF: %s\n", dnf, cnf)
	return err
}
