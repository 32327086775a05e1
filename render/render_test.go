package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/crillab/proptab/prop"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func table(t *testing.T, expr string) prop.Table {
	t.Helper()
	tab, err := prop.New(expr).Table()
	if err != nil {
		t.Fatalf("could not compute table of %q: %v", expr, err)
	}
	return tab
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, table(t, "A→B"), false); err != nil {
		t.Fatalf("could not render table: %v", err)
	}
	const expected = `A | B | A→B
0 | 0 | 1
0 | 1 | 1
1 | 0 | 0
1 | 1 | 1
`
	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestTextConstant(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, table(t, "1∧0"), false); err != nil {
		t.Fatalf("could not render table: %v", err)
	}
	if buf.String() != "1∧0\n0\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestTextColored(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, table(t, "A∨¬A"), true); err != nil {
		t.Fatalf("could not render table: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if strings.Contains(lines[0], "\x1b[") {
		t.Errorf("header should not be colored: %q", lines[0])
	}
	for _, line := range lines[1:] {
		if !strings.Contains(line, "\x1b[") {
			t.Errorf("result should be colored: %q", line)
		}
	}
}

func TestYAML(t *testing.T) {
	doc := NewDocument(table(t, "A∧B"))
	doc.DNF = "(A∧B)"
	var buf bytes.Buffer
	if err := YAML(&buf, doc); err != nil {
		t.Fatalf("could not render document: %v", err)
	}
	var got Document
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("could not read back document %q: %v", buf.String(), err)
	}
	expected := Document{
		Expr: "A∧B",
		Vars: []string{"A", "B"},
		Rows: [][]int{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 1}},
		DNF:  "(A∧B)",
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("unexpected document (-want +got):\n%s", diff)
	}
	if strings.Contains(buf.String(), "cnf") {
		t.Errorf("empty CNF should be omitted:\n%s", buf.String())
	}
}

func TestForms(t *testing.T) {
	var buf bytes.Buffer
	if err := Forms(&buf, "(A∧B)", prop.Verum); err != nil {
		t.Fatalf("could not render forms: %v", err)
	}
	if expected := "DNF: (A∧B)\nCNF: ⊤\n"; buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
