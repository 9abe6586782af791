package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"#", "Correct", "Accuracy"}
	rows := [][]string{
		{"1", "7", "70.0%"},
		{"12", "10", "100.0%"},
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != " #  Correct  Accuracy" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != " 1        7     70.0%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "12       10    100.0%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableTrimsLeftAlignedTail(t *testing.T) {
	lines := formatTable([]string{"Expr", "Op"}, [][]string{{"8 - 2", "sub"}, {"1 + 1", "add"}}, nil)
	if lines[0] != "Expr   Op" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "8 - 2  sub" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
