package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Pair", "Ratio", "Level"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Pair", "Ratio"})

	// Add matching row
	table.AddRow([]string{"primary/onPrimary", "4.61:1"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Add row with fewer columns (should be padded)
	table.AddRow([]string{"error/onError"})
	if len(table.rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 {
		t.Errorf("Expected row to be padded to 2 columns, got %d", len(table.rows[1]))
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}

	// Add row with more columns (should be truncated)
	table.AddRow([]string{"surface/onSurface", "12.63:1", "extra"})
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Pair", "Ratio", "Level"})
	table.AddRow([]string{"primary/onPrimary", "8.59:1", "AAA"})
	table.AddRow([]string{"error/onError", "4.61:1", "AA"})

	output := table.Render()

	for _, want := range []string{"Pair", "Ratio", "Level", "primary/onPrimary", "error/onError", "AAA"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q", want)
		}
	}

	lines := strings.Split(output, "\n")
	if len(lines) < 4 {
		t.Fatalf("Expected at least 4 lines, got %d", len(lines))
	}

	// Second line should be a separator with dashes.
	if !strings.Contains(lines[1], "---") {
		t.Errorf("Expected separator line with dashes, got: %q", lines[1])
	}

	// Separator width should match header width for aligned columns.
	if len(lines[1]) != len(lines[0]) {
		t.Errorf("Separator length (%d) should match header length (%d)", len(lines[1]), len(lines[0]))
	}
}

func TestTableRenderEmpty(t *testing.T) {
	table := &Table{
		headers: []string{},
		rows:    make([][]string, 0),
		padding: 2,
	}

	if output := table.Render(); output != "" {
		t.Errorf("Expected empty string for empty table, got: %q", output)
	}
}

func TestTableRenderNoRows(t *testing.T) {
	table := NewTable([]string{"Pair", "Ratio"})

	output := table.Render()
	if !strings.Contains(output, "Pair") {
		t.Error("Output should contain headers even without rows")
	}

	if lines := strings.Split(output, "\n"); len(lines) < 2 {
		t.Error("Expected at least header and separator lines")
	}
}

func TestTableColumnMaxWidthWraps(t *testing.T) {
	table := NewTable([]string{"Pair", "Detail"})
	table.SetColumnMaxWidth(1, 10)
	table.AddRow([]string{"primary/onPrimary", "a description long enough to need wrapping"})

	output := table.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	// Header + separator + multiple wrapped data lines.
	if len(lines) <= 3 {
		t.Errorf("Expected wrapped output across multiple lines, got %d lines", len(lines))
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"}, // Width less than string length
		{"", 5, "     "},
		{"x", 1, "x"},
	}

	for _, tt := range tests {
		result := padRight(tt.input, tt.width)
		if result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}

func TestPadRightWideRunes(t *testing.T) {
	// CJK runes occupy two terminal cells; padRight must measure cells,
	// not runes or bytes.
	result := padRight("色", 4)
	if result != "色  " {
		t.Errorf("padRight(%q, 4) = %q, want %q", "色", result, "色  ")
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  int // expected line count
	}{
		{name: "fits on one line", text: "short", width: 10, want: 1},
		{name: "wraps at word boundary", text: "one two three", width: 7, want: 2},
		{name: "breaks long word", text: "0123456789abcdef", width: 8, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := wrapText(tt.text, tt.width)
			if len(lines) != tt.want {
				t.Errorf("wrapText(%q, %d) = %d lines %v, want %d", tt.text, tt.width, len(lines), lines, tt.want)
			}
		})
	}
}
