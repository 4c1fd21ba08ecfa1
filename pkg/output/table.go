package output

import (
	"fmt"
	"strings"

	"github.com/ajxudir/depgroups/pkg/utils"
)

// ungroupedLabel is the group column value for dependencies without a group.
const ungroupedLabel = "(ungrouped)"

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
//   - hidden: Whether this column should be excluded from output
type Column struct {
	Header string
	Width  int
	hidden bool
}

// Table provides a table formatter with dynamic column widths.
// It handles Unicode-aware width calculations and consistent formatting.
type Table struct {
	columns   []Column
	rows      [][]string
	separator string
}

// NewTable creates a new table formatter and returns a pointer to it.
//
// Returns:
//   - *Table: A new table instance ready for column configuration
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// AddColumn adds a column with the given header and returns the table.
//
// Parameters:
//   - header: The text to display in the column header
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
	})
	return t
}

// AddConditionalColumn adds a column with configurable visibility and returns the table.
//
// This is useful for columns that should only appear when certain data
// exists, such as a PREVIOUS column that's hidden when no dependency
// carries a previous version.
//
// Parameters:
//   - header: The text to display in the column header
//   - visible: Whether the column should be visible
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddConditionalColumn(header string, visible bool) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		hidden: !visible,
	})
	return t
}

// AddRow appends a row and grows column widths to fit its values.
//
// Parameters:
//   - values: One value per column, in column order
func (t *Table) AddRow(values ...string) {
	for i, val := range values {
		if i >= len(t.columns) {
			break
		}
		t.columns[i].Width = utils.Max(t.columns[i].Width, utils.DisplayWidth(val))
	}
	t.rows = append(t.rows, values)
}

// Render writes the header and all rows as aligned lines.
//
// Hidden columns are skipped entirely.
//
// Returns:
//   - string: The rendered table, trailing newline included
func (t *Table) Render() string {
	var sb strings.Builder

	header := make([]string, 0, len(t.columns))
	for _, col := range t.columns {
		if col.hidden {
			continue
		}
		header = append(header, utils.ToWidth(col.Header, col.Width))
	}
	sb.WriteString(strings.TrimRight(strings.Join(header, t.separator), " "))
	sb.WriteString("\n")

	for _, row := range t.rows {
		cells := make([]string, 0, len(row))
		for i, val := range row {
			if i >= len(t.columns) || t.columns[i].hidden {
				continue
			}
			cells = append(cells, utils.ToWidth(val, t.columns[i].Width))
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, t.separator), " "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeTable renders the result as an aligned terminal table.
//
// Groups appear in declaration order, each dependency on its own row;
// groups that matched nothing render a single "-" row so misconfigured
// groups stay visible. Ungrouped dependencies follow under "(ungrouped)".
func (f *Formatter) writeTable(result *Result) error {
	showPrevious := false
	for _, group := range result.Groups {
		for _, d := range group.Dependencies {
			if d.PreviousVersion != "" {
				showPrevious = true
			}
		}
	}
	for _, d := range result.Ungrouped {
		if d.PreviousVersion != "" {
			showPrevious = true
		}
	}

	table := NewTable().
		AddColumn("GROUP").
		AddColumn("DEPENDENCY").
		AddColumn("VERSION").
		AddConditionalColumn("PREVIOUS", showPrevious)

	grouped := 0
	for _, group := range result.Groups {
		if len(group.Dependencies) == 0 {
			table.AddRow(group.Name, "-", "-", "")
			continue
		}
		for _, d := range group.Dependencies {
			table.AddRow(group.Name, d.Name, valueOrDash(d.Version), d.PreviousVersion)
			grouped++
		}
	}
	for _, d := range result.Ungrouped {
		table.AddRow(ungroupedLabel, d.Name, valueOrDash(d.Version), d.PreviousVersion)
	}

	if _, err := fmt.Fprint(f.writer, table.Render()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(f.writer, "\n%d grouped, %d ungrouped across %d groups\n",
		grouped, len(result.Ungrouped), len(result.Groups))
	return err
}

// valueOrDash substitutes "-" for empty display values.
func valueOrDash(val string) string {
	if strings.TrimSpace(val) == "" {
		return "-"
	}
	return val
}
