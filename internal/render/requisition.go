package render

import (
	"fmt"
	"strings"

	"github.com/MEKXH/requisition/internal/requisition"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// NotAvailable is shown in place of a missing approval reference.
const NotAvailable = "not available"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#8E4EC6")). // Purple
			Padding(0, 1)

	approvedColor    = lipgloss.Color("#2E8B57") // SeaGreen
	pendingColor     = lipgloss.Color("#D4A017")
	notApprovedColor = lipgloss.Color("#C0392B")
)

// Money formats an amount with two decimals.
func Money(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// Reference returns the approval reference or NotAvailable.
func Reference(r requisition.Requisition) string {
	if ref, ok := r.Reference(); ok && r.Status == requisition.StatusApproved {
		return ref
	}
	return NotAvailable
}

// Header renders a section title.
func Header(title string) string {
	return headerStyle.Render(title)
}

// StatusLabel colors a status for terminal output.
func StatusLabel(status requisition.Status) string {
	color := pendingColor
	switch status {
	case requisition.StatusApproved:
		color = approvedColor
	case requisition.StatusNotApproved:
		color = notApprovedColor
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(status))
}

// Detail renders one requisition as labelled lines.
func Detail(r requisition.Requisition, symbol string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Date: %s\n", r.Date)
	fmt.Fprintf(&sb, "Requisition ID: %s\n", r.ID)
	fmt.Fprintf(&sb, "Staff ID: %s\n", r.StaffID)
	fmt.Fprintf(&sb, "Staff name: %s\n", r.StaffName)
	fmt.Fprintf(&sb, "Total: %s\n", Money(symbol, r.Total))
	fmt.Fprintf(&sb, "Status: %s\n", StatusLabel(r.Status))
	fmt.Fprintf(&sb, "Approval Reference Number: %s\n", Reference(r))
	return sb.String()
}

// Outcome renders the result of a submission: total, status and reference.
func Outcome(r requisition.Requisition, symbol string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total: %s\n", Money(symbol, r.Total))
	fmt.Fprintf(&sb, "Status: %s\n", StatusLabel(r.Status))
	fmt.Fprintf(&sb, "Approval Reference Number: %s\n", Reference(r))
	return sb.String()
}

// Table renders requisitions as an aligned table. Columns grow to fit their
// widest cell so no field is truncated.
func Table(records []requisition.Requisition, symbol string) string {
	titles := []string{"ID", "DATE", "STAFF ID", "STAFF NAME", "ITEMS", "TOTAL", "STATUS", "APPROVAL REF"}

	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, table.Row{
			r.ID,
			r.Date,
			r.StaffID,
			r.StaffName,
			fmt.Sprintf("%d", len(r.Items)),
			Money(symbol, r.Total),
			string(r.Status),
			Reference(r),
		})
	}

	columns := make([]table.Column, len(titles))
	for i, title := range titles {
		width := lipgloss.Width(title)
		for _, row := range rows {
			width = max(width, lipgloss.Width(row[i]))
		}
		columns[i] = table.Column{Title: title, Width: width}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Foreground(lipgloss.Color("#8E4EC6")).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithStyles(styles),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+3),
	)
	return t.View()
}
