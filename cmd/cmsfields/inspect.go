package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/goliatone/go-cmsfields/pkg/orchestrator"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func runInspect(ctx context.Context, a *app, args []string) error {
	fs, common := a.newFlagSet("inspect")
	showFields := fs.Bool("fields", false, "list each page's fields")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("inspect: at least one page is required")
	}
	if err := a.setup(common); err != nil {
		return err
	}

	orch := a.orchestrator()
	rows := make([][]string, 0, fs.NArg())
	failed := 0
	var details []string
	for _, arg := range fs.Args() {
		src, err := parseSource(arg)
		if err != nil {
			return err
		}
		report, err := orch.Inspect(ctx, orchestrator.Request{Source: src})
		if err != nil {
			failed++
			rows = append(rows, []string{arg, "-", "-", "-", "-", err.Error()})
			continue
		}
		status := "ok"
		if !report.Ready() {
			failed++
			status = "missing-element"
		}
		rows = append(rows, []string{
			arg,
			strconv.Itoa(report.Fields.Len()),
			yesNo(report.PanelFound),
			yesNo(report.TriggerFound),
			yesNo(report.Visible),
			status,
		})
		if *showFields {
			details = append(details, fieldLines(arg, report)...)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("PAGE", "FIELDS", "PANEL", "TRIGGER", "VISIBLE", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 5 && row >= 0 && row < len(rows) && rows[row][5] != "ok":
				return errorStyle
			default:
				return cellStyle
			}
		})
	fmt.Fprintln(a.stdout, t.Render())
	for _, line := range details {
		fmt.Fprintln(a.stdout, line)
	}

	if failed > 0 {
		return fmt.Errorf("inspect: %d of %d pages not ready", failed, len(rows))
	}
	return nil
}

func fieldLines(page string, report orchestrator.Report) []string {
	lines := []string{mutedStyle.Render(page)}
	for _, field := range report.Fields.Fields() {
		lines = append(lines, fmt.Sprintf("  %s (%s) = %s", field.Name, field.Value.Kind(), field.Value.String()))
	}
	return lines
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
