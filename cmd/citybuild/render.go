package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/solver-pnw/internal/models"
	"github.com/napolitain/solver-pnw/internal/solver/city"
)

var (
	colorHeader = lipgloss.Color("#fe8019")
	colorDim    = lipgloss.Color("#928374")

	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)

var groupOrder = []models.Group{
	models.GroupMilitary,
	models.GroupPower,
	models.GroupCivil,
	models.GroupCommerce,
	models.GroupRaw,
	models.GroupManufacturing,
}

// isTTY reports whether w is an interactive terminal
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// renderBox wraps content in a rounded box on terminals and leaves it
// plain elsewhere
func renderBox(w io.Writer, title, content string) string {
	if !isTTY(w) {
		return strings.ToUpper(title) + "\n" + content + "\n"
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		PaddingLeft(2).
		PaddingRight(2)
	return box.Render(styleHeader.Render(strings.ToUpper(title))+"\n\n"+content) + "\n"
}

func printPlan(w io.Writer, in *buildInput, res *city.Result) {
	titleColor := color.New(color.FgCyan, color.Bold)
	plan := res.Plan

	title := "Build plan"
	if in.cityName != "" {
		title = fmt.Sprintf("Build plan for %s", in.cityName)
	}
	titleColor.Fprintf(w, "\n🏙  %s\n\n", title)

	caps := city.ModifiersFor(in.nation.Projects)
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Group", "Improvement", "Key", "Count", "Cap"}),
	)
	for _, g := range groupOrder {
		for _, imp := range models.ImprovementsIn(g) {
			n := plan.Counts.Get(imp)
			if n == 0 {
				continue
			}
			_ = table.Append([]string{
				string(g),
				imp.Label(),
				imp.Key(),
				fmt.Sprintf("%d", n),
				fmt.Sprintf("%d", caps.Cap(imp, plan.ImpTotal)),
			})
		}
	}
	_ = table.Render()
	fmt.Fprintln(w)

	fmt.Fprint(w, renderBox(w, "Summary", planSummary(in, res)))
	printFindings(w, res.Report)
}

func planSummary(in *buildInput, res *city.Result) string {
	plan := res.Plan
	env := res.Environment
	inc := res.Income

	lines := []string{
		fmt.Sprintf("Infrastructure  %.0f (land %.0f, %s)", in.city.Infrastructure, in.city.Land, continentName(in.city.Continent)),
		fmt.Sprintf("Slots           %d used / %d total (%d free)", plan.Used(), plan.ImpTotal, plan.Free()),
		fmt.Sprintf("Military        %s", res.Role),
		fmt.Sprintf("Commerce        %d%%", inc.CommercePercent),
		fmt.Sprintf("Income          $%.0f/day (base $%.0f)", inc.Total, inc.Base),
		fmt.Sprintf("Environment     pollution %.0f, disease %.1f%%, crime %.1f%%", env.Pollution, env.Disease, env.Crime),
	}
	if res.UraniumNeeded > 0 {
		lines = append(lines, fmt.Sprintf("Uranium         %d mines needed, %d planned", res.UraniumNeeded, plan.Counts.UraniumMine))
	}
	for _, r := range models.AllResourceTypes() {
		if v, ok := inc.Production[r]; ok {
			lines = append(lines, fmt.Sprintf("Production      %s %.0f/day", r, v))
		}
	}
	return strings.Join(lines, "\n")
}

func continentName(c models.Continent) string {
	if c == "" {
		return "unknown continent"
	}
	return strings.ToUpper(string(c))
}

func printFindings(w io.Writer, r *city.Report) {
	errorColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow)
	infoColor := color.New(color.Faint)

	for _, f := range r.Errors {
		errorColor.Fprintf(w, "✗ [%s] %s\n", f.Stage, f.Message)
	}
	for _, f := range r.Warnings {
		warnColor.Fprintf(w, "⚠ [%s] %s\n", f.Stage, f.Message)
	}
	for _, f := range r.Info {
		infoColor.Fprintf(w, "• [%s] %s\n", f.Stage, f.Message)
	}
}

// printStockpileTable prints one row per commodity with the given columns
func printStockpileTable(w io.Writer, header []string, columns ...*models.Stockpile) {
	table := tablewriter.NewTable(w, tablewriter.WithHeader(header))
	for _, c := range models.AllCommodities() {
		row := []string{string(c)}
		for _, s := range columns {
			row = append(row, formatAmount(s.Get(c)))
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
