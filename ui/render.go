package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"termtools/models"
	"termtools/monitor"
)

// Renderer draws styled tables and panels to one output stream. It holds no
// mutable state beyond the stream and never mutates what it is given. Every
// component that needs output gets a Renderer passed in explicitly.
type Renderer struct {
	out   io.Writer
	width int
}

// New builds a Renderer on out, sizing panels to the terminal when out is
// one.
func New(out io.Writer) *Renderer {
	width := 100
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 40 {
			width = w
		}
	}
	return &Renderer{out: out, width: width}
}

// Dashboard draws the full interactive screen: stats and controls side by
// side, the process table, and the control-state summary bar.
func (r *Renderer) Dashboard(view []models.ProcessRecord, stats models.SystemStats, state monitor.ControlState) {
	r.clear()

	top := lipgloss.JoinHorizontal(lipgloss.Top, r.statsPanel(stats), r.controlsPanel())
	fmt.Fprintln(r.out, top)
	fmt.Fprintln(r.out, r.processTable(view))
	fmt.Fprintln(r.out, r.statusBar(state))
}

// Compact draws the smaller live-mode screen.
func (r *Renderer) Compact(view []models.ProcessRecord, stats models.SystemStats, elapsed time.Duration) {
	r.clear()

	line := fmt.Sprintf("CPU: %.1f%% | MEM: %.1f%% | PROC: %d | TIME: %ds",
		stats.CPUPercent, stats.MemoryPercent, stats.ProcessCount, int(elapsed.Seconds()))
	fmt.Fprintln(r.out, bluePanel.Render(titleStyle.Render("System Stats")+"\n"+line))

	header := fmt.Sprintf("%-7s %-16s %7s %7s %9s", "PID", "NAME", "CPU%", "MEM%", "MEM(MB)")
	rows := headerStyle.Render(header)
	for _, rec := range view {
		rows += "\n" + fmt.Sprintf("%-7d %-16s %s %s %9.0f",
			rec.PID,
			truncate(rec.Name, 15),
			procUsageStyle(rec.CPUPercent).Render(fmt.Sprintf("%7.1f", rec.CPUPercent)),
			procUsageStyle(rec.MemoryPercent).Render(fmt.Sprintf("%7.1f", rec.MemoryPercent)),
			rec.MemoryMB(),
		)
	}
	fmt.Fprintln(r.out, rows)
}

// Notice prints a one-line positive/neutral message.
func (r *Renderer) Notice(msg string) {
	fmt.Fprintln(r.out, noticeStyle.Render(msg))
}

// Warning prints a one-line problem message.
func (r *Renderer) Warning(msg string) {
	fmt.Fprintln(r.out, warnStyle.Render(msg))
}

// Prompt prints an input label without a trailing newline.
func (r *Renderer) Prompt(label string) {
	fmt.Fprint(r.out, promptStyle.Render(label+": "))
}

func (r *Renderer) clear() {
	fmt.Fprint(r.out, "\033[2J\033[H")
}

func (r *Renderer) processTable(view []models.ProcessRecord) string {
	header := fmt.Sprintf("%-8s %-22s %-15s %7s %9s %11s %-10s",
		"PID", "NAME", "USER", "CPU%", "MEM%", "MEM(MB)", "STATUS")

	body := headerStyle.Render(header)
	for _, rec := range view {
		body += "\n" + fmt.Sprintf("%-8d %-22s %-15s %s %s %11.1f %s",
			rec.PID,
			truncate(rec.Name, 21),
			truncate(rec.Owner, 15),
			procUsageStyle(rec.CPUPercent).Render(fmt.Sprintf("%7.1f", rec.CPUPercent)),
			procUsageStyle(rec.MemoryPercent).Render(fmt.Sprintf("%9.1f", rec.MemoryPercent)),
			rec.MemoryMB(),
			statusStyle(rec.Status).Render(rec.Status.String()),
		)
	}

	return bluePanel.Render(titleStyle.Render("Running Processes") + "\n" + body)
}

func (r *Renderer) statsPanel(stats models.SystemStats) string {
	body := titleStyle.Render("System Overview") + "\n\n"
	body += fmt.Sprintf("CPU:     %s %5.1f%%\n", bar(stats.CPUPercent), stats.CPUPercent)
	body += fmt.Sprintf("Memory:  %s %5.1f%% (%.1f/%.1f GB)\n",
		bar(stats.MemoryPercent), stats.MemoryPercent,
		gb(stats.MemoryUsed), gb(stats.MemoryTotal))
	body += fmt.Sprintf("Disk:    %s %5.1f%% (%.1f/%.1f GB)\n",
		bar(stats.DiskPercent), stats.DiskPercent,
		gb(stats.DiskUsed), gb(stats.DiskTotal))
	body += fmt.Sprintf("\nProcesses: %d\n", stats.ProcessCount)
	body += "Booted:    " + stats.BootTime.Format("2006-01-02 15:04:05")
	return bluePanel.Render(body)
}

func (r *Renderer) controlsPanel() string {
	body := titleStyle.Render("Controls") + "\n\n"
	for _, c := range [][2]string{
		{"c", "Sort by CPU"},
		{"m", "Sort by Memory"},
		{"n", "Sort by Name"},
		{"p", "Sort by PID"},
		{"r", "Reverse sort order"},
		{"f", "Filter by name"},
		{"u", "Toggle user processes only"},
		{"k", "Kill process"},
		{"q", "Quit"},
	} {
		body += goodStyle.Render(c[0]) + " - " + c[1] + "\n"
	}
	return greenPanel.Render(body)
}

func (r *Renderer) statusBar(state monitor.ControlState) string {
	dir := "↑"
	if state.SortDescending {
		dir = "↓"
	}
	filter := state.NameFilter
	if filter == "" {
		filter = "None"
	}
	owner := "No"
	if state.OwnerOnly {
		owner = "Yes"
	}
	line := fmt.Sprintf("Sort: %s (%s) | Filter: %s | User only: %s",
		state.SortKey, dir, filter, owner)
	width := r.width - 4
	if width < len(line) {
		width = len(line)
	}
	return greenPanel.Width(width).Render(noticeStyle.Bold(true).Render(line))
}

// Menu draws a numbered option list used by the launcher and tool menus.
func (r *Renderer) Menu(title string, entries [][2]string) {
	body := titleStyle.Render(title) + "\n"
	for _, e := range entries {
		body += "\n" + goodStyle.Render(e[0]) + " - " + e[1]
	}
	fmt.Fprintln(r.out, greenPanel.Render(body))
}

func gb(b uint64) float64 {
	return float64(b) / (1024 * 1024 * 1024)
}

func mb(b uint64) float64 {
	return float64(b) / (1024 * 1024)
}
