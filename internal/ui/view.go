package ui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"fstats/internal/domain"
	"fstats/internal/state"
)

const barWidth = 24

type uiStyles struct {
	headerStyle lipgloss.Style
	pathStyle   lipgloss.Style
	mutedStyle  lipgloss.Style
	statusStyle lipgloss.Style
	warnStyle   lipgloss.Style
	sizeBar     lipgloss.Style
	filesBar    lipgloss.Style
	panelBorder lipgloss.Style
}

func stylesFor(theme string) uiStyles {
	if strings.ToLower(theme) == "light" {
		return uiStyles{
			headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
			pathStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
			mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
			warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
			sizeBar:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			filesBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("90")),
			panelBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		}
	}
	return uiStyles{
		headerStyle: lipgloss.NewStyle().Bold(true),
		pathStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		sizeBar:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		filesBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		panelBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (model Model) View() string {
	if model.snapshot.Quitting {
		return ""
	}
	header := renderHeader(model)
	rule := model.styles.mutedStyle.Render(strings.Repeat("─", max(model.width, 1)))
	var body string
	if model.snapshot.ShowHelp {
		body = renderHelp(model)
	} else {
		body = renderRows(model)
	}
	return strings.Join([]string{header, rule, body, renderStatus(model), renderFooter(model)}, "\n")
}

func renderHeader(model Model) string {
	snapshot := model.snapshot
	status := "IDLE"
	if snapshot.Scanning {
		frames := spinner.MiniDot.Frames
		status = frames[snapshot.Ticks%len(frames)] + " SCANNING"
	}
	left := model.styles.headerStyle.Render("fstats") + "  " + snapshot.Config.RootPath
	return padLine(left, model.styles.statusStyle.Render(status), model.width)
}

func renderRows(model Model) string {
	snapshot := model.snapshot
	height := contentHeight(model.height)
	lines := make([]string, 0, height)
	for _, row := range snapshot.VisibleRows() {
		lines = append(lines, renderRow(model, row)...)
	}
	if len(lines) == 0 {
		message := "No files counted yet."
		if !snapshot.Scanning {
			message = "No files matched."
		}
		lines = append(lines, model.styles.mutedStyle.Render(message))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderRow produces state.ItemHeight lines for one folder.
func renderRow(model Model, row state.Row) []string {
	snapshot := model.snapshot
	sizePct := snapshot.SizePercent(row)
	filesPct := snapshot.FilesPercent(row)
	lines := []string{
		model.styles.pathStyle.Render(rowLabel(snapshot.Config.RootPath, row.Path)),
		fmt.Sprintf("  size  %10s %s %5.1f%%", humanize.Bytes(row.Stat.Size), model.styles.sizeBar.Render(percentBar(sizePct, barWidth)), sizePct),
		fmt.Sprintf("  files %10s %s %5.1f%%", humanize.Comma(int64(row.Stat.Files)), model.styles.filesBar.Render(percentBar(filesPct, barWidth)), filesPct),
		"",
	}
	return lines[:state.ItemHeight]
}

func renderHelp(model Model) string {
	panel := model.styles.panelBorder.Render(model.help.View(model.keys))
	lines := strings.Split(panel, "\n")
	height := contentHeight(model.height)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderStatus(model Model) string {
	snapshot := model.snapshot
	if snapshot.Err != "" {
		return model.styles.warnStyle.Render(trimStatus("Error: "+snapshot.Err, model.width))
	}
	totals := fmt.Sprintf("%s in %s files", humanize.Bytes(snapshot.Totals.Size), humanize.Comma(int64(snapshot.Totals.Files)))
	var status string
	if snapshot.Scanning {
		status = fmt.Sprintf("%s  %s", snapshot.FolderName, totals)
	} else {
		status = fmt.Sprintf("Scanned in %s  %s", formatElapsed(snapshot.ScanTime), totals)
	}
	return model.styles.mutedStyle.Render(trimStatus(status, model.width))
}

func renderFooter(model Model) string {
	cfg := model.snapshot.Config
	left := fmt.Sprintf("Sort: %s  Depth: %d  Ignores: %s  Hidden: %s%s",
		strings.ToUpper(string(model.snapshot.Sort)), cfg.Depth,
		onOff(cfg.RespectIgnoreFiles), onOff(cfg.IncludeHidden), filterSummary(cfg.Filters))
	return model.styles.mutedStyle.Render(padLine(left, "? help  q quit", model.width))
}

func rowLabel(root, key string) string {
	if key == "" {
		return root
	}
	return filepath.Join(filepath.Base(root), filepath.FromSlash(key))
}

func filterSummary(filters []domain.Filter) string {
	if len(filters) == 0 {
		return ""
	}
	parts := make([]string, 0, len(filters))
	for _, filter := range filters {
		parts = append(parts, filter.String())
	}
	return "  Filters: " + strings.Join(parts, ",")
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func formatElapsed(elapsed time.Duration) string {
	if elapsed < time.Second {
		return elapsed.Round(time.Millisecond).String()
	}
	return elapsed.Round(10 * time.Millisecond).String()
}

func percentBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(percent / 100 * float64(width)))
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", space) + right
}

func trimStatus(message string, width int) string {
	limit := width - 1
	if width <= 0 || limit <= 3 || lipgloss.Width(message) <= limit {
		return message
	}
	return truncate.StringWithTail(message, uint(limit), "...")
}
