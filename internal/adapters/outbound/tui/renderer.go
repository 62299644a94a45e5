package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sitelint/sitelint/internal/domain"
)

// maxWarningLines caps the rendered warning list; the remainder is
// summarized with a count.
const maxWarningLines = 20

// ── warm amber palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a finished audit for the terminal.
func RenderReport(res *domain.AuditResult) string {
	var b strings.Builder

	// ── Header ──
	grade := res.Grade()
	title := headerStyle.Render("sitelint")
	subtitle := dimStyle.Render("Site Health Score")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", res.Score))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Pages scanned"), dimStyle.Render(fmt.Sprintf("%d", res.PagesScanned)))
	if res.BaseURL != "" {
		fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Base URL"), dimStyle.Render(res.BaseURL))
	}
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("External links"), dimStyle.Render(fmt.Sprintf("%d unique", len(res.ExternalLinks))))
	b.WriteString("\n")

	renderTopPages(&b, res)

	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	renderIssues(&b, res)
	renderAdvice(&b, res)

	return b.String()
}

func renderTopPages(b *strings.Builder, res *domain.AuditResult) {
	if len(res.InboundLinks) == 0 {
		return
	}

	b.WriteString("  " + titleStyle.Render("Top linked pages") + "\n")
	ranks := make([]domain.PageRank, 0, len(res.InboundLinks))
	for p, c := range res.InboundLinks {
		ranks = append(ranks, domain.PageRank{Path: p, Count: c})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Count != ranks[j].Count {
			return ranks[i].Count > ranks[j].Count
		}
		return ranks[i].Path < ranks[j].Path
	})
	if len(ranks) > 10 {
		ranks = ranks[:10]
	}
	for _, rank := range ranks {
		fmt.Fprintf(b, "    %s %s\n",
			dimStyle.Render(fmt.Sprintf("%3d refs", rank.Count)),
			lipgloss.NewStyle().Foreground(fg).Render(rank.Path))
	}
	b.WriteString("\n")
}

func renderIssues(b *strings.Builder, res *domain.AuditResult) {
	total := len(res.Errors) + len(res.Warnings) + len(res.Infos)
	if total == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n\n")
		return
	}

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Issues"))
	b.WriteString("  ")
	if len(res.Errors) > 0 {
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", len(res.Errors))))
		b.WriteString("  ")
	}
	if len(res.Warnings) > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", len(res.Warnings))))
		b.WriteString("  ")
	}
	if len(res.Infos) > 0 {
		b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", len(res.Infos))))
	}
	b.WriteString("\n\n")

	for _, iss := range res.Errors {
		fmt.Fprintf(b, "    %s %s\n", errorTagStyle.Render("error"), dimStyle.Render(iss.Message))
	}

	shown := res.Warnings
	if len(shown) > maxWarningLines {
		shown = shown[:maxWarningLines]
	}
	for _, iss := range shown {
		fmt.Fprintf(b, "    %s %s\n", warnTagStyle.Render("warn "), dimStyle.Render(iss.Message))
	}
	if rest := len(res.Warnings) - len(shown); rest > 0 {
		fmt.Fprintf(b, "    %s\n", faintStyle.Render(fmt.Sprintf("… and %d more warnings", rest)))
	}

	for _, iss := range res.Infos {
		fmt.Fprintf(b, "    %s %s\n", infoTagStyle.Render("info "), dimStyle.Render(iss.Message))
	}
	b.WriteString("\n")
}

// advice maps issue codes to remediation hints; only hints whose code
// actually occurred are rendered.
var advice = []struct {
	code domain.IssueCode
	hint string
}{
	{domain.CodeDeadInternal, "Fix broken internal links immediately; they hurt both visitors and crawlers."},
	{domain.CodeMissingH1, "Ensure every page has exactly one H1 tag describing its content."},
	{domain.CodeOrphanPage, "Link to orphan pages from other parts of the site (blog index, sitemap)."},
	{domain.CodeHTMLExtension, "Update internal links to clean URLs (drop the .html suffix) to match server routing."},
	{domain.CodeDeadExternal, "Replace or remove dead external references."},
	{domain.CodeMissingSchema, "Add JSON-LD structured data so search engines understand each page."},
}

func renderAdvice(b *strings.Builder, res *domain.AuditResult) {
	if res.Score >= 100 {
		return
	}

	var lines []string
	for _, a := range advice {
		if res.HasIssue(a.code) {
			lines = append(lines, a.hint)
		}
	}
	if len(lines) == 0 {
		return
	}

	b.WriteString("  " + titleStyle.Render("Actionable advice") + "\n")
	for _, l := range lines {
		fmt.Fprintf(b, "    %s %s\n", passStyle.Render("→"), dimStyle.Render(l))
	}
	b.WriteString("\n")
}

// RenderHistory formats audit history for terminal output.
func RenderHistory(entries []domain.AuditEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No audit history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Audit History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Score)).
			Render(fmt.Sprintf("%d/100", e.Score))

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			scoreStyled,
			e.Grade,
		)

		if i > 0 {
			diff := e.Score - entries[i-1].Score
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}
