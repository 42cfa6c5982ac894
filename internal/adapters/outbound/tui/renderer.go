package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/auditkraft/auditkraft/internal/domain"
)

// ── Claude-inspired warm palette ──
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

	opinionColors = map[domain.ComplianceOpinion]lipgloss.Color{
		domain.OpinionPass:        success,
		domain.OpinionConditional: warning,
		domain.OpinionFail:        danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a full audit report: score box, metric aggregates,
// failure breakdown, anomalies, and recommended actions.
func RenderReport(report *domain.AuditReport) string {
	var b strings.Builder

	opinion := report.Opinion
	color := opinionColors[opinion]

	title := headerStyle.Render("auditkraft")
	subtitle := dimStyle.Render("Audit Readiness")
	scoreLine := lipgloss.NewStyle().Bold(true).Foreground(color).
		Render(fmt.Sprintf("%.1f / 100", report.ReadinessScore))
	opinionLine := lipgloss.NewStyle().Bold(true).Foreground(color).
		Render(string(opinion))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreLine + "  " + opinionLine))
	b.WriteString("\n\n")

	s := report.Summary
	fmt.Fprintf(&b, "  %s %s\n\n",
		titleStyle.Render("Files"),
		dimStyle.Render(fmt.Sprintf("%d total, %d ok, %d failed", s.TotalFiles, s.SuccessCount, s.FailCount)))

	renderAggregates(&b, s.MetricAggregates)
	renderFailures(&b, s.FailureBreakdown)
	renderRisks(&b, s.TopRisks)
	renderAnomalies(&b, s.Anomalies)

	b.WriteString("  " + separatorLine + "\n\n")
	renderActions(&b, report.Actions)

	return b.String()
}

// RenderVerification renders a gate report line per gate plus triggered
// errors.
func RenderVerification(report domain.VerificationReport) string {
	var b strings.Builder

	b.WriteString("  " + titleStyle.Render("Gates") + "  " + dimStyle.Render(report.SpecID+" v"+report.Version) + "\n\n")
	for _, g := range report.Gates {
		var icon string
		switch g.Status {
		case domain.GatePass:
			icon = passStyle.Render("●")
		case domain.GateBlock:
			icon = failStyle.Render("●")
		default:
			icon = warnStyle.Render("○")
		}
		fmt.Fprintf(&b, "    %s %s %s\n", icon, padRight(g.Label, 32), dimStyle.Render(string(g.Status)))
	}
	b.WriteString("\n")

	if report.IsValid {
		b.WriteString("  " + passStyle.Render("Spec is valid.") + "\n")
	} else {
		for _, e := range report.Errors {
			fmt.Fprintf(&b, "    %s %s\n", errorTagStyle.Render("block"), dimStyle.Render(e))
		}
	}

	return b.String()
}

// RenderRepair summarizes a repair outcome: version transition and the
// newest history entry.
func RenderRepair(before, after domain.PipelineSpec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Repaired"),
		dimStyle.Render(fmt.Sprintf("%s: v%s → v%s", after.ID, before.Version, after.Version)))

	if n := len(after.RepairHistory); n > 0 {
		last := after.RepairHistory[n-1]
		fmt.Fprintf(&b, "    %s %s\n", warnTagStyle.Render("error"), dimStyle.Render(last.Error))
		fmt.Fprintf(&b, "    %s %s\n", infoTagStyle.Render("fix  "), dimStyle.Render(last.Fix))
	}

	return b.String()
}

// RenderHistory lists stored summary snapshots, newest last.
func RenderHistory(entries []domain.SummaryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No summary history yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Summary History") + "\n\n")
	for _, e := range entries {
		commit := ""
		if e.CommitHash != "" {
			commit = faintStyle.Render(" @" + shortHash(e.CommitHash))
		}
		fmt.Fprintf(&b, "    %s  %5.1f  %-12s %s%s\n",
			dimStyle.Render(e.Timestamp), e.ReadinessScore, e.Opinion,
			dimStyle.Render(fmt.Sprintf("%d files", e.TotalFiles)), commit)
	}
	return b.String()
}

func renderAggregates(b *strings.Builder, aggs map[string]domain.MetricAggregate) {
	if len(aggs) == 0 {
		return
	}
	b.WriteString("  " + titleStyle.Render("Metrics") + "\n")
	ids := make([]string, 0, len(aggs))
	for id := range aggs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		a := aggs[id]
		detail := fmt.Sprintf("%g %s over %d file(s)", a.Total, a.Unit, a.Count)
		if a.AnomaliesDetected > 0 {
			detail += warnStyle.Render(fmt.Sprintf("  %d anomalies", a.AnomaliesDetected))
		}
		fmt.Fprintf(b, "    %s  %s\n", padRight(MetricLabel(id), 28), dimStyle.Render(detail))
	}
	b.WriteString("\n")
}

func renderFailures(b *strings.Builder, breakdown map[string]int) {
	if len(breakdown) == 0 {
		return
	}
	b.WriteString("  " + titleStyle.Render("Failures") + "\n")
	cats := make([]string, 0, len(breakdown))
	for c := range breakdown {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if breakdown[cats[i]] != breakdown[cats[j]] {
			return breakdown[cats[i]] > breakdown[cats[j]]
		}
		return cats[i] < cats[j]
	})
	for _, c := range cats {
		fmt.Fprintf(b, "    %s %s %s\n", errorTagStyle.Render("fail "),
			padRight(c, 40), dimStyle.Render(fmt.Sprintf("×%d", breakdown[c])))
	}
	b.WriteString("\n")
}

func renderRisks(b *strings.Builder, risks []domain.RiskCount) {
	if len(risks) == 0 {
		return
	}
	b.WriteString("  " + titleStyle.Render("Top Risks") + "\n")
	for _, r := range risks {
		fmt.Fprintf(b, "    %s %s %s\n", warnTagStyle.Render("risk "),
			padRight(r.Risk, 40), dimStyle.Render(fmt.Sprintf("×%d", r.Count)))
	}
	b.WriteString("\n")
}

func renderAnomalies(b *strings.Builder, anomalies []string) {
	if len(anomalies) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s %s\n\n", titleStyle.Render("Anomaly Log"),
		dimStyle.Render(fmt.Sprintf("%d entries", len(anomalies))))
	for _, a := range anomalies {
		fmt.Fprintf(b, "    %s\n", faintStyle.Render(a))
	}
	b.WriteString("\n")
}

func renderActions(b *strings.Builder, acts []domain.Action) {
	if len(acts) == 0 {
		b.WriteString("  " + passStyle.Render("No remediation needed.") + "\n")
		return
	}
	b.WriteString("  " + titleStyle.Render("Actions") + "\n\n")
	ordered := append([]domain.Action(nil), acts...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return domain.PriorityRank(ordered[i].Priority) < domain.PriorityRank(ordered[j].Priority)
	})
	for _, a := range ordered {
		tag := infoTagStyle.Render(padRight(a.Type, 9))
		if a.Priority == domain.PriorityHigh {
			tag = errorTagStyle.Render(padRight(a.Type, 9))
		}
		fmt.Fprintf(b, "    %s %s\n", tag, dimStyle.Render("["+a.Topic+"] "+a.Description))
	}
}

// MetricLabel humanizes a camelCase metric-id for display:
// "energyConsumed" becomes "Energy Consumed".
func MetricLabel(id string) string {
	parts := camelcase.Split(id)
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
