package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/grantthrive/grantctl/internal/grant"
	"github.com/grantthrive/grantctl/internal/wizard"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func renderSubmission(m Model) string {
	var b strings.Builder

	verb := "Saving draft"
	if m.Intent == wizard.IntentPublish {
		verb = "Publishing"
	}

	switch {
	case m.Err != nil:
		b.WriteString(errorStyle.Render(crossMark + " " + m.Err.Error()))
	case m.Result != nil:
		b.WriteString(RenderNotice(m.Result.Notice()))
	default:
		b.WriteString(currentStepStyle.Render(currentSpinner(m.SpinnerFrame)+" ") +
			noticeStyle.Render(verb) + " " + headerStyle.Render(displayTitle(m.Title)))
		b.WriteString(mutedStyle.Render("  " + formatDuration(time.Since(m.StartTime))))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderHeader renders the step title, progress bar and time estimate.
func RenderHeader(s wizard.State) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Create New Grant"))
	b.WriteString(hintStyle.Render(fmt.Sprintf("  Step %d of %d: %s", s.Step, wizard.LastStep, s.Step.Title())))
	b.WriteString("\n")

	b.WriteString("  " + progressBar(s.Step.Completion(), 40))
	fmt.Fprintf(&b, " %d%% complete", s.Step.Completion())
	if mins := s.Step.RemainingMinutes(); mins > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  about %d min remaining", mins)))
	}
	b.WriteString("\n")

	for _, step := range wizard.Steps {
		icon, style := pending, sf(mutedStyle)
		switch {
		case step < s.Step:
			icon, style = checkMark, sf(okStyle)
		case step == s.Step:
			icon, style = currentSpinner(0), sf(currentStepStyle)
		}
		fmt.Fprintf(&b, "  %s %s\n", style(icon), style(step.Title()))
	}
	return b.String()
}

// RenderErrors lists validation errors in field order. It returns an empty
// string when errs is empty.
func RenderErrors(errs wizard.Errors) string {
	if errs.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(errorStyle.Bold(true).Render("  Please fix the following:"))
	b.WriteString("\n")
	for _, field := range errs.Fields() {
		fmt.Fprintf(&b, "  %s %s\n", errorStyle.Render(crossMark), errs[field])
	}
	return b.String()
}

// RenderNotice renders the outcome of the last submission.
func RenderNotice(n wizard.Notice) string {
	switch n.Kind {
	case wizard.NoticeSuccess:
		return okStyle.Render(checkMark + " " + n.Message)
	case wizard.NoticeError:
		return errorStyle.Render(crossMark + " " + n.Message)
	default:
		return ""
	}
}

// RenderTips renders the guidance shown beside a step.
func RenderTips(step wizard.Step) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("  Tips"))
	b.WriteString("\n")
	for _, tip := range step.Tips() {
		b.WriteString(mutedStyle.Render(tipMark + tip))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSummary renders the review of a Draft shown before publishing.
func RenderSummary(d grant.Draft) string {
	var b strings.Builder

	section := func(name string) {
		b.WriteString(sectionStyle.Render("  " + name))
		b.WriteString("\n")
	}
	row := func(label, value string) {
		if value == "" {
			value = mutedStyle.Render("(not set)")
		}
		fmt.Fprintf(&b, "    %-22s %s\n", label+":", value)
	}

	section(wizard.StepBasicDetails.Title())
	row("Title", d.Title)
	row("Category", string(d.Category))
	row("Required documents", joinDocuments(d.RequiredDocuments))

	section(wizard.StepFundingDates.Title())
	row("Total funding", formatAmount(d.TotalFunding))
	row("Application range", formatRange(d.MinApplicationAmount, d.MaxApplicationAmount))
	row("Applications open", dateString(d.ApplicationOpenDate))
	row("Applications close", dateString(d.ApplicationCloseDate))
	if d.AssessmentPeriod > 0 {
		row("Assessment period", fmt.Sprintf("%d weeks", d.AssessmentPeriod))
	}

	section(wizard.StepApplicationForm.Title())
	row("Custom questions", fmt.Sprintf("%d", len(d.CustomQuestions)))
	row("Standard sections", joinEnabled(map[string]bool{
		"Budget":      d.BudgetRequirements,
		"Timeline":    d.ProjectTimeline,
		"Impact":      d.ImpactMeasurement,
		"Partnership": d.PartnershipDetails,
	}))

	section(wizard.StepReviewPublish.Title())
	for _, r := range d.ReviewCommittee {
		fmt.Fprintf(&b, "    %s %s <%s> %s\n", okStyle.Render(checkMark), r.Name, r.Email, mutedStyle.Render(r.Role.Label()))
	}
	if len(d.ReviewCommittee) == 0 {
		fmt.Fprintf(&b, "    %s %s\n", errorStyle.Render(crossMark), "No reviewers assigned")
	}
	publish := "Submit for review"
	if d.AutoPublish {
		publish = "Publish immediately"
	}
	row("On publish", publish)

	return b.String()
}

// RenderFooter renders the key hints shown under a step.
func RenderFooter(s wizard.State) string {
	parts := []string{"session " + s.SessionID.String()[:8]}
	if s.Saving {
		parts = append(parts, currentSpinner(0)+" saving")
	}
	if s.Publishing {
		parts = append(parts, currentSpinner(0)+" publishing")
	}
	return statusLineStyle.Render("  "+strings.Join(parts, "  |  ")) + "\n"
}

func progressBar(pct, width int) string {
	pct = max(0, min(pct, 100))
	filled := width * pct / 100
	return barFilled.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled))
}

func currentSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

func displayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "untitled grant"
	}
	return title
}

func dateString(d grant.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func formatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	whole := fmt.Sprintf("%.0f", v)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return "$" + b.String()
}

func formatRange(lo, hi float64) string {
	switch {
	case lo == 0 && hi == 0:
		return ""
	case lo == 0:
		return "up to " + formatAmount(hi)
	case hi == 0:
		return "from " + formatAmount(lo)
	default:
		return formatAmount(lo) + " - " + formatAmount(hi)
	}
}

func joinDocuments(docs []grant.DocumentType) string {
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}

// joinEnabled lists the enabled keys in a fixed order.
func joinEnabled(flags map[string]bool) string {
	var out []string
	for _, k := range []string{"Budget", "Timeline", "Impact", "Partnership"} {
		if flags[k] {
			out = append(out, k)
		}
	}
	return strings.Join(out, ", ")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
