// Package observability provides formatted output of domain objects for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-assistant/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintUser outputs the signed-in user.
func (p *Printer) PrintUser(user types.UserProfile) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", user.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", user.Email))
	if user.Age > 0 {
		sb.WriteString(fmt.Sprintf("Age:    %d\n", user.Age))
	}
	sb.WriteString(fmt.Sprintf("Gender: %s\n", user.Gender))
	if user.Job != "" {
		sb.WriteString(fmt.Sprintf("Job:    %s\n", user.Job))
	}
	if user.PhoneNumber != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", user.PhoneNumber))
	}
	p.printBox("USER", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPersonas outputs a persona list, default personas marked.
func (p *Printer) PrintPersonas(personas []types.Persona) {
	if len(personas) == 0 {
		p.printBox("PERSONAS", "(none)")
		return
	}

	var sb strings.Builder
	for i, persona := range personas {
		marker := " "
		if persona.IsDefault() {
			marker = "*"
		}
		state := "active"
		if !persona.IsActive {
			state = "inactive"
		}
		sb.WriteString(fmt.Sprintf("%s #%d  %s (%s)\n", marker, persona.ID, persona.Title, state))
		if persona.Description != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", persona.Description))
		}
		if !persona.LastModified.IsZero() {
			sb.WriteString(fmt.Sprintf("    modified %s\n", persona.LastModified.Format("2006-01-02 15:04")))
		}
		if i < len(personas)-1 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n* default persona")

	p.printBox(fmt.Sprintf("PERSONAS (%d)", len(personas)), sb.String())
}

// PrintMypage outputs the four my page collections.
func (p *Printer) PrintMypage(page types.Mypage) {
	var sb strings.Builder

	sb.WriteString("Education:\n")
	for _, e := range page.Educations {
		sb.WriteString(fmt.Sprintf("  • %s %s (%d - %d)", e.University, e.Major, e.EnrollmentYear, e.GraduationYear))
		if e.GPA != "" {
			sb.WriteString(fmt.Sprintf(" GPA %s", e.GPA))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Work experience:\n")
	for _, w := range page.WorkExperiences {
		sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", w.CompanyName, w.JobTitle, w.Period()))
	}

	sb.WriteString("Awards:\n")
	for _, a := range page.Awards {
		sb.WriteString(fmt.Sprintf("  • %s: %s (%d, %s)\n", a.CompetitionName, a.AwardTitle, a.AwardYear, a.AwardingOrganization))
	}

	sb.WriteString("Certifications:\n")
	for _, c := range page.Certifications {
		sb.WriteString(fmt.Sprintf("  • %s (%s, %s)", c.Name, c.ObtainedDate, c.IssuingOrganization))
		if score := strings.TrimSpace(c.Score + " " + c.Grade); score != "" {
			sb.WriteString(" " + score)
		}
		sb.WriteString("\n")
	}

	p.printBox("MY PAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintParsedDetail outputs a summary of a parsed resume.
func (p *Printer) PrintParsedDetail(detail types.ParsedResumeDetail) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Format:   %s\n", detail.ResumeFormat))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", detail.TargetRole))
	sb.WriteString(fmt.Sprintf("Headline: %s\n", detail.Headline))
	if len(detail.StrengthKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Strengths: %s\n", strings.Join(detail.StrengthKeywords, ", ")))
	}
	if len(detail.MainTechStack) > 0 {
		sb.WriteString(fmt.Sprintf("Tech:     %s\n", strings.Join(detail.MainTechStack, ", ")))
	}

	if len(detail.Projects) > 0 {
		sb.WriteString("\nProjects:\n")
		count := min(len(detail.Projects), maxItemsToShow)
		for i := 0; i < count; i++ {
			project := detail.Projects[i]
			sb.WriteString(fmt.Sprintf("  %s", project.ProjectName))
			if project.Start != "" || project.End != "" {
				sb.WriteString(fmt.Sprintf(" (%s ~ %s)", project.Start, project.End))
			}
			sb.WriteString("\n")
			for _, line := range strings.Split(project.KeyTasks, "\n") {
				if line != "" {
					sb.WriteString(fmt.Sprintf("    %s\n", line))
				}
			}
		}
		if len(detail.Projects) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(detail.Projects)-maxItemsToShow))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGeneratedResume outputs every item of a generated resume.
func (p *Printer) PrintGeneratedResume(resume types.GeneratedResume) {
	var sb strings.Builder
	if !resume.CreatedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Created: %s\n\n", resume.CreatedAt.Format("2006-01-02 15:04")))
	}
	for i, item := range resume.Items {
		sb.WriteString(item.Render())
		if i < len(resume.Items)-1 {
			sb.WriteString("\n\n")
		}
	}
	if len(resume.Items) == 0 {
		sb.WriteString("(no items)")
	}

	p.printBox(fmt.Sprintf("GENERATED RESUME %s", resume.ID), sb.String())
}
