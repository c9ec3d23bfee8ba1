package types

import (
	"strings"
)

const (
	keyTaskBullet   = "• "
	techStackPrefix = "기술 스택: "
	techStackSep    = ", "
)

// ParsedResumeDetail is the structured content extracted from an uploaded resume.
// Every field is populated: strings default to "" and lists to empty slices.
type ParsedResumeDetail struct {
	ResumeFormat       string               `json:"resume_format"`
	TargetRole         string               `json:"target_role"`
	Headline           string               `json:"headline"`
	StrengthKeywords   []string             `json:"strength_keywords"`
	Projects           []ProjectHistoryItem `json:"projects"`
	CollaborationStyle string               `json:"collaboration_style"`
	MainTechStack      []string             `json:"main_tech_stack"`
	FutureGoal         string               `json:"future_goal"`
}

// ProjectHistoryItem is one project as edited in the detail form. KeyTasks holds the
// bullets and tech stack folded into one text field by JoinKeyTasks.
type ProjectHistoryItem struct {
	ID          string `json:"id"`
	ProjectName string `json:"project_name"`
	Start       string `json:"start"`
	End         string `json:"end"`
	KeyTasks    string `json:"key_tasks"`
}

// ParsePdfResponse is the wire response of POST /parse-pdf/. Any field may be absent.
type ParsePdfResponse struct {
	ResumeFormat       *string          `json:"resume_format,omitempty"`
	TargetRole         *string          `json:"target_role,omitempty"`
	Headline           *string          `json:"headline,omitempty"`
	StrengthKeywords   []string         `json:"strength_keywords,omitempty"`
	Projects           []ProjectPayload `json:"projects,omitempty"`
	CollaborationStyle *string          `json:"collaboration_style,omitempty"`
	MainTechStack      []string         `json:"main_tech_stack,omitempty"`
	FutureGoal         *string          `json:"future_goal,omitempty"`
}

// ProjectPayload is a project entry of the parse response.
type ProjectPayload struct {
	Start     *string  `json:"start,omitempty"`
	End       *string  `json:"end,omitempty"`
	Title     *string  `json:"title,omitempty"`
	Bullets   []string `json:"bullets,omitempty"`
	TechStack []string `json:"tech_stack,omitempty"`
}

// ToDetail maps the response, defaulting every absent field to its empty form.
// newID supplies the local id of each project entry.
func (r ParsePdfResponse) ToDetail(newID func() string) ParsedResumeDetail {
	projects := make([]ProjectHistoryItem, 0, len(r.Projects))
	for _, p := range r.Projects {
		projects = append(projects, ProjectHistoryItem{
			ID:          newID(),
			ProjectName: deref(p.Title),
			Start:       deref(p.Start),
			End:         deref(p.End),
			KeyTasks:    JoinKeyTasks(p.Bullets, p.TechStack),
		})
	}
	return ParsedResumeDetail{
		ResumeFormat:       deref(r.ResumeFormat),
		TargetRole:         deref(r.TargetRole),
		Headline:           deref(r.Headline),
		StrengthKeywords:   orEmpty(r.StrengthKeywords),
		Projects:           projects,
		CollaborationStyle: deref(r.CollaborationStyle),
		MainTechStack:      orEmpty(r.MainTechStack),
		FutureGoal:         deref(r.FutureGoal),
	}
}

// JoinKeyTasks folds bullets and a tech stack into one text block: every non-blank
// bullet prefixed with "• ", one per line, followed by a "기술 스택: a, b" line when the
// tech stack is non-empty. Whitespace-only bullets count as blank; the rest are kept
// as given.
func JoinKeyTasks(bullets, techStack []string) string {
	lines := make([]string, 0, len(bullets)+1)
	for _, b := range bullets {
		if strings.TrimSpace(b) == "" {
			continue
		}
		lines = append(lines, keyTaskBullet+b)
	}
	if stack := nonBlank(techStack); len(stack) > 0 {
		lines = append(lines, techStackPrefix+strings.Join(stack, techStackSep))
	}
	return strings.Join(lines, "\n")
}

// SplitKeyTasks reverses JoinKeyTasks. Lines typed by hand without the bullet marker
// are still read as bullets.
func SplitKeyTasks(keyTasks string) (bullets, techStack []string) {
	bullets = []string{}
	techStack = []string{}
	for _, line := range strings.Split(keyTasks, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, techStackPrefix):
			for _, tech := range strings.Split(strings.TrimPrefix(line, techStackPrefix), ",") {
				if tech = strings.TrimSpace(tech); tech != "" {
					techStack = append(techStack, tech)
				}
			}
		default:
			line = strings.TrimSpace(strings.TrimPrefix(line, strings.TrimSpace(keyTaskBullet)))
			if line != "" {
				bullets = append(bullets, line)
			}
		}
	}
	return bullets, techStack
}

// ToGenerateRequest turns the edited detail back into a generate request.
func (d ParsedResumeDetail) ToGenerateRequest() GenerateResumeRequest {
	var projects []ProjectRequest
	for _, p := range d.Projects {
		bullets, stack := SplitKeyTasks(p.KeyTasks)
		title := strings.TrimSpace(p.ProjectName)
		if title == "" && len(bullets) == 0 && len(stack) == 0 {
			continue
		}
		projects = append(projects, ProjectRequest{
			Start:     strings.TrimSpace(p.Start),
			End:       strings.TrimSpace(p.End),
			Title:     title,
			Bullets:   bullets,
			TechStack: stack,
		})
	}
	return GenerateResumeRequest{
		ResumeFormat:       strings.TrimSpace(d.ResumeFormat),
		TargetRole:         strings.TrimSpace(d.TargetRole),
		Headline:           strings.TrimSpace(d.Headline),
		StrengthKeywords:   nonBlank(d.StrengthKeywords),
		Projects:           projects,
		CollaborationStyle: strings.TrimSpace(d.CollaborationStyle),
		MainTechStack:      nonBlank(d.MainTechStack),
		FutureGoal:         strings.TrimSpace(d.FutureGoal),
	}
}

// EmptyParsedResumeDetail returns a detail with every list allocated.
func EmptyParsedResumeDetail() ParsedResumeDetail {
	return ParsedResumeDetail{
		StrengthKeywords: []string{},
		Projects:         []ProjectHistoryItem{},
		MainTechStack:    []string{},
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
