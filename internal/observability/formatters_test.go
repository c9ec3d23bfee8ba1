package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintUser(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintUser(types.UserProfile{Name: "Kim", Email: "kim@example.com", Age: 30, Gender: types.GenderFemale})
	output := buf.String()

	assert.Contains(t, output, "USER")
	assert.Contains(t, output, "Kim")
	assert.Contains(t, output, "FEMALE")
	assert.NotContains(t, output, "Phone")
}

func TestPrintPersonas(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPersonas([]types.Persona{
		{ID: 1, Title: "Strict", IconType: types.IconDefault, IsActive: true},
		{ID: 2, Title: "Mine", Description: "friendly", IsActive: false, LastModified: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	})
	output := buf.String()

	assert.Contains(t, output, "PERSONAS (2)")
	assert.Contains(t, output, "* #1  Strict (active)")
	assert.Contains(t, output, "#2  Mine (inactive)")
	assert.Contains(t, output, "modified 2024-05-01 10:00")
}

func TestPrintPersonas_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPersonas(nil)

	assert.Contains(t, buf.String(), "(none)")
}

func TestPrintMypage_CurrentJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMypage(types.Mypage{
		WorkExperiences: []types.WorkExperience{
			{CompanyName: "Acme", JobTitle: "dev", StartYear: 2021, EndYear: types.PresentYear},
			{CompanyName: "Old", JobTitle: "intern", StartYear: 2019, EndYear: 2020},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "2021 - 현재")
	assert.Contains(t, output, "2019 - 2020")
	assert.NotContains(t, output, "9999")
}

func TestPrintParsedDetail(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedDetail(types.ParsedResumeDetail{
		Headline: "Backend engineer",
		Projects: []types.ProjectHistoryItem{
			{ProjectName: "Billing", KeyTasks: "• did X\n기술 스택: Go"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Billing")
	assert.Contains(t, output, "• did X")
	assert.Contains(t, output, "기술 스택: Go")
}

func TestPrintGeneratedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGeneratedResume(types.GeneratedResume{
		ID: "r1",
		Items: []types.ResumeItem{
			{Type: types.ItemTitled, Subtitle: "Projects", Content: "Billing"},
			{Type: types.ItemSimple, Content: "Summary"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "GENERATED RESUME r1")
	assert.Contains(t, output, "Projects")
	assert.Contains(t, output, "Summary")
}

func TestPrintBox_TruncatesByRune(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("T", strings.Repeat("가", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
