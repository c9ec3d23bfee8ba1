//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkExperience_Period(t *testing.T) {
	current := WorkExperience{StartYear: 2021, EndYear: PresentYear}
	assert.True(t, current.IsCurrent())
	assert.Equal(t, "2021 - 현재", current.Period())
	assert.True(t, strings.HasSuffix(current.Period(), PresentLabel))
	assert.NotContains(t, current.Period(), "9999")

	past := WorkExperience{StartYear: 2019, EndYear: 2023}
	assert.False(t, past.IsCurrent())
	assert.Equal(t, "2019 - 2023", past.Period())
}

func TestWorkExperience_PeriodWithoutEndYear(t *testing.T) {
	var w WorkExperience
	require.NoError(t, json.Unmarshal([]byte(`{"company_name":"Acme","start_year":2019,"end_year":null}`), &w))

	assert.False(t, w.IsCurrent())
	assert.Equal(t, "2019", w.Period())
}

func TestWorkExperience_AboveSentinelIsCurrent(t *testing.T) {
	assert.True(t, WorkExperience{StartYear: 2020, EndYear: 10000}.IsCurrent())
}

func TestMypage_ToRequestStripsIDs(t *testing.T) {
	page := Mypage{
		Educations:      []Education{{ID: 1, University: "KAIST", Major: "CS", EnrollmentYear: 2015, GraduationYear: 2019, GPA: "4.0"}},
		Awards:          []Award{{ID: 2, CompetitionName: "ICPC", AwardTitle: "Gold", AwardYear: 2018, AwardingOrganization: "ACM"}},
		Certifications:  []Certification{{ID: 3, Name: "정보처리기사", ObtainedDate: "2019-05-01", IssuingOrganization: "HRDK", Score: "", Grade: "pass"}},
		WorkExperiences: []WorkExperience{{ID: 4, CompanyName: "Acme", StartYear: 2019, EndYear: PresentYear, JobTitle: "Engineer"}},
	}

	req := page.ToRequest()

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"id"`)
	require.Len(t, req.Educations, 1)
	assert.Equal(t, "KAIST", req.Educations[0].University)
	require.Len(t, req.WorkExperiences, 1)
	assert.Equal(t, PresentYear, req.WorkExperiences[0].EndYear)
}

func TestMypage_EmptyCollectionsEncodeAsArrays(t *testing.T) {
	data, err := json.Marshal(MypageRequest{}.Normalize())
	require.NoError(t, err)
	assert.JSONEq(t, `{"educations":[],"awards":[],"certifications":[],"work_experiences":[]}`, string(data))

	data, err = json.Marshal(Mypage{}.ToRequest())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}

func TestMypage_Normalize(t *testing.T) {
	var page Mypage
	require.NoError(t, json.Unmarshal([]byte(`{"educations":null}`), &page))

	page = page.Normalize()
	assert.NotNil(t, page.Educations)
	assert.NotNil(t, page.Awards)
	assert.NotNil(t, page.Certifications)
	assert.NotNil(t, page.WorkExperiences)
}
