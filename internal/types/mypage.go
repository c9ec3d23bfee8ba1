package types

import "fmt"

// PresentYear is the end-year sentinel meaning "still employed".
const PresentYear = 9999

// PresentLabel is shown instead of the sentinel year.
const PresentLabel = "현재"

// Education is an education entry as returned by the server.
type Education struct {
	ID             int64  `json:"id"`
	University     string `json:"university"`
	Major          string `json:"major"`
	EnrollmentYear int    `json:"enrollment_year"`
	GraduationYear int    `json:"graduation_year"`
	GPA            string `json:"gpa"`
}

// EducationRequest is an education entry submitted in a full-replace update.
type EducationRequest struct {
	University     string `json:"university"`
	Major          string `json:"major"`
	EnrollmentYear int    `json:"enrollment_year"`
	GraduationYear int    `json:"graduation_year"`
	GPA            string `json:"gpa"`
}

// Award is an award entry as returned by the server.
type Award struct {
	ID                   int64  `json:"id"`
	CompetitionName      string `json:"competition_name"`
	AwardTitle           string `json:"award_title"`
	AwardYear            int    `json:"award_year"`
	AwardingOrganization string `json:"awarding_organization"`
}

// AwardRequest is an award entry submitted in a full-replace update.
type AwardRequest struct {
	CompetitionName      string `json:"competition_name"`
	AwardTitle           string `json:"award_title"`
	AwardYear            int    `json:"award_year"`
	AwardingOrganization string `json:"awarding_organization"`
}

// Certification is a certification entry as returned by the server.
type Certification struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	ObtainedDate        string `json:"obtained_date"`
	IssuingOrganization string `json:"issuing_organization"`
	Score               string `json:"score"`
	Grade               string `json:"grade"`
}

// CertificationRequest is a certification entry submitted in a full-replace update.
type CertificationRequest struct {
	Name                string `json:"name"`
	ObtainedDate        string `json:"obtained_date"`
	IssuingOrganization string `json:"issuing_organization"`
	Score               string `json:"score"`
	Grade               string `json:"grade"`
}

// WorkExperience is a work history entry as returned by the server.
type WorkExperience struct {
	ID             int64  `json:"id"`
	CompanyName    string `json:"company_name"`
	StartYear      int    `json:"start_year"`
	EndYear        int    `json:"end_year"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
}

// IsCurrent reports whether the end year is the "still employed" sentinel.
func (w WorkExperience) IsCurrent() bool {
	return w.EndYear >= PresentYear
}

// Period renders the employment period, e.g. "2019 - 2023" or "2021 - 현재". A missing
// end year renders the start year alone.
func (w WorkExperience) Period() string {
	if w.EndYear == 0 {
		return fmt.Sprintf("%d", w.StartYear)
	}
	if w.IsCurrent() {
		return fmt.Sprintf("%d - %s", w.StartYear, PresentLabel)
	}
	return fmt.Sprintf("%d - %d", w.StartYear, w.EndYear)
}

// WorkExperienceRequest is a work history entry submitted in a full-replace update.
type WorkExperienceRequest struct {
	CompanyName    string `json:"company_name"`
	StartYear      int    `json:"start_year"`
	EndYear        int    `json:"end_year"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
}

// Mypage is the aggregate returned by GET and PUT /api/resume/mypage.
type Mypage struct {
	Educations      []Education      `json:"educations"`
	Awards          []Award          `json:"awards"`
	Certifications  []Certification  `json:"certifications"`
	WorkExperiences []WorkExperience `json:"work_experiences"`
}

// Normalize replaces nil collections with empty ones.
func (m Mypage) Normalize() Mypage {
	if m.Educations == nil {
		m.Educations = []Education{}
	}
	if m.Awards == nil {
		m.Awards = []Award{}
	}
	if m.Certifications == nil {
		m.Certifications = []Certification{}
	}
	if m.WorkExperiences == nil {
		m.WorkExperiences = []WorkExperience{}
	}
	return m
}

// ToRequest strips the server-assigned ids, producing a full-replace request.
func (m Mypage) ToRequest() MypageRequest {
	req := MypageRequest{
		Educations:      make([]EducationRequest, 0, len(m.Educations)),
		Awards:          make([]AwardRequest, 0, len(m.Awards)),
		Certifications:  make([]CertificationRequest, 0, len(m.Certifications)),
		WorkExperiences: make([]WorkExperienceRequest, 0, len(m.WorkExperiences)),
	}
	for _, e := range m.Educations {
		req.Educations = append(req.Educations, EducationRequest{
			University:     e.University,
			Major:          e.Major,
			EnrollmentYear: e.EnrollmentYear,
			GraduationYear: e.GraduationYear,
			GPA:            e.GPA,
		})
	}
	for _, a := range m.Awards {
		req.Awards = append(req.Awards, AwardRequest{
			CompetitionName:      a.CompetitionName,
			AwardTitle:           a.AwardTitle,
			AwardYear:            a.AwardYear,
			AwardingOrganization: a.AwardingOrganization,
		})
	}
	for _, c := range m.Certifications {
		req.Certifications = append(req.Certifications, CertificationRequest{
			Name:                c.Name,
			ObtainedDate:        c.ObtainedDate,
			IssuingOrganization: c.IssuingOrganization,
			Score:               c.Score,
			Grade:               c.Grade,
		})
	}
	for _, w := range m.WorkExperiences {
		req.WorkExperiences = append(req.WorkExperiences, WorkExperienceRequest{
			CompanyName:    w.CompanyName,
			StartYear:      w.StartYear,
			EndYear:        w.EndYear,
			JobTitle:       w.JobTitle,
			JobDescription: w.JobDescription,
		})
	}
	return req
}

// MypageRequest is the body of PUT /api/resume/mypage. All four collections are
// replaced together; there is no per-item patch.
type MypageRequest struct {
	Educations      []EducationRequest      `json:"educations"`
	Awards          []AwardRequest          `json:"awards"`
	Certifications  []CertificationRequest  `json:"certifications"`
	WorkExperiences []WorkExperienceRequest `json:"work_experiences"`
}

// Normalize replaces nil collections with empty ones so the server never sees null.
func (r MypageRequest) Normalize() MypageRequest {
	if r.Educations == nil {
		r.Educations = []EducationRequest{}
	}
	if r.Awards == nil {
		r.Awards = []AwardRequest{}
	}
	if r.Certifications == nil {
		r.Certifications = []CertificationRequest{}
	}
	if r.WorkExperiences == nil {
		r.WorkExperiences = []WorkExperienceRequest{}
	}
	return r
}
