package viewstate

import (
	"context"
	"slices"

	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/types"
)

// MypageState is the "my page" editing screen. Dirty marks local edits not yet saved.
type MypageState struct {
	Page  types.Mypage
	Dirty bool
	Status
}

// Mypage drives the my page screen. Edits are local until Save sends the whole
// aggregate back.
type Mypage struct {
	mypage MypageService
	store  *Store[MypageState]
	guard  guard
	saved  *Event[types.Mypage]
}

// NewMypage creates the my page holder.
func NewMypage(mypage MypageService) *Mypage {
	return &Mypage{
		mypage: mypage,
		store:  NewStore(MypageState{Page: types.Mypage{}.Normalize()}),
		saved:  NewEvent[types.Mypage](),
	}
}

// State is the observable screen state.
func (m *Mypage) State() *Store[MypageState] { return m.store }

// Saved fires once per successful save.
func (m *Mypage) Saved() *Event[types.Mypage] { return m.saved }

// Load fetches the aggregate, discarding local edits.
func (m *Mypage) Load(ctx context.Context) bool {
	_, ran := execute(&m.guard, m.store, mypageStatus,
		func() outcome.Outcome[types.Mypage] { return m.mypage.Get(ctx) },
		func(s *MypageState, page types.Mypage) {
			s.Page = page
			s.Dirty = false
		},
	)
	return ran
}

// Save replaces the server copy with the local one.
func (m *Mypage) Save(ctx context.Context) bool {
	req := m.store.Snapshot().Page.ToRequest()
	o, ran := execute(&m.guard, m.store, mypageStatus,
		func() outcome.Outcome[types.Mypage] { return m.mypage.Update(ctx, req) },
		func(s *MypageState, page types.Mypage) {
			s.Page = page
			s.Dirty = false
		},
	)
	if v, ok := o.Value(); ran && ok {
		m.saved.Emit(v)
	}
	return ran
}

// AddEducation appends an entry.
func (m *Mypage) AddEducation(e types.Education) {
	m.edit(func(p *types.Mypage) bool { p.Educations = appended(p.Educations, e); return true })
}

// UpdateEducation replaces entry i.
func (m *Mypage) UpdateEducation(i int, e types.Education) bool {
	return m.edit(func(p *types.Mypage) (ok bool) { p.Educations, ok = replaced(p.Educations, i, e); return })
}

// RemoveEducation drops entry i.
func (m *Mypage) RemoveEducation(i int) bool {
	return m.edit(func(p *types.Mypage) (ok bool) { p.Educations, ok = removed(p.Educations, i); return })
}

// AddAward appends an entry.
func (m *Mypage) AddAward(a types.Award) {
	m.edit(func(p *types.Mypage) bool { p.Awards = appended(p.Awards, a); return true })
}

// UpdateAward replaces entry i.
func (m *Mypage) UpdateAward(i int, a types.Award) bool {
	return m.edit(func(p *types.Mypage) (ok bool) { p.Awards, ok = replaced(p.Awards, i, a); return })
}

// RemoveAward drops entry i.
func (m *Mypage) RemoveAward(i int) bool {
	return m.edit(func(p *types.Mypage) (ok bool) { p.Awards, ok = removed(p.Awards, i); return })
}

// AddCertification appends an entry.
func (m *Mypage) AddCertification(c types.Certification) {
	m.edit(func(p *types.Mypage) bool { p.Certifications = appended(p.Certifications, c); return true })
}

// UpdateCertification replaces entry i.
func (m *Mypage) UpdateCertification(i int, c types.Certification) bool {
	return m.edit(func(p *types.Mypage) (ok bool) { p.Certifications, ok = replaced(p.Certifications, i, c); return })
}

// RemoveCertification drops entry i.
func (m *Mypage) RemoveCertification(i int) bool {
	return m.edit(func(p *types.Mypage) (ok bool) { p.Certifications, ok = removed(p.Certifications, i); return })
}

// AddWorkExperience appends an entry.
func (m *Mypage) AddWorkExperience(w types.WorkExperience) {
	m.edit(func(p *types.Mypage) bool { p.WorkExperiences = appended(p.WorkExperiences, w); return true })
}

// UpdateWorkExperience replaces entry i.
func (m *Mypage) UpdateWorkExperience(i int, w types.WorkExperience) bool {
	return m.edit(func(p *types.Mypage) (ok bool) { p.WorkExperiences, ok = replaced(p.WorkExperiences, i, w); return })
}

// RemoveWorkExperience drops entry i.
func (m *Mypage) RemoveWorkExperience(i int) bool {
	return m.edit(func(p *types.Mypage) (ok bool) { p.WorkExperiences, ok = removed(p.WorkExperiences, i); return })
}

func (m *Mypage) edit(fn func(*types.Mypage) bool) bool {
	var changed bool
	m.store.Update(func(s *MypageState) {
		if changed = fn(&s.Page); changed {
			s.Dirty = true
		}
	})
	return changed
}

func mypageStatus(s *MypageState) *Status { return &s.Status }

// The helpers below never modify their input, since snapshots share backing arrays.

func appended[E any](list []E, v E) []E {
	return append(slices.Clip(list), v)
}

func replaced[E any](list []E, i int, v E) ([]E, bool) {
	if i < 0 || i >= len(list) {
		return list, false
	}
	out := slices.Clone(list)
	out[i] = v
	return out, true
}

func removed[E any](list []E, i int) ([]E, bool) {
	if i < 0 || i >= len(list) {
		return list, false
	}
	return slices.Delete(slices.Clone(list), i, i+1), true
}
