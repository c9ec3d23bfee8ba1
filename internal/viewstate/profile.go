package viewstate

import (
	"context"

	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/types"
	"golang.org/x/sync/errgroup"
)

// ProfileState is the profile screen: the signed-in user, their my page summary and
// their personas.
type ProfileState struct {
	User     types.UserProfile
	Page     types.Mypage
	Personas []types.Persona
	Status
}

type profileData struct {
	page     types.Mypage
	personas []types.Persona
}

// Profile drives the profile screen.
type Profile struct {
	auth      AuthService
	mypage    MypageService
	personas  PersonaService
	store     *Store[ProfileState]
	guard     guard
	loggedOut *Event[types.LogoutResult]
}

// NewProfile creates the profile holder for user.
func NewProfile(auth AuthService, mypage MypageService, personas PersonaService, user types.UserProfile) *Profile {
	return &Profile{
		auth:     auth,
		mypage:   mypage,
		personas: personas,
		store: NewStore(ProfileState{
			User:     user,
			Page:     types.Mypage{}.Normalize(),
			Personas: []types.Persona{},
		}),
		loggedOut: NewEvent[types.LogoutResult](),
	}
}

// State is the observable screen state.
func (p *Profile) State() *Store[ProfileState] { return p.store }

// LoggedOut fires once the session has ended.
func (p *Profile) LoggedOut() *Event[types.LogoutResult] { return p.loggedOut }

// Load fetches the my page aggregate and the personas concurrently. A failure of
// either is shown; the my page failure wins when both fail.
func (p *Profile) Load(ctx context.Context) bool {
	_, ran := execute(&p.guard, p.store, profileStatus,
		func() outcome.Outcome[profileData] {
			var (
				g        errgroup.Group
				page     outcome.Outcome[types.Mypage]
				personas outcome.Outcome[[]types.Persona]
			)
			g.Go(func() error {
				page = p.mypage.Get(ctx)
				return nil
			})
			g.Go(func() error {
				personas = p.personas.List(ctx, types.PersonaFilter{})
				return nil
			})
			_ = g.Wait()

			list, _ := personas.Value()
			if !page.IsSuccess() {
				return outcome.Map(page, func(types.Mypage) profileData { return profileData{} })
			}
			pg, _ := page.Value()
			return outcome.Map(personas, func([]types.Persona) profileData {
				return profileData{page: pg, personas: list}
			})
		},
		func(s *ProfileState, d profileData) {
			s.Page = d.page
			s.Personas = d.personas
		},
	)
	return ran
}

// Logout ends the session.
func (p *Profile) Logout(ctx context.Context) bool {
	o, ran := execute(&p.guard, p.store, profileStatus,
		func() outcome.Outcome[types.LogoutResult] { return p.auth.Logout(ctx) },
		func(s *ProfileState, _ types.LogoutResult) { s.User = types.UserProfile{} },
	)
	if v, ok := o.Value(); ran && ok {
		p.loggedOut.Emit(v)
	}
	return ran
}

func profileStatus(s *ProfileState) *Status { return &s.Status }
