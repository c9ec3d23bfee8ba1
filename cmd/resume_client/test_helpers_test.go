package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/jonathan/resume-assistant/internal/config"
	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/stretchr/testify/assert"
)

const (
	testEmail    = "kim@example.com"
	testPassword = "secret123"
)

// fakeAPI is an in-memory resume assistant server. Every endpoint but login and
// register requires the session cookie.
type fakeAPI struct {
	t *testing.T

	mu        sync.Mutex
	requests  []string
	lastQuery string
	lastBody  map[string]any
	mypagePut map[string]any
	mypage    string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	api := &fakeAPI{t: t, mypage: `{"educations":[],"awards":[],"certifications":[],"work_experiences":[{"id":1,"company_name":"Acme","job_title":"dev","start_year":2021,"end_year":9999}]}`}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return api, srv
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	f.lastQuery = r.URL.RawQuery
	f.lastBody = nil
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		_ = json.NewDecoder(r.Body).Decode(&f.lastBody)
	}

	switch r.URL.Path {
	case "/api/users/login/":
		if f.lastBody["email"] != testEmail || f.lastBody["password"] != testPassword {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "s1", Path: "/"})
		fmt.Fprintf(w, `{"message":"ok","user":{"email":%q,"name":"Kim","age":30,"gender":"F"}}`, testEmail)
		return
	case "/api/users/register/":
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"message":"registered","user":{"email":%q,"name":%q,"gender":%q}}`, f.lastBody["email"], f.lastBody["name"], f.lastBody["gender"])
		return
	}

	if _, err := r.Cookie("sessionid"); err != nil {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	switch {
	case r.URL.Path == "/api/users/logout/":
		_, _ = w.Write([]byte(`{"message":"bye"}`))
	case r.URL.Path == "/api/personas/" && r.Method == http.MethodGet:
		_, _ = w.Write([]byte(`[{"id":1,"name":"Strict","is_active":true,"is_default":true},{"id":2,"name":"Mine","description":"mine","prompt":"p","is_active":true}]`))
	case r.URL.Path == "/api/personas/" && r.Method == http.MethodPost:
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id":3,"name":%q,"description":%q,"prompt":%q,"is_active":%t}`, f.lastBody["name"], f.lastBody["description"], f.lastBody["prompt"], f.lastBody["is_active"])
	case r.URL.Path == "/api/personas/2/" && r.Method == http.MethodPut:
		fmt.Fprintf(w, `{"id":2,"name":%q,"description":%q,"prompt":%q,"is_active":%t}`, f.lastBody["name"], f.lastBody["description"], f.lastBody["prompt"], f.lastBody["is_active"])
	case r.URL.Path == "/api/personas/2/" && r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	case r.URL.Path == "/api/resume/mypage" && r.Method == http.MethodGet:
		_, _ = w.Write([]byte(f.mypage))
	case r.URL.Path == "/api/resume/mypage" && r.Method == http.MethodPut:
		f.mypagePut = f.lastBody
		data, _ := json.Marshal(f.lastBody)
		f.mypage = string(data)
		_, _ = w.Write(data)
	case r.URL.Path == "/parse-pdf/":
		file, _, err := r.FormFile("file")
		if !assert.NoError(f.t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = io.Copy(io.Discard, file)
		_, _ = w.Write([]byte(`{"target_role":"Backend","headline":"Parsed headline","projects":[{"title":"Billing","bullets":["did X","","did Y"],"tech_stack":["Go"]}]}`))
	case r.URL.Path == "/api/resume/generate/":
		_, _ = w.Write([]byte(`{"resume_id":77,"items":[{"element_id":1,"type":"TITLED","sub_title":"Projects","content":"Billing"}]}`))
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeAPI) body() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBody
}

// lastMypagePut returns the body of the most recent my page update.
func (f *fakeAPI) lastMypagePut() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mypagePut
}

// resetFlags clears the package-level flag variables between runs.
func resetFlags() {
	configPath = ""
	flagConfig = config.Config{}
	registerUsername, registerName, registerGender, registerJob, registerPhone = "", "", "", "", ""
	registerAge = 0
	personaFilter = types.PersonaFilter{}
	personaName, personaDescription, personaPrompt = "", "", ""
	personaInactive = false
	mypageFile = ""
	wizardPDF, wizardOut, wizardFormat, wizardTargetRole, wizardHeadline, wizardFutureGoal = "", "", "", "", "", ""
	wizardKeywords, wizardTech = nil, nil
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func authArgs(baseURL string, args ...string) []string {
	return append(args, "--base-url", baseURL, "--email", testEmail, "--password", testPassword)
}
