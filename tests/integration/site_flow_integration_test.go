package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chantraine-avenir/cavserver/internal/api"
)

func newSiteServer(t *testing.T) *httptest.Server {
	t.Helper()
	docsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(docsDir, "documents.html"), []byte("<h1>Documents internes</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := api.Config{
		AdminUsername: "admin",
		AdminPassword: "adminpass",
		DocsPassword:  "secret123",
		AuthSecret:    "integration-secret",
		DocsDir:       docsDir,
	}
	mux := http.NewServeMux()
	api.NewRouter(cfg, api.NewMemoryStore(), nil).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// Full colistiers flow: login page, wrong password, correct password, then
// document access with the issued cookie.
func TestDocumentAccessFlow(t *testing.T) {
	srv := newSiteServer(t)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(srv.URL + "/colistiers/")
	if err != nil {
		t.Fatalf("get docs: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized || !strings.Contains(string(body), "Espace colistiers") {
		t.Fatalf("expected login page, got %d: %s", resp.StatusCode, body)
	}

	resp, err = client.Post(srv.URL+"/api/login", "application/json",
		bytes.NewReader([]byte(`{"password":"wrong"}`)))
	if err != nil {
		t.Fatalf("post login: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password should be 401, got %d", resp.StatusCode)
	}

	resp, err = client.Post(srv.URL+"/api/login", "application/json",
		bytes.NewReader([]byte(`{"password":"secret123"}`)))
	if err != nil {
		t.Fatalf("post login: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}
	var session string
	for _, c := range resp.Cookies() {
		if c.Name == "cav_auth" {
			session = c.Name + "=" + c.Value
		}
	}
	if session == "" {
		t.Fatalf("login did not set the session cookie")
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/colistiers/", nil)
	req.Header.Set("Cookie", session)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("get docs with cookie: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "Documents internes") {
		t.Fatalf("expected document index, got %d: %s", resp.StatusCode, body)
	}
}

// Full questionnaire flow: submit an entry, then export it as CSV through
// the admin endpoint.
func TestQuestionnaireFlow(t *testing.T) {
	srv := newSiteServer(t)
	client := &http.Client{Timeout: 5 * time.Second}

	entry := map[string]any{
		"nom_prenom":       "Marie Martin",
		"email":            "marie@example.com",
		"securite_general": "satisfait",
	}
	payload, _ := json.Marshal(entry)
	resp, err := client.Post(srv.URL+"/api/submit-questionnaire", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	var submitResp map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&submitResp)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || submitResp["success"] != true {
		t.Fatalf("submit failed: %d %v", resp.StatusCode, submitResp)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/resultats?format=csv", nil)
	req.SetBasicAuth("admin", "adminpass")
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	csvBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export status %d: %s", resp.StatusCode, csvBody)
	}
	if !strings.Contains(string(csvBody), "Marie Martin") {
		t.Fatalf("export should contain the submission: %s", csvBody)
	}

	// Without credentials the reporter stays closed.
	resp, err = client.Get(srv.URL + "/resultats")
	if err != nil {
		t.Fatalf("get resultats: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", resp.StatusCode)
	}
}
