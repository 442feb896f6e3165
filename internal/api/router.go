package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/chantraine-avenir/cavserver/internal/auth"
	"github.com/chantraine-avenir/cavserver/internal/services"
)

const (
	// sessionTTL bounds how long a document-area login stays valid.
	sessionTTL = 12 * time.Hour
	// loginDelay is the fixed pause before answering a failed login.
	loginDelay = 300 * time.Millisecond

	docPrefix = "/colistiers/"
)

type Router struct {
	cfg         Config
	submissions *services.SubmissionService
	results     *services.ResultsService
	logger      *zap.Logger
	sleep       func(time.Duration)
}

func NewRouter(cfg Config, store services.BlobStore, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		cfg:         cfg,
		submissions: services.NewSubmissionService(store),
		results:     services.NewResultsService(store),
		logger:      logger,
		sleep:       time.Sleep,
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/login", rt.handleLogin)                 // POST
	mux.HandleFunc("/api/submit-questionnaire", rt.handleSubmit) // POST
	mux.HandleFunc("/resultats", rt.handleResults)               // GET, Basic auth
	mux.HandleFunc(docPrefix, rt.handleDocs)                     // GET, session cookie
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// POST /api/login — verify the documents password and set the session cookie.
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"ok": false, "error": "Method not allowed"})
		return
	}
	if rt.cfg.DocsPassword == "" || rt.cfg.AuthSecret == "" {
		rt.logger.Error("login rejected: DOCS_PASSWORD or DOCS_AUTH_SECRET unset")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": "Server not configured"})
		return
	}
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "Invalid JSON"})
		return
	}
	if !auth.SafeEqual(body.Password, rt.cfg.DocsPassword) {
		rt.sleep(loginDelay) // blunt naive brute forcing
		writeJSON(w, http.StatusUnauthorized, map[string]any{"ok": false, "error": "Invalid password"})
		return
	}
	token, err := auth.NewCodec([]byte(rt.cfg.AuthSecret)).Issue(sessionTTL)
	if err != nil {
		rt.logger.Error("issue session token", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": "Server error"})
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionTTL / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// POST /api/submit-questionnaire — append one questionnaire entry.
func (rt *Router) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var entry map[string]any
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON"})
		return
	}
	name, _ := entry["nom_prenom"].(string)
	if name == "" {
		name = "Anonyme"
	}
	rt.logger.Info("questionnaire submission received", zap.String("nom_prenom", name))
	key, err := rt.submissions.Submit(entry)
	if err != nil {
		rt.logger.Error("save submission", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	rt.logger.Info("submission saved", zap.String("key", key))
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// GET /resultats — HTML summary, or CSV with ?format=csv. Basic auth.
func (rt *Router) handleResults(w http.ResponseWriter, r *http.Request) {
	if !rt.checkAdminAuth(r) {
		w.Header().Set("WWW-Authenticate", `Basic realm="Administration"`)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, "Accès refusé")
		return
	}
	entries, err := rt.results.ListAll()
	if err != nil {
		rt.logger.Error("list responses", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if r.URL.Query().Get("format") == "csv" {
		b, err := services.ExportResponsesCSV(entries)
		if err != nil {
			rt.logger.Error("render csv", zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		filename := fmt.Sprintf("questionnaire-resultats-%s.csv", time.Now().UTC().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, _ = w.Write(b)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, adminPage(len(entries)))
}

// checkAdminAuth verifies Basic credentials against the configured admin
// account. No configured password means nobody gets in.
func (rt *Router) checkAdminAuth(r *http.Request) bool {
	if rt.cfg.AdminPassword == "" && rt.cfg.AdminPasswordHash == "" {
		return false
	}
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	username := rt.cfg.AdminUsername
	if username == "" {
		username = "admin"
	}
	if !auth.SafeEqual(user, username) {
		return false
	}
	if rt.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(rt.cfg.AdminPasswordHash), []byte(pass)) == nil
	}
	return auth.SafeEqual(pass, rt.cfg.AdminPassword)
}
