package api

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/chantraine-avenir/cavserver/internal/auth"
)

// docIndexFile is served when no path follows the prefix.
const docIndexFile = "documents.html"

// GET /colistiers/<rel> — serve a private document, or the login page when
// the session cookie is absent or invalid.
func (rt *Router) handleDocs(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAuthenticated(r.Header.Get("Cookie"), []byte(rt.cfg.AuthSecret)) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, loginPageHTML)
		return
	}

	rel := ""
	if strings.HasPrefix(r.URL.Path, docPrefix) {
		rel = r.URL.Path[len(docPrefix):]
	}
	if rel == "" || rel == "/" {
		rel = docIndexFile
	}
	rel = strings.TrimLeft(rel, "/")

	// Mandatory traversal check before any filesystem access.
	if strings.Contains(rel, "..") {
		rt.logger.Warn("document path traversal rejected",
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
		)
		http.Error(w, "Bad path", http.StatusBadRequest)
		return
	}

	filePath := filepath.Join(rt.cfg.DocsDir, filepath.FromSlash(rel))
	info, err := os.Stat(filePath)
	if err != nil || !info.Mode().IsRegular() {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", docContentType(filePath))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

// docContentType infers the content type from the file extension. Anything
// unrecognized is served as generic binary.
func docContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
