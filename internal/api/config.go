package api

// Config carries the deployment configuration the handlers need. Secrets are
// injected at construction rather than read from ambient globals so the
// router stays testable in isolation.
type Config struct {
	// AdminUsername guards /resultats; defaults to "admin" when empty.
	AdminUsername string
	// AdminPassword is the Basic-auth password. When neither it nor
	// AdminPasswordHash is set, /resultats rejects everything.
	AdminPassword string
	// AdminPasswordHash optionally holds a bcrypt hash; it takes
	// precedence over AdminPassword.
	AdminPasswordHash string
	// DocsPassword unlocks the colistiers document area.
	DocsPassword string
	// AuthSecret signs session tokens.
	AuthSecret string
	// DocsDir is the private document root served under /colistiers/.
	DocsDir string
}
