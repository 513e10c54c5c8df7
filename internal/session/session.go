// Package session ties a login to its catalog, role and edit state.
// A Session is created by a successful login and discarded at logout; there
// is no global state.
package session

import (
	"context"
	"sync"

	"github.com/conn-castle/pricebook/internal/auth"
	"github.com/conn-castle/pricebook/internal/catalog"
	"github.com/conn-castle/pricebook/internal/editor"
	"github.com/conn-castle/pricebook/internal/export"
)

// CatalogLoader produces a full catalog.
type CatalogLoader interface {
	Load(ctx context.Context) ([]catalog.Product, error)
}

// Authenticator verifies a password and loads the catalog for the new session.
type Authenticator struct {
	verifier *auth.Verifier
	loader   CatalogLoader
}

// NewAuthenticator returns an Authenticator.
func NewAuthenticator(verifier *auth.Verifier, loader CatalogLoader) *Authenticator {
	return &Authenticator{verifier: verifier, loader: loader}
}

// Login verifies password and, on a match, loads the catalog. It returns
// auth.ErrRejected for a bad password and the loader's error when the catalog
// cannot be loaded; in both cases no session exists.
func (a *Authenticator) Login(ctx context.Context, password string) (*Session, error) {
	role, err := a.Verify(password)
	if err != nil {
		return nil, err
	}
	return a.Open(ctx, role)
}

// Verify classifies password without loading anything.
func (a *Authenticator) Verify(password string) (auth.Role, error) {
	return a.verifier.Verify(password)
}

// Open loads the catalog and starts a session for an already verified role.
func (a *Authenticator) Open(ctx context.Context, role auth.Role) (*Session, error) {
	s := &Session{
		role:   role,
		store:  catalog.NewStore(),
		loader: a.loader,
	}
	s.editor = editor.New(s.store)
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Session is one logged-in user's view of the catalog.
type Session struct {
	role   auth.Role
	store  *catalog.Store
	editor *editor.Session
	loader CatalogLoader

	mu       sync.Mutex
	baseline []catalog.Product
	closed   bool
}

// Role returns the role granted at login.
func (s *Session) Role() auth.Role {
	return s.role
}

// Store returns the session catalog.
func (s *Session) Store() *catalog.Store {
	return s.store
}

// Editor returns the session edit state.
func (s *Session) Editor() *editor.Session {
	return s.editor
}

// Reload re-fetches the catalog and fully replaces the store. Any open edit is
// closed first, since its target may not exist in the new catalog. On error
// the store is left as it was.
func (s *Session) Reload(ctx context.Context) error {
	products, err := s.loader.Load(ctx)
	if err != nil {
		return err
	}
	s.editor.Close()
	s.store.Replace(products)

	s.mu.Lock()
	s.baseline = catalog.CloneAll(products)
	s.mu.Unlock()
	return nil
}

// Changes returns a diff of the catalog against what was last loaded.
func (s *Session) Changes() (string, error) {
	s.mu.Lock()
	baseline := s.baseline
	s.mu.Unlock()
	return export.Preview(baseline, s.store.All())
}

// Dirty reports whether the catalog differs from what was last loaded.
func (s *Session) Dirty() bool {
	diff, err := s.Changes()
	return err == nil && diff != ""
}

// Export copies the current catalog through exporter.
// Whether the role may export is decided by the caller's UI, not here.
func (s *Session) Export(exporter *export.Exporter) (export.Result, error) {
	return exporter.Export(s.store.All())
}

// Logout drops the catalog and any open edit. The session is unusable after.
func (s *Session) Logout() {
	s.editor.Close()
	s.store.Clear()
	s.mu.Lock()
	s.baseline = nil
	s.closed = true
	s.mu.Unlock()
}

// Closed reports whether Logout has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
