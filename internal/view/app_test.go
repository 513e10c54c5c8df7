package view

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/pricebook/internal/auth"
	"github.com/conn-castle/pricebook/internal/catalog"
	"github.com/conn-castle/pricebook/internal/export"
	"github.com/conn-castle/pricebook/internal/session"
	"github.com/conn-castle/pricebook/internal/theme"
)

type stubLoader struct {
	products []catalog.Product
	err      error
}

func (s *stubLoader) Load(context.Context) ([]catalog.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return catalog.CloneAll(s.products), nil
}

type stubClipboard struct {
	text string
	err  error
}

func (c *stubClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type harness struct {
	app       *App
	loader    *stubLoader
	clipboard *stubClipboard
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		loader:    &stubLoader{products: sampleProducts()},
		clipboard: &stubClipboard{},
	}
	verifier := auth.NewVerifierWithDigests(auth.Digest("boss"), auth.Digest("staff"))
	h.app = NewApp(Options{
		Authenticator: session.NewAuthenticator(verifier, h.loader),
		Exporter:      export.New(h.clipboard),
		Theme:         theme.Light,
	})
	return h
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func (h *harness) send(msg tea.Msg) {
	h.app.Update(msg)
}

// load delivers msg and runs the catalog load it starts to completion.
func (h *harness) load(msg tea.Msg) {
	_, cmd := h.app.Update(msg)
	h.drain(cmd)
}

// drain runs cmd and feeds back only load results; blink and spinner ticks
// are dropped.
func (h *harness) drain(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			switch inner := c().(type) {
			case loginResultMsg, reloadResultMsg:
				h.send(inner)
			}
		}
	case loginResultMsg, reloadResultMsg:
		h.send(msg)
	}
}

func (h *harness) login(password string) {
	h.send(keyRunes(password))
	h.load(keyType(tea.KeyEnter))
}

func TestApp_LoginRejected(t *testing.T) {
	h := newHarness(t)
	h.login("guess")

	assert.Nil(t, h.app.Session())
	assert.Equal(t, screenLogin, h.app.screen)
	assert.Contains(t, h.app.View(), "Incorrect password")
}

func TestApp_LoginAdmin(t *testing.T) {
	h := newHarness(t)
	h.login("boss")

	require.NotNil(t, h.app.Session())
	assert.Equal(t, screenCatalog, h.app.screen)
	view := h.app.View()
	assert.Contains(t, view, "ADMIN MODE")
	assert.Contains(t, view, "Rice")
	assert.Contains(t, view, "[e] edit")
	assert.NotContains(t, view, "Incorrect password")
}

func TestApp_LoginWorkerCannotEditOrExport(t *testing.T) {
	h := newHarness(t)
	h.login("staff")

	view := h.app.View()
	assert.Contains(t, view, "VIEWER MODE")
	assert.NotContains(t, view, "[e] edit")

	h.send(keyRunes("e"))
	assert.Equal(t, screenCatalog, h.app.screen)
	assert.False(t, h.app.Session().Editor().IsOpen())

	h.send(keyRunes("x"))
	assert.Empty(t, h.app.alert)
	assert.Empty(t, h.clipboard.text)
}

func TestApp_LoadFailureStaysOnLogin(t *testing.T) {
	h := newHarness(t)
	h.loader.err = errors.New("missing")
	h.login("boss")

	assert.Nil(t, h.app.Session())
	assert.Equal(t, screenLogin, h.app.screen)
	assert.Contains(t, h.app.View(), "Error loading database.html")

	h.send(keyType(tea.KeyEnter))
	assert.Empty(t, h.app.alert)
}

func TestApp_EditCommit(t *testing.T) {
	h := newHarness(t)
	h.login("boss")

	h.send(keyRunes("e"))
	require.Equal(t, screenEdit, h.app.screen)
	assert.Equal(t, "50", h.app.sale.Value())
	assert.Equal(t, "", h.app.min.Value())
	assert.True(t, h.app.available)
	assert.Contains(t, h.app.View(), "Edit Rice - 1kg")

	h.app.sale.SetValue("60")
	h.send(keyType(tea.KeyTab))
	h.app.min.SetValue("45")
	h.send(keyType(tea.KeyTab))
	require.Equal(t, focusAvailable, h.app.focus)
	h.send(keyType(tea.KeySpace))
	assert.False(t, h.app.available)
	h.send(keyType(tea.KeyEnter))

	assert.Equal(t, screenCatalog, h.app.screen)
	v, err := h.app.Session().Store().Variant(1, 0)
	require.NoError(t, err)
	assert.Equal(t, catalog.Variant{Weight: "1kg", SalePrice: 60, MinPrice: catalog.Price(45), Available: false}, v)
	assert.Contains(t, h.app.View(), "unsaved changes")
}

func TestApp_EditValidationKeepsModalOpen(t *testing.T) {
	h := newHarness(t)
	h.login("boss")
	h.send(keyRunes("e"))

	h.app.sale.SetValue("")
	h.send(keyType(tea.KeyEnter))

	assert.Equal(t, screenEdit, h.app.screen)
	assert.Equal(t, "sale price mandatory", h.app.alert)
	assert.True(t, h.app.Session().Editor().IsOpen())

	h.send(keyType(tea.KeyEnter))
	assert.Empty(t, h.app.alert)
	assert.Equal(t, screenEdit, h.app.screen)

	v, err := h.app.Session().Store().Variant(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 50.0, v.SalePrice)
}

func TestApp_EditCancel(t *testing.T) {
	h := newHarness(t)
	h.login("boss")
	h.send(keyRunes("j"))
	h.send(keyRunes("e"))
	require.Equal(t, screenEdit, h.app.screen)
	assert.Equal(t, "220", h.app.min.Value())

	h.app.sale.SetValue("1")
	h.send(keyType(tea.KeyEsc))

	assert.Equal(t, screenCatalog, h.app.screen)
	assert.False(t, h.app.Session().Editor().IsOpen())
	assert.Equal(t, sampleProducts(), h.app.Session().Store().All())
}

func TestApp_CursorBounds(t *testing.T) {
	h := newHarness(t)
	h.login("boss")

	h.send(keyType(tea.KeyUp))
	assert.Equal(t, 0, h.app.cursor)
	for i := 0; i < 10; i++ {
		h.send(keyType(tea.KeyDown))
	}
	assert.Equal(t, 2, h.app.cursor)
}

func TestApp_Export(t *testing.T) {
	h := newHarness(t)
	h.login("boss")
	h.send(keyRunes("e"))
	h.app.sale.SetValue("55")
	h.send(keyType(tea.KeyEnter))

	h.send(keyRunes("x"))
	assert.Contains(t, h.app.alert, "Pending changes:")
	assert.Contains(t, h.app.alert, "Data copied!")
	assert.Contains(t, h.clipboard.text, `<div id="secure-data" style="display:none;">`)
	assert.Contains(t, h.clipboard.text, `"salePrice": 55`)
}

func TestApp_ExportClipboardFailureShowsFragment(t *testing.T) {
	h := newHarness(t)
	h.clipboard.err = errors.New("no display")
	h.login("boss")

	h.send(keyRunes("x"))
	assert.Contains(t, h.app.alert, "no display")
	assert.Contains(t, h.app.alert, `<div id="secure-data"`)
}

func TestApp_ThemeTogglePersists(t *testing.T) {
	h := newHarness(t)
	prefs := theme.NewPreferenceFile(filepath.Join(t.TempDir(), "preferences.toml"))
	h.app.prefs = prefs
	h.login("staff")

	h.send(keyRunes("t"))
	assert.Equal(t, theme.Dark, h.app.Theme())
	stored, ok, err := prefs.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, theme.Dark, stored)
	assert.Contains(t, h.app.View(), "theme: dark")
}

func TestApp_ReloadReplacesCatalog(t *testing.T) {
	h := newHarness(t)
	h.login("boss")
	h.send(keyRunes("j"))
	h.send(keyRunes("j"))

	h.loader.products = []catalog.Product{{ID: 9, Name: "Sugar", Variants: []catalog.Variant{{Weight: "1kg", SalePrice: 45, Available: true}}}}
	h.load(keyRunes("r"))

	assert.Equal(t, screenCatalog, h.app.screen)
	assert.Equal(t, 0, h.app.cursor)
	view := h.app.View()
	assert.Contains(t, view, "Sugar")
	assert.NotContains(t, view, "Rice")
}

func TestApp_ReloadFailureKeepsCatalog(t *testing.T) {
	h := newHarness(t)
	h.login("boss")
	h.loader.err = errors.New("offline")
	h.load(keyRunes("r"))

	assert.Equal(t, screenCatalog, h.app.screen)
	assert.Contains(t, h.app.alert, "Error loading database.html")
	assert.Equal(t, 3, len(Rows(h.app.Session().Store().All())))
}

func TestApp_Logout(t *testing.T) {
	h := newHarness(t)
	h.login("boss")
	s := h.app.Session()

	h.send(keyRunes("q"))
	assert.Nil(t, h.app.Session())
	assert.True(t, s.Closed())
	assert.Equal(t, screenLogin, h.app.screen)
	assert.Equal(t, "", h.app.password.Value())
}

func TestApp_QuitLogsOut(t *testing.T) {
	h := newHarness(t)
	h.login("boss")
	s := h.app.Session()

	_, cmd := h.app.Update(keyType(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, s.Closed())
}
