package view

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/conn-castle/pricebook/internal/auth"
	"github.com/conn-castle/pricebook/internal/editor"
	"github.com/conn-castle/pricebook/internal/export"
	"github.com/conn-castle/pricebook/internal/logging"
	"github.com/conn-castle/pricebook/internal/messages"
	"github.com/conn-castle/pricebook/internal/session"
	"github.com/conn-castle/pricebook/internal/theme"
)

type screen int

const (
	screenLogin screen = iota
	screenLoading
	screenCatalog
	screenEdit
)

type editFocus int

const (
	focusSale editFocus = iota
	focusMin
	focusAvailable
	focusCount
)

type loginResultMsg struct {
	session *session.Session
	err     error
}

type reloadResultMsg struct {
	err error
}

// Options configures an App.
type Options struct {
	Authenticator *session.Authenticator
	Exporter      *export.Exporter
	// Preferences persists theme changes; nil keeps them in memory.
	Preferences *theme.PreferenceFile
	Theme       theme.Theme
	Logger      *log.Logger
	Context     context.Context
}

// App is the bubbletea model for the whole client: login, catalog, edit modal
// and blocking alerts. Only the bubbletea loop calls into it.
type App struct {
	auth     *session.Authenticator
	exporter *export.Exporter
	prefs    *theme.PreferenceFile
	logger   *log.Logger
	ctx      context.Context

	theme  theme.Theme
	styles Styles
	keys   keyMap
	help   help.Model

	screen      screen
	session     *session.Session
	password    textinput.Model
	loginFailed bool
	spinner     spinner.Model
	cursor      int

	draft     editor.Draft
	sale      textinput.Model
	min       textinput.Model
	available bool
	focus     editFocus

	alert string
}

// NewApp returns an App on the login screen.
func NewApp(opts Options) *App {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	t := opts.Theme
	if t == "" {
		t = theme.Light
	}

	password := textinput.New()
	password.Placeholder = messages.ViewPasswordHolder
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Focus()

	sale := textinput.New()
	sale.Prompt = ""
	sale.CharLimit = 32
	minPrice := textinput.New()
	minPrice.Prompt = ""
	minPrice.Placeholder = messages.ViewEditMinHolder
	minPrice.CharLimit = 32

	return &App{
		auth:     opts.Authenticator,
		exporter: opts.Exporter,
		prefs:    opts.Preferences,
		logger:   logger,
		ctx:      ctx,
		theme:    t,
		styles:   NewStyles(t),
		keys:     defaultKeyMap(),
		help:     help.New(),
		screen:   screenLogin,
		password: password,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		sale:     sale,
		min:      minPrice,
	}
}

// Session returns the active session, or nil before login.
func (a *App) Session() *session.Session {
	return a.session
}

// Theme returns the active theme.
func (a *App) Theme() theme.Theme {
	return a.theme
}

// Init starts the cursor blink on the password field.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles one message.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		return a, nil
	case spinner.TickMsg:
		if a.screen != screenLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case loginResultMsg:
		return a.handleLoginResult(msg)
	case reloadResultMsg:
		return a.handleReloadResult(msg)
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			if a.session != nil {
				a.session.Logout()
			}
			return a, tea.Quit
		}
		if a.alert != "" {
			if key.Matches(msg, a.keys.Dismiss) {
				a.alert = ""
			}
			return a, nil
		}
		switch a.screen {
		case screenLogin:
			return a.updateLogin(msg)
		case screenCatalog:
			return a.updateCatalog(msg)
		case screenEdit:
			return a.updateEdit(msg)
		}
		return a, nil
	}
	return a.updateInputs(msg)
}

func (a *App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, a.keys.Submit) {
		var cmd tea.Cmd
		a.password, cmd = a.password.Update(msg)
		return a, cmd
	}
	role, err := a.auth.Verify(a.password.Value())
	if err != nil {
		a.loginFailed = true
		return a, nil
	}
	a.loginFailed = false
	a.screen = screenLoading
	return a, tea.Batch(a.spinner.Tick, a.openSession(role))
}

func (a *App) openSession(role auth.Role) tea.Cmd {
	ctx, authenticator := a.ctx, a.auth
	return func() tea.Msg {
		s, err := authenticator.Open(ctx, role)
		return loginResultMsg{session: s, err: err}
	}
}

func (a *App) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.screen = screenLogin
		a.alert = messages.ViewLoadFailed
		return a, nil
	}
	a.session = msg.session
	a.screen = screenCatalog
	a.cursor = 0
	a.password.Reset()
	a.password.Blur()
	return a, nil
}

func (a *App) reload() tea.Cmd {
	ctx, s := a.ctx, a.session
	return func() tea.Msg {
		return reloadResultMsg{err: s.Reload(ctx)}
	}
}

func (a *App) handleReloadResult(msg reloadResultMsg) (tea.Model, tea.Cmd) {
	a.screen = screenCatalog
	if msg.err != nil {
		a.alert = messages.ViewLoadFailed
		return a, nil
	}
	a.clampCursor()
	return a, nil
}

func (a *App) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	role := a.session.Role()
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(Rows(a.session.Store().All()))-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Edit):
		if role.CanEdit() {
			return a.openEdit()
		}
	case key.Matches(msg, a.keys.Export):
		if role.CanExport() {
			a.export()
		}
	case key.Matches(msg, a.keys.Theme):
		a.toggleTheme()
	case key.Matches(msg, a.keys.Reload):
		a.screen = screenLoading
		return a, tea.Batch(a.spinner.Tick, a.reload())
	case key.Matches(msg, a.keys.Logout):
		a.logout()
		return a, a.password.Focus()
	}
	return a, nil
}

func (a *App) openEdit() (tea.Model, tea.Cmd) {
	rows := Rows(a.session.Store().All())
	if a.cursor < 0 || a.cursor >= len(rows) {
		return a, nil
	}
	row := rows[a.cursor]
	draft, err := a.session.Editor().Open(row.ProductID, row.VariantIndex)
	if err != nil {
		a.alert = err.Error()
		return a, nil
	}
	a.draft = draft
	a.sale.SetValue(draft.Sale)
	a.min.SetValue(draft.Min)
	a.available = draft.Available
	a.screen = screenEdit
	return a, a.setFocus(focusSale)
}

func (a *App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.session.Editor().Close()
		a.closeEdit()
		return a, nil
	case key.Matches(msg, a.keys.Submit):
		return a.commit()
	case key.Matches(msg, a.keys.Next):
		return a, a.setFocus((a.focus + 1) % focusCount)
	case key.Matches(msg, a.keys.Prev):
		return a, a.setFocus((a.focus + focusCount - 1) % focusCount)
	case a.focus == focusAvailable:
		if key.Matches(msg, a.keys.Toggle) {
			a.available = !a.available
		}
		return a, nil
	}
	return a.updateInputs(msg)
}

func (a *App) commit() (tea.Model, tea.Cmd) {
	err := a.session.Editor().Commit(a.sale.Value(), a.min.Value(), a.available)
	var verr *editor.ValidationError
	switch {
	case errors.As(err, &verr):
		a.alert = verr.Reason
	case err != nil:
		a.alert = err.Error()
		a.session.Editor().Close()
		a.closeEdit()
	default:
		a.closeEdit()
	}
	return a, nil
}

func (a *App) closeEdit() {
	a.sale.Blur()
	a.min.Blur()
	a.screen = screenCatalog
}

func (a *App) setFocus(f editFocus) tea.Cmd {
	a.focus = f
	a.sale.Blur()
	a.min.Blur()
	switch f {
	case focusSale:
		return a.sale.Focus()
	case focusMin:
		return a.min.Focus()
	}
	return nil
}

func (a *App) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.screen {
	case screenLogin:
		a.password, cmd = a.password.Update(msg)
	case screenEdit:
		var saleCmd, minCmd tea.Cmd
		a.sale, saleCmd = a.sale.Update(msg)
		a.min, minCmd = a.min.Update(msg)
		cmd = tea.Batch(saleCmd, minCmd)
	}
	return a, cmd
}

func (a *App) export() {
	changes, err := a.session.Changes()
	if err != nil {
		a.alert = err.Error()
		return
	}
	result, err := a.session.Export(a.exporter)
	var cbErr *export.ClipboardError
	switch {
	case errors.As(err, &cbErr):
		a.logger.Warn("clipboard write failed", "err", cbErr.Err)
		a.alert = fmt.Sprintf(messages.ViewClipboardFailFmt, cbErr.Err, cbErr.Text)
	case err != nil:
		a.alert = err.Error()
	case changes != "":
		a.alert = messages.ViewPendingChanges + "\n" + changes + "\n\n" + result.Instructions
	default:
		a.alert = result.Instructions
	}
}

func (a *App) toggleTheme() {
	a.theme = a.theme.Toggle()
	a.styles = NewStyles(a.theme)
	if a.prefs == nil {
		return
	}
	if err := a.prefs.Save(a.theme); err != nil {
		a.logger.Warn(messages.ViewThemeSaveFailed, "path", a.prefs.Path(), "err", err)
	}
}

func (a *App) logout() {
	a.session.Logout()
	a.session = nil
	a.screen = screenLogin
	a.cursor = 0
	a.loginFailed = false
	a.password.Reset()
}

func (a *App) clampCursor() {
	n := len(Rows(a.session.Store().All()))
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// View renders the current screen, with any alert drawn over it.
func (a *App) View() string {
	var b strings.Builder
	switch a.screen {
	case screenLogin:
		b.WriteString(a.loginView())
	case screenLoading:
		b.WriteString(a.spinner.View() + " " + messages.ViewLoading + "\n")
	case screenCatalog:
		b.WriteString(a.catalogView())
	case screenEdit:
		b.WriteString(a.catalogView())
		b.WriteString(a.editView())
	}
	if a.alert != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Alert.Render(a.alert + "\n\n" + a.help.View(a.keys.alertHelp())))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) loginView() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render(messages.ViewTitle) + "\n\n")
	b.WriteString(messages.ViewLoginPrompt + "\n")
	b.WriteString(a.password.View() + "\n")
	if a.loginFailed {
		b.WriteString(a.styles.Error.Render(messages.ViewLoginRejected) + "\n")
	}
	b.WriteString("\n" + a.help.View(a.keys.loginHelp()) + "\n")
	return b.String()
}

func (a *App) catalogView() string {
	role := a.session.Role()
	products := a.session.Store().All()

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		a.styles.Title.Render(messages.ViewTitle), "  ",
		a.styles.Badge.Render(role.Badge()), "  ",
		a.styles.Muted.Render(fmt.Sprintf(messages.ViewThemeFmt, a.theme)),
	)

	var b strings.Builder
	b.WriteString(header + "\n\n")
	cursor := a.cursor
	if a.screen != screenCatalog {
		cursor = -1
	}
	b.WriteString(Render(products, role, a.styles, cursor))
	if role.CanExport() && a.session.Dirty() {
		b.WriteString(a.styles.Badge.Render(messages.ViewUnsavedChanges) + "\n")
	}
	if a.screen == screenCatalog {
		b.WriteString(a.help.View(a.keys.catalogHelp(role)) + "\n")
	}
	return b.String()
}

func (a *App) editView() string {
	check := "[ ]"
	if a.available {
		check = "[x]"
	}
	label := func(f editFocus, text string) string {
		if a.focus == f {
			return a.styles.Cursor.Render("> " + text)
		}
		return "  " + text
	}
	body := strings.Join([]string{
		a.styles.Title.Render(fmt.Sprintf(messages.ViewEditTitleFmt, a.draft.ProductName, a.draft.Weight)),
		"",
		label(focusSale, messages.ViewEditSaleLabel) + ": " + a.sale.View(),
		label(focusMin, messages.ViewEditMinLabel) + ": " + a.min.View(),
		label(focusAvailable, messages.ViewEditAvailLabel) + ": " + check,
		"",
		a.help.View(a.keys.editHelp()),
	}, "\n")
	return a.styles.Modal.Render(body) + "\n"
}
