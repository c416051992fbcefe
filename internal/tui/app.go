// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-theatre-ai/internal/adapter"
	"github.com/MKhiriev/go-theatre-ai/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

var copyToClipboard = clipboard.WriteAll

// RootModel renders whatever page the server says the session rests on and
// turns key presses into session operations. It keeps no page state of its
// own beyond form contents and cursor positions.
type RootModel struct {
	ctx       context.Context
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo

	serverVersion string

	view    models.View
	pending bool
	fault   string

	loginForm    *form
	registerForm *form
	createForm   *form

	cursor  int
	history viewport.Model
	spinner spinner.Model

	status        string
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel creates the model with empty forms. Nothing is requested
// from the server until [RootModel.Init] runs.
func NewRootModel(ctx context.Context, a adapter.ServerAdapter, buildInfo models.AppBuildInfo) *RootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &RootModel{
		ctx:          ctx,
		adapter:      a,
		buildInfo:    buildInfo,
		loginForm:    newLoginForm(),
		registerForm: newRegisterForm(),
		createForm:   newCreateForm(),
		history:      viewport.New(80, 15),
		spinner:      s,
		pending:      true,
	}
}

// Init implements [tea.Model]. Fetches the current page and the server version.
func (m *RootModel) Init() tea.Cmd {
	return tea.Batch(
		m.call(m.adapter.Session),
		m.cmdVersion(),
		m.spinner.Tick,
		textinput.Blink,
	)
}

// Update implements [tea.Model].
func (m *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.history.Width = max(msg.Width-8, 20)
		m.history.Height = max(msg.Height-16, 5)
		return m, nil
	case viewMsg:
		m.pending = false
		m.apply(msg)
		return m, nil
	case versionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("Link to %q copied", msg.title)
		}
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if f := m.activeForm(); f != nil {
		return m, f.update(msg)
	}
	return m, nil
}

func (m *RootModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return nil
	}
	if key.Matches(msg, keys.buildInfo) {
		m.showBuildInfo = true
		return nil
	}

	if m.pending {
		return nil
	}

	if m.view.Authenticated {
		switch {
		case key.Matches(msg, keys.nextPage):
			return m.navigate(1)
		case key.Matches(msg, keys.prevPage):
			return m.navigate(-1)
		case key.Matches(msg, keys.logout):
			return m.call(m.adapter.Logout)
		}
	}

	switch m.view.Page {
	case models.PageLogin:
		return m.loginKey(msg)
	case models.PageRegister:
		return m.registerKey(msg)
	case models.PageCreatePiece:
		return m.createKey(msg)
	case models.PageGallery:
		return m.galleryKey(msg)
	case models.PageHistory:
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return cmd
	default:
		// no page yet: the first request failed
		if key.Matches(msg, keys.enter) {
			return m.call(m.adapter.Session)
		}
		return nil
	}
}

func (m *RootModel) loginKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.tab):
		m.loginForm.focusNext()
		return nil
	case key.Matches(msg, keys.backtab):
		m.loginForm.focusPrev()
		return nil
	case key.Matches(msg, keys.register):
		return m.call(m.adapter.RequestRegistration)
	case key.Matches(msg, keys.enter):
		req := models.LoginRequest{
			Username: strings.TrimSpace(m.loginForm.value(0)),
			Password: m.loginForm.value(1),
		}
		return m.call(func(ctx context.Context) (models.View, error) {
			return m.adapter.Login(ctx, req)
		})
	}

	return m.loginForm.update(msg)
}

func (m *RootModel) registerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.tab):
		m.registerForm.focusNext()
		return nil
	case key.Matches(msg, keys.backtab):
		m.registerForm.focusPrev()
		return nil
	case key.Matches(msg, keys.esc):
		return m.call(m.adapter.CancelRegistration)
	case key.Matches(msg, keys.enter):
		f := m.registerForm
		req := models.RegistrationRequest{
			Username:  strings.TrimSpace(f.value(0)),
			Password:  f.value(1),
			Email:     strings.TrimSpace(f.value(2)),
			FirstName: strings.TrimSpace(f.value(3)),
			LastName:  strings.TrimSpace(f.value(4)),
			Phone:     strings.TrimSpace(f.value(5)),
		}
		return m.call(func(ctx context.Context) (models.View, error) {
			return m.adapter.Register(ctx, req)
		})
	}

	return m.registerForm.update(msg)
}

func (m *RootModel) createKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.tab):
		m.createForm.focusNext()
		return nil
	case key.Matches(msg, keys.backtab):
		m.createForm.focusPrev()
		return nil
	case key.Matches(msg, keys.enter):
		req := models.CreationRequest{
			Theme:       m.createForm.value(0),
			Era:         m.createForm.value(1),
			Description: m.createForm.value(2),
		}
		return m.call(func(ctx context.Context) (models.View, error) {
			return m.adapter.SubmitCreation(ctx, req)
		})
	}

	return m.createForm.update(msg)
}

func (m *RootModel) galleryKey(msg tea.KeyMsg) tea.Cmd {
	pieces := m.view.Gallery
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(pieces)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.copy):
		if m.cursor < len(pieces) {
			return cmdCopy(pieces[m.cursor])
		}
	}

	return nil
}

// navigate moves step entries along the menu, wrapping around.
func (m *RootModel) navigate(step int) tea.Cmd {
	pages := m.view.MenuPages
	if len(pages) == 0 {
		return nil
	}

	i := max(slices.Index(pages, m.view.Page), 0)
	next := pages[(i+step+len(pages))%len(pages)]

	return m.call(func(ctx context.Context) (models.View, error) {
		return m.adapter.Navigate(ctx, next)
	})
}

// apply installs the view returned by the server. A transport failure
// carries no view and keeps the current page on screen.
func (m *RootModel) apply(msg viewMsg) {
	if msg.err != nil && msg.view.Page == "" {
		m.fault = humanizeServerUnavailableError(msg.err)
		return
	}
	m.fault = ""

	prev := m.view.Page
	m.view = msg.view

	if prev != m.view.Page {
		if f := m.formFor(prev); f != nil {
			f.reset()
		}
		m.cursor = 0
	}

	failed := m.view.Message != nil && m.view.Message.Kind == models.MessageError
	switch m.view.Page {
	case models.PageLogin:
		if failed {
			m.loginForm.clear(1)
		}
	case models.PageCreatePiece:
		if prev == models.PageCreatePiece && m.view.Message != nil && m.view.Message.Kind == models.MessageSuccess {
			m.createForm.reset()
		}
	case models.PageHistory:
		m.history.SetContent(renderHistory(m.view.Creations))
		m.history.GotoTop()
	}
}

func (m *RootModel) activeForm() *form {
	return m.formFor(m.view.Page)
}

func (m *RootModel) formFor(page models.Page) *form {
	switch page {
	case models.PageLogin:
		return m.loginForm
	case models.PageRegister:
		return m.registerForm
	case models.PageCreatePiece:
		return m.createForm
	default:
		return nil
	}
}

// call runs one session operation in the background.
func (m *RootModel) call(op func(ctx context.Context) (models.View, error)) tea.Cmd {
	m.pending = true
	ctx := m.ctx

	return func() tea.Msg {
		view, err := op(ctx)
		return viewMsg{view: view, err: err}
	}
}

func (m *RootModel) cmdVersion() tea.Cmd {
	ctx := m.ctx
	a := m.adapter

	return func() tea.Msg {
		v, err := a.ServerVersion(ctx)
		return versionMsg{version: v, err: err}
	}
}

func cmdCopy(piece models.GalleryPiece) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{title: piece.Title, err: copyToClipboard(piece.Link)}
	}
}

// View implements [tea.Model].
func (m *RootModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	var b strings.Builder

	if m.view.Authenticated {
		b.WriteString(renderMenu(m.view))
		b.WriteString("\n\n")
	}
	if msg := m.view.Message; msg != nil {
		b.WriteString(renderMessage(*msg))
		b.WriteString("\n\n")
	}
	if m.fault != "" {
		b.WriteString(errorStyle.Render("Error: " + m.fault))
		b.WriteString("\n\n")
	}

	b.WriteString(m.pageBody())

	if m.pending {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Please wait...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(infoStyle.Render(m.status))
	}

	return appStyle.Render(renderPage(pageTitle(m.view.Page), b.String(), hotKeys(m.view)))
}

func (m *RootModel) pageBody() string {
	switch m.view.Page {
	case models.PageLogin:
		return m.loginForm.view()
	case models.PageRegister:
		return m.registerForm.view()
	case models.PageCreatePiece:
		return m.createForm.view()
	case models.PageGallery:
		return renderGallery(m.view.Gallery, m.cursor)
	case models.PageHistory:
		if m.view.EmptyNotice != "" {
			return m.view.EmptyNotice
		}
		return m.history.View()
	default:
		if m.fault != "" {
			return "Press enter to retry."
		}
		return ""
	}
}

func renderMenu(v models.View) string {
	tabs := make([]string, 0, len(v.MenuPages))
	for _, p := range v.MenuPages {
		label := pageTitle(p)
		if p == v.Page {
			label = activeTabStyle.Render(label)
		}
		tabs = append(tabs, label)
	}

	return fmt.Sprintf("%s (%s)\n%s", v.DisplayName, v.Username, strings.Join(tabs, " │ "))
}

func renderMessage(msg models.Message) string {
	switch msg.Kind {
	case models.MessageError:
		return errorStyle.Render(msg.Text)
	case models.MessageSuccess:
		return successStyle.Render(msg.Text)
	default:
		return infoStyle.Render(msg.Text)
	}
}

func renderGallery(pieces []models.GalleryPiece, cursor int) string {
	if len(pieces) == 0 {
		return "The gallery is empty."
	}

	var b strings.Builder
	for i, p := range pieces {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(titleStyle.Render(p.Title))
		b.WriteString("\n    ")
		b.WriteString(fitText(p.Summary, 100))
		b.WriteString("\n    ")
		b.WriteString(helpStyle.Render(fitText(p.Link, 100)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderHistory(entries []models.HistoryEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(titleStyle.Render(ordinalTitle(e.Ordinal)))
		b.WriteString("\n  Theme:       ")
		b.WriteString(valueOrDash(&e.Theme))
		b.WriteString("\n  Era:         ")
		b.WriteString(valueOrDash(e.Era))
		b.WriteString("\n  Description: ")
		b.WriteString(valueOrDash(e.Description))
		if !e.CreatedAt.IsZero() {
			b.WriteString("\n  Created:     ")
			b.WriteString(e.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func pageTitle(p models.Page) string {
	switch p {
	case models.PageLogin:
		return "LOGIN"
	case models.PageRegister:
		return "REGISTER"
	case models.PageCreatePiece:
		return "CREATE A PIECE"
	case models.PageGallery:
		return "GALLERY"
	case models.PageHistory:
		return "HISTORY"
	default:
		return "THEATRE AI"
	}
}

func hotKeys(v models.View) string {
	menu := "ctrl+n/ctrl+p: switch page │ ctrl+o: log out"

	switch v.Page {
	case models.PageLogin:
		return "tab: next field │ enter: log in │ ctrl+r: create account"
	case models.PageRegister:
		return "tab: next field │ enter: register │ esc: back to login"
	case models.PageCreatePiece:
		return "tab: next field │ enter: submit │ " + menu
	case models.PageGallery:
		return "↑/↓: select │ c: copy link │ " + menu
	case models.PageHistory:
		return "↑/↓: scroll │ " + menu
	default:
		return "enter: retry"
	}
}
