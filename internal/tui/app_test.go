package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-theatre-ai/internal/adapter"
	"github.com/MKhiriev/go-theatre-ai/internal/mock"
	"github.com/MKhiriev/go-theatre-ai/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestModel(t *testing.T) (*RootModel, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	m := NewRootModel(context.Background(), a, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"))
	return m, a
}

// show installs v as if it had just been returned by the server.
func show(t *testing.T, m *RootModel, v models.View) {
	t.Helper()
	_, cmd := m.Update(viewMsg{view: v})
	assert.Nil(t, cmd)
	require.False(t, m.pending)
}

// press sends k and, when a command is returned, runs it and feeds its
// message back into the model.
func press(t *testing.T, m *RootModel, k tea.KeyMsg) tea.Msg {
	t.Helper()
	_, cmd := m.Update(k)
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if _, ok := msg.(viewMsg); ok {
		m.Update(msg)
	}
	return msg
}

func keyOf(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func strPtr(s string) *string { return &s }

func loginView() models.View {
	return models.View{Page: models.PageLogin}
}

func menuView(page models.Page) models.View {
	return models.View{
		Page:          page,
		Authenticated: true,
		Username:      "alice",
		DisplayName:   "Alice Liddell",
		MenuPages:     models.MenuPages,
	}
}

func errorMessage(text string) *models.Message {
	return &models.Message{Kind: models.MessageError, Text: text}
}

// ── New ───────────────────────────────────────────────────────────────────────

func TestNew_RequiresAdapter(t *testing.T) {
	ui, err := New(nil, models.AppBuildInfo{}, nil)
	assert.Nil(t, ui)
	assert.ErrorIs(t, err, errNoAdapter)
}

func TestNew_DefaultsLogger(t *testing.T) {
	_, a := newTestModel(t)
	ui, err := New(a, models.AppBuildInfo{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, ui.logger)
}

// ── Init ──────────────────────────────────────────────────────────────────────

func TestInit_FetchesSessionAndVersion(t *testing.T) {
	m, a := newTestModel(t)
	a.EXPECT().Session(gomock.Any()).Return(loginView(), nil)
	a.EXPECT().ServerVersion(gomock.Any()).Return("2.0.0", nil)

	batch, ok := m.Init()().(tea.BatchMsg)
	require.True(t, ok)

	for _, cmd := range batch {
		if cmd == nil {
			continue
		}
		switch msg := cmd().(type) {
		case viewMsg, versionMsg:
			m.Update(msg)
		}
	}

	assert.Equal(t, models.PageLogin, m.view.Page)
	assert.Equal(t, "2.0.0", m.serverVersion)
	assert.False(t, m.pending)
	assert.Contains(t, m.View(), "LOGIN")
}

func TestInit_ServerUnavailable(t *testing.T) {
	m, a := newTestModel(t)

	m.Update(viewMsg{err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")})
	assert.Equal(t, "No network or the server is unavailable", m.fault)
	assert.Contains(t, m.View(), "Press enter to retry.")

	a.EXPECT().Session(gomock.Any()).Return(loginView(), nil)
	press(t, m, keyOf(tea.KeyEnter))

	assert.Empty(t, m.fault)
	assert.Equal(t, models.PageLogin, m.view.Page)
}

// ── Login page ────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	m, a := newTestModel(t)
	show(t, m, loginView())
	m.loginForm.setValue(0, "  alice ")
	m.loginForm.setValue(1, "secret")

	a.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Username: "alice", Password: "secret"}).
		Return(menuView(models.PageCreatePiece), nil)

	press(t, m, keyOf(tea.KeyEnter))

	assert.Equal(t, models.PageCreatePiece, m.view.Page)
	assert.Empty(t, m.loginForm.value(0))
	assert.Empty(t, m.loginForm.value(1))
	assert.Contains(t, m.View(), "Alice Liddell (alice)")
}

func TestLogin_FailureKeepsUsername(t *testing.T) {
	m, a := newTestModel(t)
	show(t, m, loginView())
	m.loginForm.setValue(0, "alice")
	m.loginForm.setValue(1, "wrong")

	failed := loginView()
	failed.Message = errorMessage("Incorrect username or password")
	a.EXPECT().Login(gomock.Any(), gomock.Any()).Return(failed, adapter.ErrUnauthorized)

	press(t, m, keyOf(tea.KeyEnter))

	assert.Equal(t, models.PageLogin, m.view.Page)
	assert.Empty(t, m.fault)
	assert.Equal(t, "alice", m.loginForm.value(0))
	assert.Empty(t, m.loginForm.value(1))
	assert.Contains(t, m.View(), "Incorrect username or password")
}

func TestLogin_KeysIgnoredWhilePending(t *testing.T) {
	m, a := newTestModel(t)
	show(t, m, loginView())

	a.EXPECT().Login(gomock.Any(), gomock.Any()).Return(menuView(models.PageCreatePiece), nil).Times(1)

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, m.pending)

	_, second := m.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, second)
	assert.Contains(t, m.View(), "Please wait...")

	m.Update(cmd())
	assert.False(t, m.pending)
}

func TestLogin_FocusCycles(t *testing.T) {
	m, _ := newTestModel(t)
	show(t, m, loginView())

	press(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, 1, m.loginForm.focus)
	press(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, 0, m.loginForm.focus)
	press(t, m, keyOf(tea.KeyShiftTab))
	assert.Equal(t, 1, m.loginForm.focus)
}

func TestLogin_TypingGoesToFocusedField(t *testing.T) {
	m, _ := newTestModel(t)
	show(t, m, loginView())

	for _, r := range "jack" {
		m.Update(runeKey(r))
	}

	assert.Equal(t, "jack", m.loginForm.value(0))
	assert.Equal(t, 0, m.loginForm.focus)
}

func TestLogin_MenuKeysIgnoredWhenAnonymous(t *testing.T) {
	m, _ := newTestModel(t)
	show(t, m, loginView())

	// the mock fails the test on any unexpected adapter call
	m.Update(keyOf(tea.KeyCtrlN))
	m.Update(keyOf(tea.KeyCtrlO))

	assert.Equal(t, models.PageLogin, m.view.Page)
}

// ── Register page ─────────────────────────────────────────────────────────────

func TestRegister_RequestAndCancel(t *testing.T) {
	m, a := newTestModel(t)
	show(t, m, loginView())
	m.loginForm.setValue(0, "typed")

	a.EXPECT().RequestRegistration(gomock.Any()).Return(models.View{Page: models.PageRegister}, nil)
	press(t, m, keyOf(tea.KeyCtrlR))
	assert.Equal(t, models.PageRegister, m.view.Page)
	assert.Empty(t, m.loginForm.value(0))

	m.registerForm.setValue(0, "bob")
	a.EXPECT().CancelRegistration(gomock.Any()).Return(loginView(), nil)
	press(t, m, keyOf(tea.KeyEsc))
	assert.Equal(t, models.PageLogin, m.view.Page)
	assert.Empty(t, m.registerForm.value(0))
}

func TestRegister_Submit(t *testing.T) {
	m, a := newTestModel(t)
	show(t, m, models.View{Page: models.PageRegister})

	values := []string{" bob ", "pw", "bob@example.com", "Bob", "Builder", "+1 555 0100"}
	for i, v := range values {
		m.registerForm.setValue(i, v)
	}

	done := loginView()
	done.Message = &models.Message{Kind: models.MessageSuccess, Text: "Account created successfully. Please log in."}
	a.EXPECT().Register(gomock.Any(), models.RegistrationRequest{
		Username:  "bob",
		Password:  "pw",
		Email:     "bob@example.com",
		FirstName: "Bob",
		LastName:  "Builder",
		Phone:     "+1 555 0100",
	}).Return(done, nil)

	press(t, m, keyOf(tea.KeyEnter))

	assert.Equal(t, models.PageLogin, m.view.Page)
	assert.Empty(t, m.registerForm.value(0))
	assert.Contains(t, m.View(), "Account created successfully")
}

func TestRegister_ConflictKeepsForm(t *testing.T) {
	m, a := newTestModel(t)
	show(t, m, models.View{Page: models.PageRegister})
	m.registerForm.setValue(0, "alice")

	taken := models.View{Page: models.PageRegister, Message: errorMessage("This username is already taken")}
	a.EXPECT().Register(gomock.Any(), gomock.Any()).Return(taken, adapter.ErrConflict)

	press(t, m, keyOf(tea.KeyEnter))

	assert.Equal(t, models.PageRegister, m.view.Page)
	assert.Equal(t, "alice", m.registerForm.value(0))
	assert.Contains(t, m.View(), "This username is already taken")
}

// ── menu ──────────────────────────────────────────────────────────────────────

func TestMenu_Navigation(t *testing.T) {
	tests := []struct {
		name string
		from models.Page
		key  tea.KeyType
		want models.Page
	}{
		{name: "next from create", from: models.PageCreatePiece, key: tea.KeyCtrlN, want: models.PageGallery},
		{name: "next wraps", from: models.PageHistory, key: tea.KeyCtrlN, want: models.PageCreatePiece},
		{name: "prev wraps", from: models.PageCreatePiece, key: tea.KeyCtrlP, want: models.PageHistory},
		{name: "prev from gallery", from: models.PageGallery, key: tea.KeyCtrlP, want: models.PageCreatePiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, a := newTestModel(t)
			show(t, m, menuView(tt.from))

			a.EXPECT().Navigate(gomock.Any(), tt.want).Return(menuView(tt.want), nil)
			press(t, m, keyOf(tt.key))

			assert.Equal(t, tt.want, m.view.Page)
		})
	}
}

func TestMenu_Logout(t *testing.T) {
	m, a := newTestModel(t)
	show(t, m, menuView(models.PageGallery))

	out := loginView()
	out.Message = &models.Message{Kind: models.MessageInfo, Text: "You have been logged out."}
	a.EXPECT().Logout(gomock.Any()).Return(out, nil)

	press(t, m, keyOf(tea.KeyCtrlO))

	assert.Equal(t, models.PageLogin, m.view.Page)
	assert.False(t, m.view.Authenticated)
	assert.Contains(t, m.View(), "You have been logged out.")
}

// ── CreatePiece page ──────────────────────────────────────────────────────────

func TestCreate_SubmitResetsFormOnSuccess(t *testing.T) {
	m, a := newTestModel(t)
	show(t, m, menuView(models.PageCreatePiece))
	m.createForm.setValue(0, "Storm")
	m.createForm.setValue(1, "Elizabethan")
	m.createForm.setValue(2, "A tempest at sea")

	saved := menuView(models.PageCreatePiece)
	saved.Message = &models.Message{Kind: models.MessageSuccess, Text: "Your creation has been saved to the database!"}
	a.EXPECT().SubmitCreation(gomock.Any(), models.CreationRequest{
		Theme:       "Storm",
		Era:         "Elizabethan",
		Description: "A tempest at sea",
	}).Return(saved, nil)

	press(t, m, keyOf(tea.KeyEnter))

	assert.Empty(t, m.createForm.value(0))
	assert.Empty(t, m.createForm.value(1))
	assert.Empty(t, m.createForm.value(2))
	assert.Contains(t, m.View(), "Your creation has been saved")
}

func TestCreate_TransportErrorKeepsForm(t *testing.T) {
	m, a := newTestModel(t)
	show(t, m, menuView(models.PageCreatePiece))
	m.createForm.setValue(0, "Storm")

	a.EXPECT().SubmitCreation(gomock.Any(), gomock.Any()).Return(models.View{}, errors.New("i/o timeout"))

	press(t, m, keyOf(tea.KeyEnter))

	assert.Equal(t, models.PageCreatePiece, m.view.Page)
	assert.Equal(t, "Storm", m.createForm.value(0))
	assert.Equal(t, "No network or the server is unavailable", m.fault)
}

// ── Gallery page ──────────────────────────────────────────────────────────────

func galleryView() models.View {
	v := menuView(models.PageGallery)
	v.Gallery = []models.GalleryPiece{
		{Title: "Hamlet", Summary: "A prince hesitates.", Link: "https://example.com/hamlet"},
		{Title: "Medea", Summary: "A betrayal avenged.", Link: "https://example.com/medea"},
	}
	return v
}

func TestGallery_CursorAndCopy(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m, _ := newTestModel(t)
	show(t, m, galleryView())

	press(t, m, keyOf(tea.KeyUp))
	assert.Equal(t, 0, m.cursor)
	press(t, m, keyOf(tea.KeyDown))
	press(t, m, keyOf(tea.KeyDown))
	assert.Equal(t, 1, m.cursor)

	msg := press(t, m, runeKey('c'))
	require.IsType(t, copiedMsg{}, msg)
	assert.Equal(t, "https://example.com/medea", copied)

	_, cmd := m.Update(msg)
	assert.NotNil(t, cmd)
	assert.Equal(t, `Link to "Medea" copied`, m.status)

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestGallery_CopyFailure(t *testing.T) {
	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { copyToClipboard = orig })

	m, _ := newTestModel(t)
	show(t, m, galleryView())

	m.Update(press(t, m, runeKey('c')))
	assert.Equal(t, "Copy failed: no clipboard", m.status)
}

func TestGallery_View(t *testing.T) {
	m, _ := newTestModel(t)
	show(t, m, galleryView())

	out := m.View()
	assert.Contains(t, out, "GALLERY")
	assert.Contains(t, out, "Hamlet")
	assert.Contains(t, out, "https://example.com/medea")
}

func TestGallery_CursorResetOnPageChange(t *testing.T) {
	m, a := newTestModel(t)
	show(t, m, galleryView())
	press(t, m, keyOf(tea.KeyDown))
	require.Equal(t, 1, m.cursor)

	a.EXPECT().Navigate(gomock.Any(), models.PageHistory).Return(menuView(models.PageHistory), nil)
	press(t, m, keyOf(tea.KeyCtrlN))

	assert.Equal(t, 0, m.cursor)
}

// ── History page ──────────────────────────────────────────────────────────────

func TestHistory_RendersEntries(t *testing.T) {
	m, _ := newTestModel(t)
	v := menuView(models.PageHistory)
	v.Creations = []models.HistoryEntry{
		{Ordinal: 1, Creation: models.Creation{ID: 7, Theme: "Storm", Era: strPtr("Baroque")}},
		{Ordinal: 2, Creation: models.Creation{ID: 9, Theme: "Calm", Description: strPtr("Quiet sea"), CreatedAt: time.Now()}},
	}
	show(t, m, v)

	out := m.View()
	assert.Contains(t, out, "Creation 1")
	assert.Contains(t, out, "Creation 2")
	assert.Contains(t, out, "Baroque")
	assert.Contains(t, out, "Quiet sea")
}

func TestHistory_EmptyNotice(t *testing.T) {
	m, _ := newTestModel(t)
	v := menuView(models.PageHistory)
	v.EmptyNotice = "No creations in the history yet."
	show(t, m, v)

	assert.Contains(t, m.View(), "No creations in the history yet.")
}

// ── global keys ───────────────────────────────────────────────────────────────

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	show(t, m, loginView())

	_, cmd := m.Update(keyOf(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitByUser)
}

func TestBuildInfo_Toggle(t *testing.T) {
	m, _ := newTestModel(t)
	show(t, m, loginView())
	m.Update(versionMsg{version: "9.9.9"})

	press(t, m, keyOf(tea.KeyCtrlB))
	require.True(t, m.showBuildInfo)

	out := m.View()
	assert.Contains(t, out, "Version: 1.0.0")
	assert.Contains(t, out, "Commit: abc123")
	assert.Contains(t, out, "Server version: 9.9.9")

	// the overlay swallows page keys
	press(t, m, keyOf(tea.KeyEnter))
	assert.True(t, m.showBuildInfo)

	press(t, m, keyOf(tea.KeyEsc))
	assert.False(t, m.showBuildInfo)
}

func TestVersion_ErrorIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(versionMsg{err: errors.New("boom")})
	assert.Empty(t, m.serverVersion)
	assert.Contains(t, renderBuildInfoWindow(m.buildInfo, m.serverVersion), "Server version: N/A")
}
