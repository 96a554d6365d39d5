package account

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typerush/typerush/internal/account"
	"github.com/typerush/typerush/internal/screen"
	"github.com/typerush/typerush/internal/store"
	"github.com/typerush/typerush/internal/ui/components"
	"github.com/typerush/typerush/internal/ui/layout"
	"github.com/typerush/typerush/internal/ui/theme"
)

// Deps is the shared account state. The app owns one instance; the
// screen mutates it on login and logout so the rest of the UI sees the
// current tier.
type Deps struct {
	ServerURL string
	TokenPath string
	Token     string
	User      *account.User
	Store     *store.Store
}

// Premium reports whether the signed-in user has the premium tier.
func (d *Deps) Premium() bool {
	return d.User != nil && d.User.IsPremium
}

// Client builds an API client with the current token.
func (d *Deps) Client() *account.Client {
	return account.NewClient(d.ServerURL, d.Token)
}

type loginDoneMsg struct {
	Token string
	User  *account.User
	Err   error
}

type syncDoneMsg struct {
	Count int
	Err   error
}

const (
	fieldEmail = iota
	fieldPassword
)

// AccountScreen shows the signed-in user or a login form.
type AccountScreen struct {
	deps *Deps

	email    components.TextInput
	password components.TextInput
	focus    int
	busy     bool
	status   string
	errMsg   string
}

var _ screen.Screen = (*AccountScreen)(nil)
var _ screen.KeyHintProvider = (*AccountScreen)(nil)

// New creates a new AccountScreen.
func New(deps *Deps) *AccountScreen {
	return &AccountScreen{
		deps:     deps,
		email:    components.NewTextInput("you@example.com", false, 100),
		password: components.NewTextInput("password", true, 100),
	}
}

func (a *AccountScreen) Init() tea.Cmd {
	if a.deps.User == nil {
		return a.email.Focus()
	}
	return nil
}

func (a *AccountScreen) Title() string {
	return "Account"
}

func (a *AccountScreen) KeyHints() []layout.KeyHint {
	if a.deps.User == nil {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Sign in"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Sync results"},
		{Key: "L", Description: "Log out"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AccountScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		a.busy = false
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
			return a, nil
		}
		a.deps.Token = msg.Token
		a.deps.User = msg.User
		a.errMsg = ""
		a.status = fmt.Sprintf("Signed in as %s", msg.User.Username)
		return a, nil

	case syncDoneMsg:
		a.busy = false
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
			return a, nil
		}
		a.errMsg = ""
		a.status = fmt.Sprintf("Synced %d result(s)", msg.Count)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.forwardToInputs(msg)
}

func (a *AccountScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if a.busy {
		return a, nil
	}

	if a.deps.User == nil {
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			return a, a.toggleFocus()
		case "enter":
			return a, a.loginCmd()
		default:
			return a.forwardToInputs(msg)
		}
	}

	switch msg.String() {
	case "s", "S":
		a.busy = true
		a.status = "Syncing..."
		return a, a.syncCmd()
	case "l", "L":
		a.logout()
	}
	return a, nil
}

func (a *AccountScreen) forwardToInputs(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if a.deps.User != nil {
		return a, nil
	}
	var cmd tea.Cmd
	if a.focus == fieldEmail {
		a.email, cmd = a.email.Update(msg)
	} else {
		a.password, cmd = a.password.Update(msg)
	}
	return a, cmd
}

func (a *AccountScreen) toggleFocus() tea.Cmd {
	if a.focus == fieldEmail {
		a.focus = fieldPassword
		a.email.Blur()
		return a.password.Focus()
	}
	a.focus = fieldEmail
	a.password.Blur()
	return a.email.Focus()
}

func (a *AccountScreen) loginCmd() tea.Cmd {
	email := strings.TrimSpace(a.email.Value())
	password := a.password.Value()
	if email == "" || password == "" {
		a.errMsg = "Email and password are required"
		return nil
	}

	a.busy = true
	a.errMsg = ""
	a.status = "Signing in..."
	deps := a.deps

	return func() tea.Msg {
		ctx := context.Background()
		client := account.NewClient(deps.ServerURL, "")
		token, err := client.Login(ctx, email, password)
		if err != nil {
			return loginDoneMsg{Err: err}
		}

		authed := account.NewClient(deps.ServerURL, token)
		user, err := authed.Me(ctx)
		if err != nil {
			return loginDoneMsg{Err: err}
		}

		if err := account.SaveToken(deps.TokenPath, token); err != nil {
			return loginDoneMsg{Err: err}
		}
		return loginDoneMsg{Token: token, User: user}
	}
}

func (a *AccountScreen) syncCmd() tea.Cmd {
	deps := a.deps
	return func() tea.Msg {
		if deps.Store == nil {
			return syncDoneMsg{Err: fmt.Errorf("no local store")}
		}

		ctx := context.Background()
		pending, err := deps.Store.UnsyncedResults(ctx)
		if err != nil {
			return syncDoneMsg{Err: err}
		}

		client := deps.Client()
		count := 0
		for _, r := range pending {
			if err := client.SyncResult(ctx, r); err != nil {
				return syncDoneMsg{Count: count, Err: err}
			}
			if err := deps.Store.MarkSynced(ctx, r.ID); err != nil {
				return syncDoneMsg{Count: count, Err: err}
			}
			count++
		}
		return syncDoneMsg{Count: count}
	}
}

func (a *AccountScreen) logout() {
	_ = account.ClearToken(a.deps.TokenPath)
	a.deps.Token = ""
	a.deps.User = nil
	a.status = "Logged out"
	a.focus = fieldEmail
}

func (a *AccountScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var content string
	if a.deps.User == nil {
		content = a.renderLogin()
	} else {
		content = a.renderProfile()
	}

	card := components.Card(content, cw)

	var extra []string
	if a.status != "" {
		extra = append(extra, lipgloss.NewStyle().Foreground(theme.TextDim).Render(a.status))
	}
	if a.errMsg != "" {
		extra = append(extra, lipgloss.NewStyle().Foreground(theme.Error).Render(a.errMsg))
	}

	all := card
	if len(extra) > 0 {
		all += "\n\n" + strings.Join(extra, "\n")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, all)
}

func (a *AccountScreen) renderLogin() string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Sign in to TypeRush")

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	return title + "\n\n" +
		label.Render("Email") + "\n" + a.email.View() + "\n\n" +
		label.Render("Password") + "\n" + a.password.View()
}

func (a *AccountScreen) renderProfile() string {
	u := a.deps.User

	tier := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Free tier")
	if u.IsPremium {
		tier = lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render("★ Premium")
		if u.PremiumSince != nil {
			tier += lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				"  since " + u.PremiumSince.Local().Format("Jan 2, 2006"))
		}
	}

	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(u.Fullname)
	handle := lipgloss.NewStyle().Foreground(theme.TextDim).Render("@" + u.Username)
	email := lipgloss.NewStyle().Foreground(theme.TextDim).Render(u.Email)

	body := name + "  " + handle + "\n" + email + "\n\n" + tier
	if !u.IsPremium {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			"Unlock challenges, themes and custom texts with \"typerush upgrade\"")
	}
	return body
}
