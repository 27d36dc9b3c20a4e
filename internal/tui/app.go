// Package tui renders the application with Bubble Tea: a header that is
// always visible and one of two views chosen by the router.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/tada/internal/directory"
	"github.com/idilsaglam/tada/internal/router"
	"github.com/idilsaglam/tada/internal/session"
	"github.com/idilsaglam/tada/internal/ui"
)

// Deps is everything the App is built from. Session and Router are owned by
// the App for its lifetime and handed down to the views that need them.
type Deps struct {
	Session      *session.Session
	Router       *router.Router
	Directory    *directory.Client // nil disables the directory request
	TrackPointer bool
	Log          *zap.Logger
}

// App is the root Bubble Tea model.
type App struct {
	sess   *session.Session
	router *router.Router
	dir    *directory.Client
	log    *zap.Logger

	keys    keyMap
	help    help.Model
	header  header
	auth    authView
	todo    *todoView // nil unless the todo view is mounted
	pointer *pointerTracker

	width, height int
	notice        string
}

// New wires an App from deps.
func New(deps Deps) App {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	sess := deps.Session
	if sess == nil {
		sess = session.New()
	}
	r := deps.Router
	if r == nil {
		r = router.New()
	}

	sess.Subscribe(func(authenticated bool) {
		log.Info("session changed", zap.Bool("authenticated", authenticated))
	})

	return App{
		sess:    sess,
		router:  r,
		dir:     deps.Directory,
		log:     log,
		keys:    defaultKeyMap(),
		help:    help.New(),
		header:  header{sess: sess},
		auth:    authView{sess: sess},
		pointer: &pointerTracker{enabled: deps.TrackPointer, log: log},
		width:   80,
		height:  24,
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		if a.todo != nil {
			a.todo.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		a.pointer.Handle(msg)
		return a, nil

	case directory.FetchedMsg:
		a.logDirectory(msg)
		return a, nil

	case tea.KeyMsg:
		a.keys.Todos.SetEnabled(a.header.showTodos())
		a.notice = ""
		var cmd tea.Cmd
		switch {
		case key.Matches(msg, a.keys.Quit):
			cmd = tea.Sequence(a.unmountTodo(), tea.Quit)
		case key.Matches(msg, a.keys.Auth):
			cmd = a.SelectAuth()
		case key.Matches(msg, a.keys.Todos):
			cmd = a.SelectTodos()
		default:
			return a.route(msg)
		}
		return a, cmd
	}

	return a.route(msg)
}

// route hands msg to whichever view is selected.
func (a App) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.router.Current() == router.ViewTodo && a.todo != nil {
		return a, a.todo.Update(msg, a.keys)
	}
	return a, a.auth.Update(msg, a.keys)
}

// SelectTodos switches to the todo view, mounting it on an actual change.
func (a *App) SelectTodos() tea.Cmd {
	changed, err := a.router.SelectTodos()
	if err != nil {
		if errors.Is(err, router.ErrUnauthenticated) {
			a.notice = "log in to open the todo list"
		}
		a.log.Warn("todo view refused", zap.Error(err))
		return nil
	}
	if !changed {
		return nil
	}
	a.log.Debug("view selected", zap.Stringer("view", router.ViewTodo))
	return a.mountTodo()
}

// SelectAuth switches to the auth view, unmounting the todo view.
func (a *App) SelectAuth() tea.Cmd {
	if !a.router.SelectAuth() {
		return nil
	}
	a.log.Debug("view selected", zap.Stringer("view", router.ViewAuth))
	return a.unmountTodo()
}

func (a *App) mountTodo() tea.Cmd {
	a.todo = newTodoView(a.width, a.height)
	cmds := []tea.Cmd{a.todo.Focus(), a.pointer.Acquire()}
	if a.dir != nil {
		cmds = append(cmds, a.dir.FetchCmd(context.Background()))
	}
	return tea.Batch(cmds...)
}

func (a *App) unmountTodo() tea.Cmd {
	a.todo = nil
	return a.pointer.Release()
}

func (a App) logDirectory(msg directory.FetchedMsg) {
	if msg.Err != nil {
		a.log.Warn("directory request failed", zap.Error(msg.Err))
		return
	}
	names := make([]string, 0, len(msg.Users))
	for _, u := range msg.Users {
		names = append(names, u.FirstName+" "+u.LastName)
	}
	a.log.Info("directory response", zap.Int("users", len(msg.Users)), zap.Strings("names", names))
}

func (a App) View() string {
	t := ui.Current()
	keys := a.keys
	keys.Todos.SetEnabled(a.header.showTodos())

	var body string
	helpKeys := []key.Binding{keys.LogIn, keys.Quit}
	if a.router.Current() == router.ViewTodo && a.todo != nil {
		body = a.todo.View()
		helpKeys = append(a.todo.HelpKeys(keys), keys.Quit)
	} else {
		body = a.auth.View(keys)
	}

	lines := []string{a.header.View(keys), ui.Rule(a.width - 4), body, ""}
	if a.notice != "" {
		lines = append(lines, t.Error.Render(a.notice))
	}
	lines = append(lines, a.help.ShortHelpView(helpKeys))
	return ui.Panel(lines...)
}

// Current reports which top-level view is selected.
func (a App) Current() router.View { return a.router.Current() }

// PointerActive reports whether pointer motion is being tracked.
func (a App) PointerActive() bool { return a.pointer.Active() }
