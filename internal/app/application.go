package app

import (
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	inputui "github.com/kk-code-lab/fbrowse/internal/ui/input"
	renderui "github.com/kk-code-lab/fbrowse/internal/ui/render"
)

const (
	DefaultTickRate  = 250 * time.Millisecond
	actionBufferSize = 16
)

// Options carries the resolved settings the application starts with.
type Options struct {
	StartDir        string
	ShowHidden      bool
	Ignore          []string
	TickRate        time.Duration
	Watch           bool
	PreviewMaxBytes int64
	Highlight       bool
	HighlightStyle  string
}

// Application represents the running app.
type Application struct {
	screen      tcell.Screen
	state       *statepkg.AppState
	reducer     *statepkg.StateReducer
	renderer    *renderui.Renderer
	input       *inputui.InputHandler
	actionCh    chan statepkg.Action
	shouldQuit  bool
	tickRate    time.Duration
	watcher     *dirWatcher
	watchedPath string
	log         logrus.FieldLogger
}

// NewSession anchors a directory session at opts.StartDir. It runs before
// the terminal is taken over so a bad start directory is reported plainly.
func NewSession(provider fsutil.Provider, opts Options) (*statepkg.DirectorySession, error) {
	rules, err := fsutil.NewIgnoreRules(opts.Ignore)
	if err != nil {
		return nil, err
	}
	session, err := statepkg.NewDirectorySession(provider, opts.StartDir, statepkg.SessionOptions{
		ShowHidden: opts.ShowHidden,
		Ignore:     rules,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot start in %q: %w", opts.StartDir, err)
	}
	return session, nil
}

// NewApplication lists the start directory, then initialises the terminal.
func NewApplication(opts Options, log logrus.FieldLogger) (*Application, error) {
	provider := fsutil.NewOSProvider()
	session, err := NewSession(provider, opts)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app, err := newApplication(screen, provider, session, opts, log)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

// newApplication wires an already initialised screen; tests pass a
// simulation screen here.
func newApplication(screen tcell.Screen, provider fsutil.Provider, session *statepkg.DirectorySession, opts Options, log logrus.FieldLogger) (*Application, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}

	state := statepkg.NewAppState(session, opts.PreviewMaxBytes)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, actionBufferSize)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(provider, log),
		renderer: renderui.NewRenderer(screen, renderui.Options{Highlight: opts.Highlight, HighlightStyle: opts.HighlightStyle}),
		input:    inputHandler,
		actionCh: actionCh,
		tickRate: tickRate,
		log:      log,
	}

	if opts.Watch {
		watcher, err := newDirWatcher(log)
		if err != nil {
			// without a watcher only manual refresh updates the listing
			log.WithError(err).Warn("directory watcher unavailable")
		} else {
			app.watcher = watcher
			app.syncWatcher()
		}
	}

	log.WithFields(logrus.Fields{
		"path":  session.CurrentPath(),
		"watch": app.watcher != nil,
		"tick":  tickRate,
	}).Info("application started")
	return app, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
		app.watcher = nil
	}
	app.screen.Fini()
	return err
}

// CurrentPath returns the directory the session ended in.
func (app *Application) CurrentPath() string {
	return app.state.CurrentPath()
}

// State exposes the application state for inspection after Run returns.
func (app *Application) State() *statepkg.AppState {
	return app.state
}
