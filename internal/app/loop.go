package app

import (
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
)

// Run owns the state until the user quits. Terminal events and watcher
// notifications arrive on channels; each resulting action is reduced to
// completion before the next one is taken.
func (app *Application) Run() {
	app.render()
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				// screen finalised
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	ticker := time.NewTicker(app.tickRate)
	defer ticker.Stop()

	for !app.done() {
		if renderPending {
			app.render()
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-ticker.C:
			app.handleAction(statepkg.TickAction{})
		case dir := <-app.watcher.Changes():
			if app.handleAction(statepkg.DirectoryChangedAction{Path: dir}) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
		app.syncWatcher()
	}

	app.log.WithField("path", app.CurrentPath()).Info("application stopped")
}

func (app *Application) done() bool {
	return app.shouldQuit || app.state.Quit
}

func (app *Application) render() {
	app.renderer.Render(app.state.View())
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			app.screen.Sync()
		}
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

// handleAction applies one action and reports whether a redraw is needed.
func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.TickAction:
		_, _ = app.reducer.Reduce(app.state, action)
		return false
	case statepkg.SuspendAction:
		if app.state.Mode != statepkg.ModeBrowsing {
			return false
		}
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.log.WithError(err).Error("reduce failed")
		app.state.LastError = err
	}
	return true
}

// syncWatcher follows the session into whatever directory it is in now.
func (app *Application) syncWatcher() {
	if app.watcher == nil {
		return
	}
	path := app.state.CurrentPath()
	if path == app.watchedPath {
		return
	}
	app.watchedPath = path
	if err := app.watcher.Watch(path); err != nil {
		app.log.WithFields(logrus.Fields{"path": path}).WithError(err).Debug("not watching directory")
	}
}
