//go:build !windows

package app

import (
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func (app *Application) suspendToShell() {
	// Return terminal control to the shell before stopping the process.
	if err := app.screen.Suspend(); err != nil {
		app.log.WithError(err).Warn("cannot suspend screen")
		return
	}
	app.log.Debug("suspending to shell")
	// Stop only this process, not the whole process group, so job control
	// in the launching shell keeps working.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		return false
	}
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.state.ScreenWidth = w
		app.state.ScreenHeight = h
	}
	// the directory may have changed while we were stopped
	if err := app.state.Session.Refresh(); err != nil {
		app.log.WithError(err).Warn("refresh after resume failed")
		app.state.LastError = err
	}
	return true
}
