//go:build windows

package app

// Windows has no SIGTSTP/SIGCONT, so suspending is a no-op there.
func (app *Application) suspendToShell() {
	app.log.Debug("suspend is not supported on windows")
}

func (app *Application) resumeAfterStop() bool {
	return false
}
