package state

// Mode is the input mode of the interaction controller.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeTextEntry
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeTextEntry:
		return "text-entry"
	default:
		return "unknown"
	}
}

// AppState holds everything the control loop owns. Only the reducer mutates
// it; the renderer reads it through View.
type AppState struct {
	Session *DirectorySession

	Mode    Mode
	Input   string
	Pending *PendingAction

	LastError error
	Preview   *Preview
	Status    string

	HelpVisible  bool
	ScreenWidth  int
	ScreenHeight int

	PreviewMaxBytes int64
	Quit            bool
}

// NewAppState starts in Browsing mode over session.
func NewAppState(session *DirectorySession, previewMaxBytes int64) *AppState {
	if previewMaxBytes <= 0 {
		previewMaxBytes = DefaultPreviewMaxBytes
	}
	return &AppState{
		Session:         session,
		Mode:            ModeBrowsing,
		PreviewMaxBytes: previewMaxBytes,
	}
}

// CurrentPath is a shortcut for the session's directory.
func (s *AppState) CurrentPath() string {
	if s.Session == nil {
		return ""
	}
	return s.Session.CurrentPath()
}

func (s *AppState) enterTextEntry(pending *PendingAction) {
	s.Mode = ModeTextEntry
	s.Input = ""
	s.Pending = pending
}

func (s *AppState) leaveTextEntry() {
	s.Mode = ModeBrowsing
	s.Input = ""
	s.Pending = nil
}
