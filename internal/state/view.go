package state

import "fmt"

// EntryView is one row of the listing as the renderer sees it.
type EntryView struct {
	Name      string
	IsDir     bool
	IsSymlink bool
	IsHidden  bool
}

// View is a read-only snapshot of AppState for rendering.
type View struct {
	Path     string
	Entries  []EntryView
	Selected int // -1 when nothing is selected

	Mode   Mode
	Input  string
	Prompt string

	Panel        string
	PanelTitle   string
	PanelIsError bool
	Language     string

	Status      string
	HelpVisible bool
	ShowHidden  bool
}

// View builds the render snapshot. The main panel shows the last error when
// there is one, otherwise the last preview, otherwise nothing.
func (s *AppState) View() View {
	v := View{
		Path:        s.CurrentPath(),
		Selected:    -1,
		Mode:        s.Mode,
		Input:       s.Input,
		Status:      s.Status,
		HelpVisible: s.HelpVisible,
	}

	if s.Session != nil {
		items := s.Session.Entries().Items()
		v.Entries = make([]EntryView, len(items))
		for i, e := range items {
			v.Entries[i] = EntryView{
				Name:      e.Name,
				IsDir:     e.IsDir,
				IsSymlink: e.IsSymlink,
				IsHidden:  e.IsHidden(),
			}
		}
		if idx, ok := s.Session.Entries().Selected(); ok {
			v.Selected = idx
		}
		v.ShowHidden = s.Session.ShowHidden()
	}

	if s.Mode == ModeTextEntry {
		v.Prompt = s.Pending.Prompt()
	}

	v.PanelTitle, v.Panel, v.PanelIsError = s.MainPanel()
	if !v.PanelIsError && s.Preview != nil {
		v.Language = s.Preview.Language
	}
	return v
}

// MainPanel resolves what the right-hand panel displays: error beats
// preview, preview beats empty.
func (s *AppState) MainPanel() (title, body string, isError bool) {
	switch {
	case s.LastError != nil:
		return "Error", s.LastError.Error(), true
	case s.Preview != nil:
		return fmt.Sprintf("%s (%d bytes)", s.Preview.Name, s.Preview.Size), s.Preview.Content, false
	default:
		return "", "", false
	}
}
