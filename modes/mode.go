package modes

// Mode is the keyboard interaction state.
type Mode uint8

const (
	ModeNav Mode = iota
	ModeInsert
	ModeSelect
	ModeCommand
)

// String returns the lowercase mode name used by the status bar and
// the theme palette lookups.
func (m Mode) String() string {
	switch m {
	case ModeNav:
		return "nav"
	case ModeInsert:
		return "insert"
	case ModeSelect:
		return "select"
	case ModeCommand:
		return "command"
	}
	return "unknown"
}
