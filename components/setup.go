package components

// SetupData holds the start-screen selections passed from the menu scene to
// the court. Only mutable while on the start screen.
type SetupData struct {
	TwoPlayer  bool
	Difficulty int // AI preset 1..3
	WinTarget  int
}
