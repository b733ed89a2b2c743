package config

// MatchStateID represents the current phase of a match
type MatchStateID int

const (
	MatchStateStart MatchStateID = iota
	MatchStatePlaying
	MatchStatePaused
	MatchStateOver
)
