package components

import (
	cfg "github.com/automoto/snap-pong/config"
	"github.com/yohamta/donburi"
)

// MatchData is the explicit match context: phase, scores, rally statistics
// and the rules selected on the start screen. Singleton component - only one
// match exists at a time.
type MatchData struct {
	State cfg.MatchStateID

	LeftScore  int
	RightScore int

	RallyCount      int // paddle exchanges since the last score
	LongestRally    int
	LeftRalliesWon  int
	RightRalliesWon int

	TwoPlayer  bool
	Difficulty int // AI preset 1..3, one-player mode only
	WinTarget  int

	Winner Side // valid once State == MatchStateOver
}

var Match = donburi.NewComponentType[MatchData]()

// Score returns the score for a side.
func (m *MatchData) Score(side Side) int {
	if side == SideLeft {
		return m.LeftScore
	}
	return m.RightScore
}

// ScorePoint records a point for a side: the rally that just ended is folded
// into the longest-rally statistic and that side's rally-win count, and the
// current rally resets to zero.
func (m *MatchData) ScorePoint(side Side) {
	if m.RallyCount > m.LongestRally {
		m.LongestRally = m.RallyCount
	}
	if side == SideLeft {
		m.LeftScore++
		m.LeftRalliesWon++
	} else {
		m.RightScore++
		m.RightRalliesWon++
	}
	m.RallyCount = 0
}
