package entity

// Stats counts finished games from the human player's point of view.
type Stats struct {
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Draws       int `json:"draws"`
	GamesPlayed int `json:"games_played"`
}

// Add counts one finished game. Non-terminal outcomes are ignored.
func (that *Stats) Add(outcome Outcome) {
	switch outcome {
	case OutcomePlayerWin:
		that.Wins++
	case OutcomeBotWin:
		that.Losses++
	case OutcomeDraw:
		that.Draws++
	default:
		return
	}

	that.GamesPlayed++
}

// Field names the counter incremented for outcome, empty for non-terminal outcomes.
func (that Outcome) Field() string {
	switch that {
	case OutcomePlayerWin:
		return "wins"
	case OutcomeBotWin:
		return "losses"
	case OutcomeDraw:
		return "draws"
	default:
		return ""
	}
}
