package entity

type Outcome string

const (
	OutcomePlayerWin  Outcome = "player_win"
	OutcomeBotWin     Outcome = "bot_win"
	OutcomeDraw       Outcome = "draw"
	OutcomeInProgress Outcome = "in_progress"
)

func (that Outcome) IsTerminal() bool {
	return that == OutcomePlayerWin || that == OutcomeBotWin || that == OutcomeDraw
}

// Marks assigns a symbol to each side of a single-player game.
type Marks struct {
	Player string `json:"player"`
	Bot    string `json:"bot"`
}

func DefaultMarks() Marks {
	return Marks{Player: PlayerX, Bot: PlayerO}
}

// Result is the verdict on a board. Line is the index into WinLines of the matched line, or -1.
type Result struct {
	Outcome Outcome
	Line    int
}

// WinningCells returns the cells of the matched line, nil when nobody has won.
func (that Result) WinningCells() []int {
	if that.Line < 0 {
		return nil
	}

	line := WinLines[that.Line]

	return []int{line[0], line[1], line[2]}
}

// Evaluate decides whether the board is won by either side, drawn, or still open.
func Evaluate(board *Board, marks Marks) Result {
	winner, line := board.Winner()

	switch {
	case line >= 0 && winner == marks.Bot:
		return Result{Outcome: OutcomeBotWin, Line: line}
	case line >= 0 && winner == marks.Player:
		return Result{Outcome: OutcomePlayerWin, Line: line}
	case board.IsFull():
		return Result{Outcome: OutcomeDraw, Line: -1}
	default:
		return Result{Outcome: OutcomeInProgress, Line: -1}
	}
}
