package entity

import (
	"fmt"
	"strings"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 9
)

// Line is a triple of cell indices that wins when all three hold the same mark.
type Line [3]int

// WinLines lists rows, then columns, then diagonals. Bots rely on this order for tie-breaks.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major.
type Board [BoardSize]string

// Winner returns the mark owning the first completed line and that line's position in WinLines.
// The index is -1 when no line is complete.
func (that *Board) Winner() (string, int) {
	for i, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a, i
		}
	}

	return EmptyCell, -1
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells returns the indices of free cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Board) String() string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			mark := that[idx]
			if mark == EmptyCell {
				mark = fmt.Sprint(idx)
			}

			sb.WriteString(" " + mark + " ")
			if col < 2 {
				sb.WriteString("|")
			}
		}

		if row < 2 {
			sb.WriteString("\n---+---+---\n")
		}
	}

	return sb.String()
}
