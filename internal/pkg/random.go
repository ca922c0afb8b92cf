package pkg

import (
	"crypto/rand"
	"math/big"
)

// Random picks integers and can be replaced in tests.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

type cryptoRandom struct{}

func NewRandom() Random {
	return &cryptoRandom{}
}

func (that *cryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}

	return int(result.Int64())
}

// SequenceRandom replays a fixed sequence of results, then returns 0.
type SequenceRandom struct {
	results []int
	next    int
}

func NewSequenceRandom(results ...int) *SequenceRandom {
	return &SequenceRandom{results: results}
}

func (that *SequenceRandom) Intn(n int) int {
	if that.next >= len(that.results) {
		return 0
	}

	result := that.results[that.next]
	that.next++

	if n <= 0 {
		return 0
	}

	return result % n
}
