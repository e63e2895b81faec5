package textstats

import (
	"errors"
	"math"
)

// ErrCounterOverflow is the panic value raised when a counter would wrap.
var ErrCounterOverflow = errors.New("textstats: counter overflow")

func addCount(a, b int) int {
	if a > math.MaxInt-b {
		panic(ErrCounterOverflow)
	}
	return a + b
}
