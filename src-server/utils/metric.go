package utils

type Metric struct {
	DatabaseRead  chan float64
	DatabaseWrite chan float64
	LinkGenerated chan string
}

func NewMetric() *Metric {
	return &Metric{
		DatabaseRead:  make(chan float64),
		DatabaseWrite: make(chan float64),
		LinkGenerated: make(chan string),
	}
}

// Report without blocking; drops the value when no metric loop is listening
// (e.g. in tests).
func Report[T any](ch chan T, value T) {
	select {
	case ch <- value:
	default:
	}
}
