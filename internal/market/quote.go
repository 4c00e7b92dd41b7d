// Package market holds the input side of a pricing run: spot quotes and
// batch scenario files.
package market

// Quote supplies a current market value.
type Quote interface {
	Value() float64
}

// SimpleQuote is a settable in-memory quote. There is no change
// notification; callers re-price explicitly after SetValue.
type SimpleQuote struct {
	value float64
}

func NewSimpleQuote(value float64) *SimpleQuote {
	return &SimpleQuote{value: value}
}

func (q *SimpleQuote) Value() float64 {
	return q.value
}

func (q *SimpleQuote) SetValue(value float64) {
	q.value = value
}
