package domain

// RawQuote is the value reported by an upstream feed for a feed identifier:
// the real price is Magnitude×10^Exponent. Quotes are read fresh on every
// request and never cached by this layer.
type RawQuote struct {
	Magnitude int64
	Exponent  int32
}
