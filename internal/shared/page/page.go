package page

import "strconv"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is the offset/limit window the list endpoints page with.
type Params struct {
	Offset int
	Limit  int
}

// Parse reads offset/limit query values, falling back to the defaults
// and clamping nonsense input.
func Parse(offset, limit string) Params {
	p := Params{Offset: 0, Limit: DefaultLimit}
	if v, err := strconv.Atoi(offset); err == nil && v > 0 {
		p.Offset = v
	}
	if v, err := strconv.Atoi(limit); err == nil && v > 0 {
		p.Limit = v
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
