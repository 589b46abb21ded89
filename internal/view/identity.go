package view

import "github.com/google/uuid"

// Identity supplies the signed-in employee. A screen issues no query when it reports none.
type Identity interface {
	EmployeeID() (uuid.UUID, bool)
}

// tokens hands out monotonically increasing request tokens; callers hold the screen lock
type tokens struct {
	latest uint64
}

func (t *tokens) next() uint64 {
	t.latest++
	return t.latest
}

func (t *tokens) current(token uint64) bool {
	return token == t.latest
}
