package step

import (
	"sort"
	"strconv"
)

// Structure is a snapshot of a visualised data structure.
type Structure interface {
	// Clone returns a deep copy sharing no mutable storage with the receiver.
	Clone() Structure
	Kind() string
}

// Role names the part an element plays in a step.
type Role string

const (
	RoleCompared Role = "compared"
	RoleSwapped  Role = "swapped"
	RoleSorted   Role = "sorted"
	RoleActive   Role = "active"
	RoleVisited  Role = "visited"
	RoleFound    Role = "found"
	RoleFrontier Role = "frontier"
	RoleLow      Role = "low"
	RoleMid      Role = "mid"
	RoleHigh     Role = "high"
	RoleInserted Role = "inserted"
	RoleRemoved  Role = "removed"
	RoleUpdated  Role = "updated"
	RoleFront    Role = "front"
	RoleRear     Role = "rear"
	RoleKey      Role = "key"
	RolePointer  Role = "pointer"
)

// Highlights maps a role to the identifiers of the elements holding it.
// Identifiers are decimal indices for array-backed structures, node ids for
// linked structures and labels for graphs. Order within a role is kept.
type Highlights map[Role][]string

// Has reports whether id holds role.
func (h Highlights) Has(role Role, id string) bool {
	for _, v := range h[role] {
		if v == id {
			return true
		}
	}
	return false
}

// Roles returns the roles present, sorted by name.
func (h Highlights) Roles() []Role {
	roles := make([]Role, 0, len(h))
	for r, ids := range h {
		if len(ids) > 0 {
			roles = append(roles, r)
		}
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Clone returns a deep copy.
func (h Highlights) Clone() Highlights {
	c := make(Highlights, len(h))
	for r, ids := range h {
		c[r] = append([]string(nil), ids...)
	}
	return c
}

// Mark assigns a role to a set of identifiers.
type Mark struct {
	Role Role
	IDs  []string
}

// On builds a Mark.
func On(role Role, ids ...string) Mark {
	return Mark{Role: role, IDs: ids}
}

// Idx renders indices as identifiers.
func Idx(indices ...int) []string {
	ids := make([]string, len(indices))
	for i, v := range indices {
		ids[i] = strconv.Itoa(v)
	}
	return ids
}

// Span renders the half-open index range [from, to) as identifiers.
func Span(from, to int) []string {
	if to <= from {
		return nil
	}
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, strconv.Itoa(i))
	}
	return ids
}

func highlightsOf(marks []Mark) Highlights {
	h := make(Highlights, len(marks))
	for _, m := range marks {
		if len(m.IDs) == 0 {
			continue
		}
		h[m.Role] = append(h[m.Role], m.IDs...)
	}
	return h
}

// Step is one replayable frame of an operation.
type Step struct {
	State      Structure
	Highlights Highlights
	Message    string
	// Err is non-nil only on the single step of a rejected operation.
	Err error
}

// IsDiagnostic reports whether the step reports a rejected operation.
func (s Step) IsDiagnostic() bool {
	return s.Err != nil
}

// Sequence is the ordered list of steps produced by one operation.
// Index 0 is the pre-operation state.
type Sequence []Step

// Len returns the number of steps.
func (q Sequence) Len() int { return len(q) }

// First returns the pre-operation step.
func (q Sequence) First() Step {
	if len(q) == 0 {
		return Step{}
	}
	return q[0]
}

// Last returns the terminal step.
func (q Sequence) Last() Step {
	if len(q) == 0 {
		return Step{}
	}
	return q[len(q)-1]
}

// Diagnosed reports whether the sequence is a single diagnostic step.
func (q Sequence) Diagnosed() bool {
	return len(q) == 1 && q[0].IsDiagnostic()
}

// Err returns the diagnostic of a rejected operation, or nil.
func (q Sequence) Err() error {
	if q.Diagnosed() {
		return q[0].Err
	}
	return nil
}

// Messages returns the message of every step in order.
func (q Sequence) Messages() []string {
	out := make([]string, len(q))
	for i, s := range q {
		out[i] = s.Message
	}
	return out
}
