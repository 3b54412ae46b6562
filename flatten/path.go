package flatten

import (
	"strconv"
	"strings"
)

// Path is a dotted instance path accumulated while walking the instance
// graph, e.g. {"m", "f", "q"} renders as "m.f.q".
type Path []string

// Child returns a copy of p with name appended.
func (p Path) Child(name string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = name
	return out
}

// Indexed returns a copy of p with its last segment subscripted by the
// 1-based index i, e.g. Path{"m", "v"}.Indexed(1) renders as "m.v[1]".
// A no-op on an empty path.
func (p Path) Indexed(i int) Path {
	if len(p) == 0 {
		return p
	}
	out := make(Path, len(p))
	copy(out, p)
	out[len(p)-1] = out[len(p)-1] + "[" + strconv.Itoa(i) + "]"
	return out
}

// Parent drops the last segment. A component's own value expression
// resolves in its enclosing class's scope, not its own, so expression
// rendering within a declaration uses the parent path as its rewrite
// prefix.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}

func (p Path) String() string {
	return strings.Join([]string(p), ".")
}
