package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts triangle and vertex indices into random readable names.
// Index-based adjacency is compact but miserable to eyeball in a debugger;
// "TriangleBraveMarmot" beats "triangle 241". Names are memoized per kind
// and index, and are nondeterministic between runs to remind the user that
// the same name doesn't refer to the same slot after compaction.

var memo map[string]string

func init() {
	memo = make(map[string]string)
	petname.NonDeterministicMode()
}

func Name(kind string, index int) string {
	if index < 0 {
		return "Ø"
	}
	key := fmt.Sprintf("%s/%d", kind, index)
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s%s", strings.Title(kind), strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
