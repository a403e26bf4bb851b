package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. This is helpful for telling apart the swarm of
// segments and events a sweep produces when debugging; a pointer string
// tells you nothing, "ProudHeron" sticks.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Names formats a list of named things, e.g. "[ProudHeron, DearCatfish]".
// Handy for dumping a coincidence class or a run of status neighbors.
func Names(objs ...interface{}) string {
	parts := make([]string, 0, len(objs))
	for _, obj := range objs {
		parts = append(parts, Name(obj))
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
