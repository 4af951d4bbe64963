package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/kr/pretty"
)

// This converts arbitrary pointers into random readable names. Names are
// generated lazily, and owners that come and go (like simplices) must Forget
// their name when they die, or the memo keeps them alive. Simplex ids are just integers, and a
// log full of "simplex 4711 replaced by 4790" is much harder to follow than
// one full of adjective-name pairs.

var (
	mu   sync.Mutex
	memo map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Drop the name of obj, if it has one.
func Forget(obj interface{}) {
	mu.Lock()
	defer mu.Unlock()
	delete(memo, obj)
}

// Number of names currently held.
func Count() int {
	mu.Lock()
	defer mu.Unlock()
	return len(memo)
}

// Multi-line dump of any value, for debugging output and test failures.
func Dump(v interface{}) string {
	return pretty.Sprint(v)
}
