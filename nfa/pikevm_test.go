package nfa

import (
	"sort"
	"testing"

	"github.com/coregx/rex/syntax"
)

func mustCompile(t *testing.T, pattern string) *NFA {
	t.Helper()
	nfa, err := CompilePattern(pattern)
	if err != nil {
		t.Fatalf("CompilePattern(%q) error: %v", pattern, err)
	}
	return nfa
}

func sorted(ids []StateID) []StateID {
	out := append([]StateID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sameStates(a, b []StateID) bool {
	a, b = sorted(a), sorted(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// epsilonChain builds start -ε-> s1 -ε-> s2 -ε-> accept, so the accept
// state is three epsilon hops from the start.
func epsilonChain(t *testing.T) *NFA {
	t.Helper()
	b := NewBuilder()
	start, s1, s2, accept := b.AddState(), b.AddState(), b.AddState(), b.AddState()
	for _, e := range [][2]StateID{{start, s1}, {s1, s2}, {s2, accept}} {
		if err := b.AddEpsilon(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	b.SetStart(start)
	b.SetAccept(accept)
	nfa, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return nfa
}

// TestPikeVM_EpsilonClosureTransitive verifies closure follows every hop
func TestPikeVM_EpsilonClosureTransitive(t *testing.T) {
	nfa := epsilonChain(t)
	vm := NewPikeVM(nfa)

	got := vm.EpsilonClosure(nfa.Start())
	if !sameStates(got, []StateID{0, 1, 2, 3}) {
		t.Errorf("EpsilonClosure(start) = %v, want [0 1 2 3]", got)
	}
	if !vm.IsMatchPrefix(nil) {
		t.Error("accept three epsilon hops from start should match the empty input")
	}
	if got := vm.EpsilonClosure(InvalidState); got != nil {
		t.Errorf("EpsilonClosure(InvalidState) = %v, want nil", got)
	}
}

// TestPikeVM_EpsilonClosureCycle verifies closure terminates on epsilon cycles
func TestPikeVM_EpsilonClosureCycle(t *testing.T) {
	b := NewBuilder()
	s0, s1, s2 := b.AddState(), b.AddState(), b.AddState()
	for _, e := range [][2]StateID{{s0, s1}, {s1, s0}, {s1, s1}} {
		if err := b.AddEpsilon(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.AddEdge(s1, s2, syntax.Literal('x')); err != nil {
		t.Fatal(err)
	}
	if err := b.AddEdge(s2, s1, syntax.Literal('y')); err != nil {
		t.Fatal(err)
	}
	b.SetStart(s0)
	b.SetAccept(s2)
	nfa, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	vm := NewPikeVM(nfa)
	if got := vm.EpsilonClosure(s0); !sameStates(got, []StateID{s0, s1}) {
		t.Errorf("EpsilonClosure(s0) = %v, want [0 1]", got)
	}
	if vm.IsMatchPrefix([]byte("y")) {
		t.Error("'y' should not match")
	}
	if pos, ok := vm.Search([]byte("yyx")); !ok || pos != 2 {
		t.Errorf("Search(yyx) = %d, %v, want 2, true", pos, ok)
	}
}

// TestPikeVM_NestedAlternationClosure verifies states behind nested
// alternations are reached through several epsilon edges
func TestPikeVM_NestedAlternationClosure(t *testing.T) {
	nfa := mustCompile(t, "a|b|c|d")
	vm := NewPikeVM(nfa)

	closure := vm.EpsilonClosure(nfa.Start())
	// start plus x1/y1 for each of the three alternates
	if len(closure) != 7 {
		t.Errorf("closure size = %d, want 7: %v", len(closure), closure)
	}
	for _, in := range []string{"a", "b", "c", "d"} {
		if !vm.IsMatchPrefix([]byte(in)) {
			t.Errorf("%q should match through nested alternation", in)
		}
	}
	if vm.IsMatchPrefix([]byte("e")) {
		t.Error("'e' should not match")
	}
}

func TestPikeVM_Step(t *testing.T) {
	nfa := mustCompile(t, "ab|ac")
	vm := NewPikeVM(nfa)

	init := vm.EpsilonClosure(nfa.Start())
	afterA := vm.Step(init, 'a')
	if len(afterA) != 2 {
		t.Fatalf("Step(init, 'a') = %v, want two states", afterA)
	}
	afterC := vm.Step(afterA, 'c')
	hasAccept := false
	for _, id := range afterC {
		hasAccept = hasAccept || nfa.IsAccept(id)
	}
	if len(afterC) != 2 || !hasAccept {
		t.Errorf("Step(afterA, 'c') = %v, want branch exit and accept", afterC)
	}
	if got := vm.Step(init, 'b'); len(got) != 0 {
		t.Errorf("Step(init, 'b') = %v, want empty", got)
	}
	if got := vm.Step([]StateID{InvalidState}, 'a'); len(got) != 0 {
		t.Errorf("Step with invalid state = %v, want empty", got)
	}
}

// TestPikeVM_IsMatchPrefix verifies prefix (unanchored end) semantics
func TestPikeVM_IsMatchPrefix(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "abcdef", true},
		{"abc", "ab", false},
		{"abc", "xabc", false},
		{"abc", "", false},
		{"[^bc]", "a", true},
		{"[^bc]", "b", false},
		{"[^bc]", "c", false},
		{"[^bc]", "é", true},
		{"a|bc", "bcx", true},
		{"a|bc", "b", false},
		{"[]", "a", false},
		{".", "\n", true},
		{`\d`, "7", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			vm := NewPikeVM(mustCompile(t, tt.pattern))
			if got := vm.IsMatchPrefix([]byte(tt.input)); got != tt.want {
				t.Errorf("IsMatchPrefix(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestPikeVM_Search verifies leftmost rune offsets
func TestPikeVM_Search(t *testing.T) {
	tests := []struct {
		pattern  string
		haystack string
		want     int // -1 for no match
	}{
		{"abc", "xabcx", 1},
		{"abc", "ab", -1},
		{"abc", "abc", 0},
		{"abc", "xyz", -1},
		{"abc", "", -1},
		{"aabbaa|b", "aabbab", 0},
		{"aabbaa|b", "ac", -1},
		{"a[ab]", "aa", 0},
		{"a[ab]", "ab", 0},
		{"a[bc]a", "aba", 0},
		{"a[bc]a", "ab", -1},
		{"a[bc]a", "ba", -1},
		{"a[bc]", "", -1},
		{"a.b", "axb", 0},
		{"a.b", "a.b", 0},
		{"a.b", "aaxb", 1},
		{"a.b", "ab", -1},
		{".", " ", 0},
		{".", "", -1},
		{`\d`, "++123abc7123abc++", 2},
		{`\d`, "a", -1},
		{`123abc\d123abc`, "++123abc7123abc++", 2},
		{`123abc\d123abc`, "++123abc+123abc++", -1},
		{`\D`, "11", -1},
		{`\D`, "123abc7123abc", 3},
		{`\D`, "++123abc7123abc++", 0},
		{`123abc\D123abc`, "123abcX123abc", 0},
		{`123abc\D123abc`, "123abc7123abc", -1},
		{`a|\d`, "x73ax", 1},
		{`\d|a`, "x73ax", 1},
		{`\d|a`, "a", 0},
		{`+\s+\l+\u+\S+\L+\U+`, "+ + + + + + +", -1},
		{`+\s+\l+\u+\S+\L+\U+`, "+ +v+V+x+V+v+", 0},
		// offsets count runes, not bytes
		{"c", "ééc", 2},
		{"é", "aé", 1},
		// invalid bytes are one rune each
		{"z", "\xff\xfez", 2},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.haystack, func(t *testing.T) {
			vm := NewPikeVM(mustCompile(t, tt.pattern))
			got, ok := vm.Search([]byte(tt.haystack))
			if tt.want < 0 {
				if ok {
					t.Errorf("Search(%q) = %d, want no match", tt.haystack, got)
				}
				return
			}
			if !ok || got != tt.want {
				t.Errorf("Search(%q) = %d, %v, want %d", tt.haystack, got, ok, tt.want)
			}
		})
	}
}

// TestPikeVM_ConcatAssociativity verifies tree shape does not change results
func TestPikeVM_ConcatAssociativity(t *testing.T) {
	a := syntax.Char(syntax.Literal('a'))
	b := syntax.Char(syntax.Literal('b'))
	c := syntax.Char(syntax.Literal('c'))
	right := syntax.Concat(a, syntax.Concat(b, c))

	a2 := syntax.Char(syntax.Literal('a'))
	b2 := syntax.Char(syntax.Literal('b'))
	c2 := syntax.Char(syntax.Literal('c'))
	left := syntax.Concat(syntax.Concat(a2, b2), c2)

	nr, err := Compile(right)
	if err != nil {
		t.Fatal(err)
	}
	nl, err := Compile(left)
	if err != nil {
		t.Fatal(err)
	}
	vr, vl := NewPikeVM(nr), NewPikeVM(nl)

	for _, h := range []string{"abc", "xabcx", "ab", "", "aabc", "abab", "cba", "zzzabc"} {
		pr, okr := vr.Search([]byte(h))
		pl, okl := vl.Search([]byte(h))
		if pr != pl || okr != okl {
			t.Errorf("Search(%q): right-nested (%d, %v) != left-nested (%d, %v)", h, pr, okr, pl, okl)
		}
	}
}

func TestPikeVM_SearchFromAndMatchesAt(t *testing.T) {
	vm := NewPikeVM(mustCompile(t, "ab"))
	h := []byte("abxab")

	if pos, ok := vm.SearchFrom(h, 1, 1); !ok || pos != 3 {
		t.Errorf("SearchFrom(1) = %d, %v, want 3", pos, ok)
	}
	if _, ok := vm.SearchFrom(h, 4, 4); ok {
		t.Error("SearchFrom(4) should not match")
	}
	if !vm.MatchesAt(h, 3) || vm.MatchesAt(h, 2) || vm.MatchesAt(h, -1) || vm.MatchesAt(h, 99) {
		t.Error("MatchesAt disagrees with haystack contents")
	}
}
