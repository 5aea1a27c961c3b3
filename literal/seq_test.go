package literal

import (
	"bytes"
	"testing"
)

// TestLiteralBasic tests basic Literal type functionality
func TestLiteralBasic(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		complete bool
		wantLen  int
		wantStr  string
	}{
		{"simple complete literal", []byte("hello"), true, 5, "literal{hello, complete=true}"},
		{"incomplete literal", []byte("test"), false, 4, "literal{test, complete=false}"},
		{"empty literal", []byte{}, true, 0, "literal{, complete=true}"},
		{"multibyte", []byte("é"), true, 2, "literal{é, complete=true}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := NewLiteral(tt.bytes, tt.complete)
			if got := lit.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := lit.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestSeqFiniteness(t *testing.T) {
	var nilSeq *Seq
	if nilSeq.IsFinite() || nilSeq.Len() != 0 || !nilSeq.IsEmpty() {
		t.Error("nil Seq should be empty and not finite")
	}

	inf := NewInfiniteSeq()
	if inf.IsFinite() || inf.AllComplete() {
		t.Error("infinite Seq should be neither finite nor complete")
	}
	if inf.String() != "[inf]" {
		t.Errorf("String() = %q, want [inf]", inf.String())
	}

	empty := NewSeq()
	if !empty.IsFinite() || !empty.IsEmpty() || empty.AllComplete() {
		t.Error("empty finite Seq: want finite, empty, not AllComplete")
	}
}

func TestSeqAllComplete(t *testing.T) {
	tests := []struct {
		name string
		seq  *Seq
		want bool
	}{
		{"all complete", NewSeq(NewLiteral([]byte("a"), true), NewLiteral([]byte("b"), true)), true},
		{"one prefix", NewSeq(NewLiteral([]byte("a"), true), NewLiteral([]byte("b"), false)), false},
		{"single prefix", NewSeq(NewLiteral([]byte("a"), false)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq.AllComplete(); got != tt.want {
				t.Errorf("AllComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeqMinimize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"no redundancy", []string{"foo", "bar"}, []string{"foo", "bar"}},
		{"prefix removes longer", []string{"foobar", "foo"}, []string{"foo"}},
		{"chain", []string{"abc", "ab", "a", "b"}, []string{"a", "b"}},
		{"duplicates", []string{"x", "x"}, []string{"x"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lits := make([]Literal, len(tt.input))
			for i, s := range tt.input {
				lits[i] = NewLiteral([]byte(s), true)
			}
			seq := NewSeq(lits...)
			seq.Minimize()

			if seq.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d (%s)", seq.Len(), len(tt.want), seq)
			}
			for i, w := range tt.want {
				if got := string(seq.Get(i).Bytes); got != w {
					t.Errorf("Get(%d) = %q, want %q", i, got, w)
				}
			}
		})
	}
}

func TestSeqDedupMergesCompleteness(t *testing.T) {
	seq := NewSeq(
		NewLiteral([]byte("ab"), false),
		NewLiteral([]byte("cd"), true),
		NewLiteral([]byte("ab"), true),
	)
	seq.dedup()
	if seq.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", seq.Len())
	}
	if !seq.Get(0).Complete {
		t.Error("duplicate with a complete copy should be complete")
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{"shared", []string{"hello", "help", "helm"}, "hel"},
		{"identical", []string{"abc", "abc"}, "abc"},
		{"none", []string{"abc", "xyz"}, ""},
		{"one is prefix", []string{"ab", "abc"}, "ab"},
		{"single", []string{"solo"}, "solo"},
		{"empty seq", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lits := make([]Literal, len(tt.input))
			for i, s := range tt.input {
				lits[i] = NewLiteral([]byte(s), true)
			}
			got := NewSeq(lits...).LongestCommonPrefix()
			if string(got) != tt.want {
				t.Errorf("LongestCommonPrefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeqClone(t *testing.T) {
	orig := NewSeq(NewLiteral([]byte("abc"), true))
	clone := orig.Clone()
	clone.literals[0].Bytes[0] = 'z'
	clone.literals[0].Complete = false

	if !bytes.Equal(orig.Get(0).Bytes, []byte("abc")) || !orig.Get(0).Complete {
		t.Error("Clone shares state with the original")
	}
	if NewInfiniteSeq().Clone().IsFinite() {
		t.Error("Clone of an infinite Seq should stay infinite")
	}
	var nilSeq *Seq
	if nilSeq.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestSeqLengths(t *testing.T) {
	seq := NewSeq(
		NewLiteral([]byte("a"), true),
		NewLiteral([]byte("abcd"), true),
		NewLiteral([]byte("ab"), false),
	)
	if seq.MinLen() != 1 || seq.MaxLen() != 4 {
		t.Errorf("MinLen/MaxLen = %d/%d, want 1/4", seq.MinLen(), seq.MaxLen())
	}
	if got := seq.String(); got != `["a"* "abcd"* "ab"]` {
		t.Errorf("String() = %s", got)
	}
	if NewSeq().MinLen() != 0 {
		t.Error("MinLen of empty Seq should be 0")
	}
}

func BenchmarkMinimize(b *testing.B) {
	lits := make([]Literal, 0, 64)
	for i := 0; i < 64; i++ {
		lits = append(lits, NewLiteral([]byte{byte('a' + i%26), byte('a' + i/26)}, true))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq := NewSeq(append([]Literal(nil), lits...)...)
		seq.Minimize()
	}
}
