package meta

import (
	"sync/atomic"
	"unicode/utf8"
)

// Search returns the leftmost rune offset at which a match starts, or
// (-1, false) if there is none.
//
// A match at offset i means some prefix of the input that begins at the
// i-th rune is accepted. Offsets count decoded runes; each invalid UTF-8
// byte counts as one rune.
func (e *Engine) Search(haystack []byte) (int, bool) {
	switch e.strategy {
	case UsePrefilter, UseLiteral:
		return e.searchPrefilter(haystack)
	default:
		return e.searchNFA(haystack)
	}
}

// IsMatch reports whether a match starts anywhere in haystack.
func (e *Engine) IsMatch(haystack []byte) bool {
	_, ok := e.Search(haystack)
	return ok
}

// searchNFA restarts the PikeVM at every rune offset.
func (e *Engine) searchNFA(haystack []byte) (int, bool) {
	atomic.AddUint64(&e.stats.NFASearches, 1)

	state := e.pool.get()
	defer e.pool.put(state)
	return state.pikevm.Search(haystack)
}

// searchPrefilter visits only prefilter candidates.
//
// Every prefix literal is non-empty, so a match cannot start at the end of
// input and no position between two candidates can start one either.
// Candidates lie on rune boundaries, so counting runes between them gives
// the same offsets the NFA strategy reports.
func (e *Engine) searchPrefilter(haystack []byte) (int, bool) {
	atomic.AddUint64(&e.stats.PrefilterSearches, 1)

	var state *searchState
	defer func() {
		e.pool.put(state)
	}()

	at, runes := 0, 0
	for {
		pos := e.prefilter.Find(haystack, at)
		if pos < 0 {
			return -1, false
		}
		runes += utf8.RuneCount(haystack[at:pos])
		at = pos

		if e.strategy == UseLiteral {
			atomic.AddUint64(&e.stats.PrefilterHits, 1)
			return runes, true
		}

		if state == nil {
			state = e.pool.get()
		}
		if state.pikevm.MatchesAt(haystack, pos) {
			atomic.AddUint64(&e.stats.PrefilterHits, 1)
			return runes, true
		}
		atomic.AddUint64(&e.stats.PrefilterMisses, 1)

		_, width := utf8.DecodeRune(haystack[pos:])
		at += width
		runes++
	}
}

// MatchesAt reports whether a match starts exactly at byte offset at.
// With at == 0 this is the prefix-anchored check of the whole input.
func (e *Engine) MatchesAt(haystack []byte, at int) bool {
	state := e.pool.get()
	defer e.pool.put(state)
	return state.pikevm.MatchesAt(haystack, at)
}
