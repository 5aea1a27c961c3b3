package meta

import (
	"sync"

	"github.com/coregx/rex/nfa"
)

// searchState holds per-search mutable state so that one compiled Engine
// can be used from many goroutines.
//
// Usage pattern:
//
//	state := e.pool.get()
//	defer e.pool.put(state)
//	// use state.pikevm
//
// A searchState is NOT thread-safe; each goroutine takes its own from the pool.
type searchState struct {
	// pikevm owns the active-state sets mutated by every step, so whole
	// PikeVM instances are pooled.
	pikevm *nfa.PikeVM
}

// searchStatePool manages searchState reuse, following the stdlib regexp
// pattern of a sync.Pool per compiled program.
type searchStatePool struct {
	pool sync.Pool
}

func newSearchStatePool(automaton *nfa.NFA) *searchStatePool {
	p := &searchStatePool{}
	p.pool = sync.Pool{
		New: func() any {
			return &searchState{pikevm: nfa.NewPikeVM(automaton)}
		},
	}
	return p
}

// get retrieves a searchState from the pool, creating one if necessary.
func (p *searchStatePool) get() *searchState {
	return p.pool.Get().(*searchState)
}

// put returns a searchState to the pool. The PikeVM clears its own sets at
// the start of each search, so no reset is needed here.
func (p *searchStatePool) put(state *searchState) {
	if state == nil {
		return
	}
	p.pool.Put(state)
}
