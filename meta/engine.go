package meta

import (
	"sync/atomic"

	"github.com/coregx/rex/literal"
	"github.com/coregx/rex/nfa"
	"github.com/coregx/rex/prefilter"
	"github.com/coregx/rex/syntax"
)

// Engine is a compiled pattern with its selected search strategy.
//
// An Engine is immutable after compilation except for its statistics and
// is safe for concurrent use: mutable search state comes from a pool.
//
// Example:
//
//	engine, err := meta.Compile(`hello|\d`)
//	if err != nil {
//	    return err
//	}
//	pos, ok := engine.Search([]byte("say hello"))
type Engine struct {
	pattern   string
	nfa       *nfa.NFA
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config
	pool      *searchStatePool
	stats     Stats
}

// Stats tracks execution statistics for performance analysis.
// Counters are updated atomically.
type Stats struct {
	// NFASearches counts searches that restarted the PikeVM at every offset
	NFASearches uint64

	// PrefilterSearches counts searches driven by the prefilter
	PrefilterSearches uint64

	// PrefilterHits counts prefilter candidates that were matches
	PrefilterHits uint64

	// PrefilterMisses counts prefilter candidates that didn't match
	PrefilterMisses uint64
}

// Compile parses and compiles pattern with DefaultConfig.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig parses and compiles pattern with a custom configuration.
//
// Parse failures are returned as *syntax.Error, invalid configurations as
// *ConfigError.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	root, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	automaton, err := nfa.Compile(root)
	if err != nil {
		if ce, ok := err.(*nfa.CompileError); ok {
			ce.Pattern = pattern
		}
		return nil, err
	}

	var pf prefilter.Prefilter
	if config.EnablePrefilter {
		extractor := literal.New(literal.ExtractorConfig{
			MaxLiterals:   config.MaxLiterals,
			MaxLiteralLen: config.MaxLiteralLen,
			MaxClassSize:  config.MaxClassSize,
		})
		pf = prefilter.NewBuilder(extractor.ExtractPrefixes(root)).Build()
	}

	return &Engine{
		pattern:   pattern,
		nfa:       automaton,
		prefilter: pf,
		strategy:  selectStrategy(pf),
		config:    config,
		pool:      newSearchStatePool(automaton),
	}, nil
}

// Pattern returns the source text the engine was compiled from.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the execution strategy selected for this engine.
//
// Example:
//
//	engine, _ := meta.Compile("foo|bar")
//	fmt.Println(engine.Strategy()) // UseLiteral
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// NFA returns the compiled automaton.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// Prefilter returns the prefilter in use, or nil for UseNFA.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Config returns the configuration the engine was compiled with.
func (e *Engine) Config() Config {
	return e.config
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		NFASearches:       atomic.LoadUint64(&e.stats.NFASearches),
		PrefilterSearches: atomic.LoadUint64(&e.stats.PrefilterSearches),
		PrefilterHits:     atomic.LoadUint64(&e.stats.PrefilterHits),
		PrefilterMisses:   atomic.LoadUint64(&e.stats.PrefilterMisses),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.NFASearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterSearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterHits, 0)
	atomic.StoreUint64(&e.stats.PrefilterMisses, 0)
}
