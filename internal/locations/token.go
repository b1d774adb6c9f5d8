package locations

import (
	"context"
	"sync"
)

// TokenSource tracks which query is currently authoritative. Beginning a new
// query invalidates the previous token and cancels its context, giving
// last-query-wins semantics: before applying results, callers check
// Token.Stale and silently drop superseded work. Context cancellation is a
// best-effort bandwidth optimization; the staleness check is the correctness
// mechanism.
type TokenSource struct {
	mu      sync.Mutex
	current uint64
	cancel  context.CancelFunc
}

// NewTokenSource returns a source with no active token.
func NewTokenSource() *TokenSource {
	return &TokenSource{}
}

// Token is an opaque handle for one query. Exactly one token per source is
// authoritative at a time.
type Token struct {
	source *TokenSource
	id     uint64
	ctx    context.Context
}

// Begin starts a new authoritative token, invalidating any prior one and
// cancelling its in-flight work.
func (s *TokenSource) Begin(ctx context.Context) *Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	s.current++
	queryCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	return &Token{source: s, id: s.current, ctx: queryCtx}
}

// CancelActive cancels the current token's work without starting a new one,
// e.g. when the input is cleared.
func (s *TokenSource) CancelActive() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.current++
}

// Context carries the token's cancellation signal into provider calls.
func (t *Token) Context() context.Context {
	return t.ctx
}

// Stale reports whether a newer query has superseded this token. Results
// belonging to a stale token must be discarded, never surfaced.
func (t *Token) Stale() bool {
	t.source.mu.Lock()
	defer t.source.mu.Unlock()
	return t.id != t.source.current
}

// ApplyIfCurrent runs fn only while the token is still authoritative. The
// staleness check and fn execute under the source lock, so a Begin on another
// goroutine cannot slip between the check and the apply and let a superseded
// result land after a newer one. fn must not call back into the source.
func (s *TokenSource) ApplyIfCurrent(t *Token, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.id != s.current {
		return false
	}
	fn()
	return true
}
