// Package state holds the client's in-memory domain stores.
//
// Each store owns one slice of application data and follows the same
// pattern: synchronous local mutators, asynchronous operations that call
// the REST API and then apply at most one merge, and pure selectors
// recomputed from current state on every read.
//
// Stores are safe for concurrent use; every access serializes on the
// store's mutex. Wholesale replaces coming back from a fetch are versioned:
// a fetch result is discarded when a later fetch was issued or any local
// mutation landed while the request was in flight, so a stale response can
// never clobber newer state.
package state

import "github.com/vowsync/vowsync/internal/api"

// State is the root container composing the five domain stores. It is
// constructed once at startup and passed by reference; there is no ambient
// global.
type State struct {
	Todos   *TodoStore
	Budget  *BudgetStore
	Guests  *GuestsStore
	Wedding *WeddingStore
	Auth    *AuthStore
}

// New builds the root state over the given API client.
func New(client *api.Client) *State {
	return &State{
		Todos:   NewTodoStore(client),
		Budget:  NewBudgetStore(client),
		Guests:  NewGuestsStore(client),
		Wedding: NewWeddingStore(client),
		Auth:    NewAuthStore(),
	}
}

// revisions tracks fetch supersession for one store. All methods must be
// called with the owning store's mutex held.
type revisions struct {
	fetchSeq uint64 // bumped when a fetch is issued
	version  uint64 // bumped when local state mutates
}

// begin registers a new in-flight fetch and returns the tags its result
// must present to be applied.
func (r *revisions) begin() (seq, ver uint64) {
	r.fetchSeq++
	return r.fetchSeq, r.version
}

// current reports whether a fetch tagged (seq, ver) is still the latest
// issued fetch over unchanged state.
func (r *revisions) current(seq, ver uint64) bool {
	return seq == r.fetchSeq && ver == r.version
}

// bump records a local mutation, invalidating in-flight fetches.
func (r *revisions) bump() {
	r.version++
}
