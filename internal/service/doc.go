// Package service implements the daypact domain core.
//
// Services hold the business rules: who may join a challenge, the
// one-check-in-per-day invariant, and owner-only project mutation. Each
// service depends on narrow repository interfaces defined next to it, takes
// its authenticated caller identity and inputs as explicit arguments, and
// returns explicit results or sentinel errors from errors.go. No service
// reaches into another's storage; foreign references are validated through
// the referenced entity's own repository interface.
//
// Every write is all-or-nothing: validation happens before any repository
// call, and the repository operations themselves are single conditional
// statements, so a failed operation never leaves partial state.
package service
