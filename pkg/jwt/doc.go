// Package jwt implements RS256 signing and validation of access tokens.
// It has no dependency on the rest of the application so it can be reused
// by tooling that only needs to mint or inspect tokens.
package jwt
