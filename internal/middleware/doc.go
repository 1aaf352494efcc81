// Package middleware provides HTTP middleware for the daypact API.
//
// Middlewares compose with Chain and communicate through request context
// using typed keys. The standard stack, outermost first, is RequestID,
// Logger, Recovery, CORS, and Compress; Auth wraps individual routes that
// require a caller identity.
package middleware
