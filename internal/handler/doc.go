// Package handler implements the HTTP layer of the daypact API.
//
// Handlers decode requests, delegate to services, and translate service
// errors into RFC 9457 problem responses via MapServiceError. They hold no
// business logic of their own.
package handler
