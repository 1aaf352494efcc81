// Package model defines domain entities and data structures for the daypact API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Application user with authentication credentials
//   - Challenge: Time-boxed activity with a creator and a participant roster
//   - CheckIn: Dated progress record, at most one per user/challenge/day
//   - Project: Artifact a user builds in association with a challenge
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Challenge struct {
//	    ID    string `json:"id"`
//	    Title string `json:"title"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type   string `json:"type"`
//	    Title  string `json:"title"`
//	    Status int    `json:"status"`
//	    Detail string `json:"detail"`
//	}
package model
