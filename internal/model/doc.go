// Package model defines domain entities and data structures for the
// Activities API.
//
// The model package contains the Activity entity, the fixed seed roster, and
// the error definitions shared across all layers of the application.
//
// # Domain Entities
//
// The single core entity:
//
//   - Activity: an extracurricular offering with a schedule, a descriptive
//     capacity, and an ordered participant roster
//
// # JSON Serialization
//
// Activities are serialized as the values of a JSON object keyed by activity
// name, so the name itself is excluded from the record:
//
//	type Activity struct {
//	    Name         string   `json:"-"`
//	    Description  string   `json:"description"`
//	    Participants []string `json:"participants"`
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
