// Package api provides HTTP handlers for the API.
//
// Handlers decode content-negotiated request bodies into DTOs, call into
// the service layer, and write negotiated responses. Error translation
// from sentinel errors to HTTP status codes lives in errors.go so every
// handler maps failures the same way.
package api
