// Package service contains the application's business logic, sitting
// between the HTTP handlers and the stores. Services validate entities,
// log operations, and translate store results for the API layer.
package service
