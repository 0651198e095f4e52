// Package domain defines the core business entities and errors.
//
// Entities are flat records with no relationships; their lifecycle is
// create/replace/delete against the in-memory stores. Validation lives
// on the entities themselves so every layer can enforce it before a write.
package domain
