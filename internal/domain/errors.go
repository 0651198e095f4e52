package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Field-specific validation errors wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)

// Person-specific validation errors
var (
	// ErrPersonFirstNameEmpty is returned when a person's first name is empty.
	ErrPersonFirstNameEmpty = fmt.Errorf("%w: person first name cannot be empty", ErrValidation)

	// ErrPersonLastNameEmpty is returned when a person's last name is empty.
	ErrPersonLastNameEmpty = fmt.Errorf("%w: person last name cannot be empty", ErrValidation)

	// ErrPersonGenderInvalid is returned when a person's gender is not a
	// recognized value.
	ErrPersonGenderInvalid = fmt.Errorf("%w: person gender must be Male, Female or Other", ErrValidation)
)

// Book-specific validation errors
var (
	// ErrBookTitleEmpty is returned when a book's title is empty.
	ErrBookTitleEmpty = fmt.Errorf("%w: book title cannot be empty", ErrValidation)

	// ErrBookAuthorEmpty is returned when a book's author is empty.
	ErrBookAuthorEmpty = fmt.Errorf("%w: book author cannot be empty", ErrValidation)

	// ErrBookPriceNegative is returned when a book's price is below zero.
	ErrBookPriceNegative = fmt.Errorf("%w: book price cannot be negative", ErrValidation)
)
