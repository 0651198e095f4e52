package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book represents a book record managed by the API.
// Price is a decimal rather than a float so money survives round-trips
// through every representation without drift.
type Book struct {
	ID         int64
	Title      string
	Author     string
	Price      decimal.Decimal
	LaunchDate time.Time
}

// NewBook creates a Book with the given fields and validates it.
func NewBook(title, author string, price decimal.Decimal, launchDate time.Time) (*Book, error) {
	b := &Book{
		Title:      title,
		Author:     author,
		Price:      price,
		LaunchDate: launchDate,
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate checks if the Book has valid data.
// Returns an error if any field fails validation.
func (b *Book) Validate() error {
	if b.Title == "" {
		return ErrBookTitleEmpty
	}

	if b.Author == "" {
		return ErrBookAuthorEmpty
	}

	if b.Price.IsNegative() {
		return ErrBookPriceNegative
	}

	return nil
}
