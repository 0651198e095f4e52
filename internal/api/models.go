package api

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Money is the wire representation of a monetary amount. It embeds
// decimal.Decimal, which already serializes itself for JSON and XML;
// the YAML methods below fill the gap since yaml.v3 ignores
// encoding.TextMarshaler.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal amount for transfer.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MarshalYAML implements yaml.Marshaler.
func (m Money) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("invalid money amount %q: %w", node.Value, err)
	}
	m.Decimal = d
	return nil
}

// PersonDTO is the v1 transfer shape for a person record.
type PersonDTO struct {
	XMLName   xml.Name `json:"-"          xml:"person"     yaml:"-"`
	ID        int64    `json:"id"         xml:"id"         yaml:"id"`
	FirstName string   `json:"first_name" xml:"first_name" yaml:"first_name" validate:"required"`
	LastName  string   `json:"last_name"  xml:"last_name"  yaml:"last_name"  validate:"required"`
	Address   string   `json:"address"    xml:"address"    yaml:"address"`
	Gender    string   `json:"gender"     xml:"gender"     yaml:"gender"     validate:"required,oneof=Male Female Other"`
}

// PersonDTOV2 is the v2 transfer shape for a person record.
// It extends v1 with the birth day field.
type PersonDTOV2 struct {
	XMLName   xml.Name   `json:"-"                   xml:"person"              yaml:"-"`
	ID        int64      `json:"id"                  xml:"id"                  yaml:"id"`
	FirstName string     `json:"first_name"          xml:"first_name"          yaml:"first_name" validate:"required"`
	LastName  string     `json:"last_name"           xml:"last_name"           yaml:"last_name"  validate:"required"`
	Address   string     `json:"address"             xml:"address"             yaml:"address"`
	Gender    string     `json:"gender"              xml:"gender"              yaml:"gender"     validate:"required,oneof=Male Female Other"`
	BirthDay  *time.Time `json:"birth_day,omitempty" xml:"birth_day,omitempty" yaml:"birth_day,omitempty"`
}

// BookDTO is the transfer shape for a book record.
type BookDTO struct {
	XMLName    xml.Name  `json:"-"           xml:"book"        yaml:"-"`
	ID         int64     `json:"id"          xml:"id"          yaml:"id"`
	Title      string    `json:"title"       xml:"title"       yaml:"title"  validate:"required"`
	Author     string    `json:"author"      xml:"author"      yaml:"author" validate:"required"`
	Price      Money     `json:"price"       xml:"price"       yaml:"price"`
	LaunchDate time.Time `json:"launch_date" xml:"launch_date" yaml:"launch_date"`
}
