package domain

import "time"

// Recognized gender values. The set mirrors what the API has always
// accepted; anything else fails validation.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Person represents a person record managed by the API.
// The ID is zero until the store assigns one on create.
type Person struct {
	ID        int64
	FirstName string
	LastName  string
	Address   string
	Gender    string
	BirthDate *time.Time
}

// NewPerson creates a Person with the given fields and validates it.
// The birth date is optional; pass nil when unknown.
func NewPerson(firstName, lastName, address, gender string, birthDate *time.Time) (*Person, error) {
	p := &Person{
		FirstName: firstName,
		LastName:  lastName,
		Address:   address,
		Gender:    gender,
		BirthDate: birthDate,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the Person has valid data.
// Returns an error if any field fails validation.
func (p *Person) Validate() error {
	if p.FirstName == "" {
		return ErrPersonFirstNameEmpty
	}

	if p.LastName == "" {
		return ErrPersonLastNameEmpty
	}

	switch p.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return ErrPersonGenderInvalid
	}

	return nil
}
