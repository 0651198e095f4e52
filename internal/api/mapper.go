package api

import (
	"github.com/dougbrunos/go-rest-apis/internal/domain"
)

// Conversions between entities and their DTO versions. The v1 shape
// omits the birth date; v2 carries it. Entity IDs flow through both
// directions unchanged.

func toPersonDTO(p *domain.Person) PersonDTO {
	return PersonDTO{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Address:   p.Address,
		Gender:    p.Gender,
	}
}

func toPersonDTOs(persons []*domain.Person) []PersonDTO {
	dtos := make([]PersonDTO, 0, len(persons))
	for _, p := range persons {
		dtos = append(dtos, toPersonDTO(p))
	}
	return dtos
}

func toPersonEntity(dto PersonDTO) *domain.Person {
	return &domain.Person{
		ID:        dto.ID,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Address:   dto.Address,
		Gender:    dto.Gender,
	}
}

func toPersonDTOV2(p *domain.Person) PersonDTOV2 {
	return PersonDTOV2{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Address:   p.Address,
		Gender:    p.Gender,
		BirthDay:  p.BirthDate,
	}
}

func toPersonEntityV2(dto PersonDTOV2) *domain.Person {
	return &domain.Person{
		ID:        dto.ID,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Address:   dto.Address,
		Gender:    dto.Gender,
		BirthDate: dto.BirthDay,
	}
}

func toBookDTO(b *domain.Book) BookDTO {
	return BookDTO{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Price:      NewMoney(b.Price),
		LaunchDate: b.LaunchDate,
	}
}

func toBookDTOs(books []*domain.Book) []BookDTO {
	dtos := make([]BookDTO, 0, len(books))
	for _, b := range books {
		dtos = append(dtos, toBookDTO(b))
	}
	return dtos
}

func toBookEntity(dto BookDTO) *domain.Book {
	return &domain.Book{
		ID:         dto.ID,
		Title:      dto.Title,
		Author:     dto.Author,
		Price:      dto.Price.Decimal,
		LaunchDate: dto.LaunchDate,
	}
}
