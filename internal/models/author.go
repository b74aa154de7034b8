package models

import (
	"time"

	"github.com/pzaremba/book-library-api/internal/query"
	"github.com/pzaremba/book-library-api/internal/validation"
)

// DateLayout is the wire format for all dates (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// AuthorDB represents an author record in the database
type AuthorDB struct {
	ID        int64     `db:"id"`         // Primary key
	FirstName string    `db:"first_name"` // Author first name
	LastName  string    `db:"last_name"`  // Author last name
	BirthDate time.Time `db:"birth_date"` // Date of birth
}

// AuthorResource declares the column set query shaping may touch for
// authors and the superset of fields a client may select for output.
var AuthorResource = query.Resource{
	Name:    "authors",
	Columns: []string{"id", "first_name", "last_name", "birth_date"},
	Fields:  []string{"id", "first_name", "last_name", "birth_date", "books"},
	Types: map[string]query.ColumnType{
		"id":         query.Int,
		"birth_date": query.Date,
	},
}

// AuthorWithBooks pairs an author row with the books it owns.
type AuthorWithBooks struct {
	Author AuthorDB
	Books  []BookDB
}

// AuthorInput is the JSON body for creating or fully updating an author.
type AuthorInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"` // DD-MM-YYYY
}

// ParsedBirthDate parses the wire-format birth date.
func (in AuthorInput) ParsedBirthDate() (time.Time, error) {
	return time.Parse(DateLayout, in.BirthDate)
}

// ValidateAuthorInput applies the author field rules to v.
func ValidateAuthorInput(v *validation.Validator, in AuthorInput) {
	v.Check(in.FirstName != "", "first_name", "Missing data for required field.")
	v.Check(len(in.FirstName) <= 50, "first_name", "Longer than maximum length 50.")
	v.Check(in.LastName != "", "last_name", "Missing data for required field.")
	v.Check(len(in.LastName) <= 50, "last_name", "Longer than maximum length 50.")

	if in.BirthDate == "" {
		v.AddError("birth_date", "Missing data for required field.")
		return
	}
	birthDate, err := in.ParsedBirthDate()
	if err != nil {
		v.AddError("birth_date", "Not a valid date, expected DD-MM-YYYY.")
		return
	}
	v.Check(!birthDate.After(time.Now()), "birth_date", "Birth date must not be in the future.")
}

// Payload returns the serializable representation of the author row.
// Nested books are attached by the caller.
func (a AuthorDB) Payload() map[string]any {
	return map[string]any{
		"id":         a.ID,
		"first_name": a.FirstName,
		"last_name":  a.LastName,
		"birth_date": a.BirthDate.Format(DateLayout),
	}
}
