package models

import (
	"database/sql"
	"strconv"

	"github.com/pzaremba/book-library-api/internal/query"
	"github.com/pzaremba/book-library-api/internal/validation"
)

// BookDB represents a book record in the database
type BookDB struct {
	ID            int64          `db:"id"`              // Primary key
	Title         string         `db:"title"`           // Book title
	ISBN          int64          `db:"isbn"`            // 13-digit ISBN, unique
	NumberOfPages int            `db:"number_of_pages"` // Page count
	Description   sql.NullString `db:"description"`     // Optional description
	AuthorID      int64          `db:"author_id"`       // Owning author, FK
}

// BookWithAuthor is a book row joined with its author's display columns.
type BookWithAuthor struct {
	BookDB
	AuthorFirstName string `db:"author_first_name"`
	AuthorLastName  string `db:"author_last_name"`
}

// BookResource declares the column set query shaping may touch for books
// and the superset of fields a client may select for output. The nested
// author is selectable but author_id itself is input-only.
var BookResource = query.Resource{
	Name:    "books",
	Columns: []string{"id", "title", "isbn", "number_of_pages", "description", "author_id"},
	Fields:  []string{"id", "title", "isbn", "number_of_pages", "description", "author"},
	Types: map[string]query.ColumnType{
		"id":              query.Int,
		"isbn":            query.Int,
		"number_of_pages": query.Int,
		"author_id":       query.Int,
	},
}

// BookInput is the JSON body for creating or fully updating a book.
type BookInput struct {
	Title         string  `json:"title"`
	ISBN          int64   `json:"isbn"`
	NumberOfPages int     `json:"number_of_pages"`
	Description   *string `json:"description"`
	AuthorID      int64   `json:"author_id"`
}

// ValidateBookInput applies the book field rules to v.
func ValidateBookInput(v *validation.Validator, in BookInput) {
	v.Check(in.Title != "", "title", "Missing data for required field.")
	v.Check(len(in.Title) <= 50, "title", "Longer than maximum length 50.")
	v.Check(in.ISBN != 0, "isbn", "Missing data for required field.")
	if in.ISBN != 0 {
		v.Check(len(strconv.FormatInt(in.ISBN, 10)) == 13, "isbn", "ISBN must contain 13 digits.")
	}
	v.Check(in.NumberOfPages > 0, "number_of_pages", "Must be a positive integer.")
	v.Check(in.AuthorID > 0, "author_id", "Missing data for required field.")
}

// Payload returns the serializable representation of the book row.
// author_id never appears on output; the nested author is attached by the
// caller where the join is available.
func (b BookDB) Payload() map[string]any {
	var description any
	if b.Description.Valid {
		description = b.Description.String
	}
	return map[string]any{
		"id":              b.ID,
		"title":           b.Title,
		"isbn":            b.ISBN,
		"number_of_pages": b.NumberOfPages,
		"description":     description,
	}
}

// Payload returns the book representation with the nested author object.
func (b BookWithAuthor) Payload() map[string]any {
	m := b.BookDB.Payload()
	m["author"] = map[string]any{
		"id":         b.AuthorID,
		"first_name": b.AuthorFirstName,
		"last_name":  b.AuthorLastName,
	}
	return m
}
