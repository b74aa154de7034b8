package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/pzaremba/book-library-api/internal/logger"
	"github.com/pzaremba/book-library-api/internal/models"
	"github.com/pzaremba/book-library-api/internal/query"
)

const bookColumns = `books.id, books.title, books.isbn, books.number_of_pages, books.description, books.author_id,
	authors.first_name AS author_first_name, authors.last_name AS author_last_name`

const bookFrom = "FROM books JOIN authors ON authors.id = books.author_id"

// BookReadRepository handles book read operations.
type BookReadRepository struct {
	db *sqlx.DB
}

func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

// Count returns the number of books matching the request filters.
func (r *BookReadRepository) Count(ctx context.Context, p *query.Params) (int, error) {
	where, args := p.WhereClause(1)
	q := strings.TrimSpace("SELECT COUNT(*) FROM books " + where)

	var total int
	err := r.db.GetContext(ctx, &total, q, args...)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", args, "error", err)

	if err != nil {
		return 0, err
	}
	return total, nil
}

// GetAll returns the filtered, sorted page of books with their authors.
func (r *BookReadRepository) GetAll(ctx context.Context, p *query.Params) ([]models.BookWithAuthor, error) {
	where, args := p.WhereClause(1)
	limit, limitArgs := p.LimitClause(len(args) + 1)
	args = append(args, limitArgs...)

	parts := []string{"SELECT " + bookColumns, bookFrom}
	if where != "" {
		parts = append(parts, where)
	}
	parts = append(parts, p.OrderClause(), limit)
	q := strings.Join(parts, " ")

	books := []models.BookWithAuthor{}
	err := r.db.SelectContext(ctx, &books, q, args...)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", args, "error", err)

	if err != nil {
		return nil, err
	}
	return books, nil
}

// GetByID returns the book with the given id, or nil when absent.
func (r *BookReadRepository) GetByID(ctx context.Context, id int64) (*models.BookWithAuthor, error) {
	q := "SELECT " + bookColumns + " " + bookFrom + " WHERE books.id = $1"

	var book models.BookWithAuthor
	err := r.db.GetContext(ctx, &book, q, id)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", []any{id}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetByISBN returns the book with the given isbn, or nil when absent.
// Used by the pre-insert uniqueness check.
func (r *BookReadRepository) GetByISBN(ctx context.Context, isbn int64) (*models.BookDB, error) {
	const q = "SELECT id, title, isbn, number_of_pages, description, author_id FROM books WHERE isbn = $1"

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, q, isbn)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", []any{isbn}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// BookWriteRepository handles book write operations.
type BookWriteRepository struct {
	db *sqlx.DB
}

func NewBookWriteRepository(db *sqlx.DB) *BookWriteRepository {
	return &BookWriteRepository{db: db}
}

// Save inserts a new book and returns the stored row. Unique (isbn) and
// foreign-key (author_id) violations come back as the package sentinels.
func (r *BookWriteRepository) Save(ctx context.Context, in models.BookInput) (*models.BookDB, error) {
	const q = `
		INSERT INTO books (title, isbn, number_of_pages, description, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, isbn, number_of_pages, description, author_id
	`
	args := []any{in.Title, in.ISBN, in.NumberOfPages, in.Description, in.AuthorID}

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, q, args...)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", args, "error", err)

	if err != nil {
		return nil, constraintError(err)
	}
	return &book, nil
}

// Update replaces every mutable column of the book. Returns nil when the
// book does not exist.
func (r *BookWriteRepository) Update(ctx context.Context, id int64, in models.BookInput) (*models.BookDB, error) {
	const q = `
		UPDATE books
		SET title = $1, isbn = $2, number_of_pages = $3, description = $4, author_id = $5
		WHERE id = $6
		RETURNING id, title, isbn, number_of_pages, description, author_id
	`
	args := []any{in.Title, in.ISBN, in.NumberOfPages, in.Description, in.AuthorID, id}

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, q, args...)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", args, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, constraintError(err)
	}
	return &book, nil
}

// Delete removes the book. Returns false when the book does not exist.
func (r *BookWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = "DELETE FROM books WHERE id = $1"

	res, err := r.db.ExecContext(ctx, q, id)

	logger.Log.Infow("query executed", "query", q, "args", []any{id}, "error", err)

	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
