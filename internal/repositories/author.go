package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pzaremba/book-library-api/internal/logger"
	"github.com/pzaremba/book-library-api/internal/models"
	"github.com/pzaremba/book-library-api/internal/query"
)

const authorColumns = "authors.id, authors.first_name, authors.last_name, authors.birth_date"

// AuthorReadRepository handles author read operations.
type AuthorReadRepository struct {
	db *sqlx.DB
}

func NewAuthorReadRepository(db *sqlx.DB) *AuthorReadRepository {
	return &AuthorReadRepository{db: db}
}

// Count returns the number of authors matching the request filters.
func (r *AuthorReadRepository) Count(ctx context.Context, p *query.Params) (int, error) {
	where, args := p.WhereClause(1)
	q := strings.TrimSpace("SELECT COUNT(*) FROM authors " + where)

	var total int
	err := r.db.GetContext(ctx, &total, q, args...)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", args, "error", err)

	if err != nil {
		return 0, err
	}
	return total, nil
}

// GetAll returns the filtered, sorted page of authors.
func (r *AuthorReadRepository) GetAll(ctx context.Context, p *query.Params) ([]models.AuthorDB, error) {
	where, args := p.WhereClause(1)
	limit, limitArgs := p.LimitClause(len(args) + 1)
	args = append(args, limitArgs...)

	parts := []string{"SELECT " + authorColumns + " FROM authors"}
	if where != "" {
		parts = append(parts, where)
	}
	parts = append(parts, p.OrderClause(), limit)
	q := strings.Join(parts, " ")

	authors := []models.AuthorDB{}
	err := r.db.SelectContext(ctx, &authors, q, args...)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", args, "error", err)

	if err != nil {
		return nil, err
	}
	return authors, nil
}

// GetByID returns the author with the given id, or nil when absent.
func (r *AuthorReadRepository) GetByID(ctx context.Context, id int64) (*models.AuthorDB, error) {
	const q = "SELECT " + authorColumns + " FROM authors WHERE authors.id = $1"

	var author models.AuthorDB
	err := r.db.GetContext(ctx, &author, q, id)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", []any{id}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetBooks returns the books owned by each of the given authors, keyed by
// author id. Used to attach nested book lists without one query per author.
func (r *AuthorReadRepository) GetBooks(ctx context.Context, authorIDs []int64) (map[int64][]models.BookDB, error) {
	booksByAuthor := make(map[int64][]models.BookDB, len(authorIDs))
	if len(authorIDs) == 0 {
		return booksByAuthor, nil
	}

	q, args, err := sqlx.In(
		"SELECT id, title, isbn, number_of_pages, description, author_id FROM books WHERE author_id IN (?) ORDER BY id",
		authorIDs,
	)
	if err != nil {
		return nil, err
	}
	q = r.db.Rebind(q)

	var books []models.BookDB
	err = r.db.SelectContext(ctx, &books, q, args...)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", args, "error", err)

	if err != nil {
		return nil, err
	}
	for _, b := range books {
		booksByAuthor[b.AuthorID] = append(booksByAuthor[b.AuthorID], b)
	}
	return booksByAuthor, nil
}

// AuthorWriteRepository handles author write operations. When the request
// context carries a transaction the statements run inside it.
type AuthorWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAuthorWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AuthorWriteRepository {
	return &AuthorWriteRepository{db: db, txGetter: txGetter}
}

func (r *AuthorWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new author and returns the stored row.
func (r *AuthorWriteRepository) Save(ctx context.Context, firstName, lastName string, birthDate time.Time) (*models.AuthorDB, error) {
	const q = `
		INSERT INTO authors (first_name, last_name, birth_date)
		VALUES ($1, $2, $3)
		RETURNING id, first_name, last_name, birth_date
	`
	args := []any{firstName, lastName, birthDate}

	var author models.AuthorDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &author, q, args...)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", args, "error", err)

	if err != nil {
		return nil, constraintError(err)
	}
	return &author, nil
}

// Update replaces every mutable column of the author. Returns nil when the
// author does not exist.
func (r *AuthorWriteRepository) Update(ctx context.Context, id int64, firstName, lastName string, birthDate time.Time) (*models.AuthorDB, error) {
	const q = `
		UPDATE authors
		SET first_name = $1, last_name = $2, birth_date = $3
		WHERE id = $4
		RETURNING id, first_name, last_name, birth_date
	`
	args := []any{firstName, lastName, birthDate, id}

	var author models.AuthorDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &author, q, args...)

	logger.Log.Infow("query executed", "query", oneLine(q), "args", args, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, constraintError(err)
	}
	return &author, nil
}

// Delete removes the author and its books. The dependent books are deleted
// explicitly first so the whole cascade happens inside the surrounding
// transaction; the ON DELETE CASCADE constraint remains as backstop.
// Returns false when the author does not exist.
func (r *AuthorWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	executor := r.executor(ctx)

	const deleteBooks = "DELETE FROM books WHERE author_id = $1"
	_, err := executor.ExecContext(ctx, deleteBooks, id)

	logger.Log.Infow("query executed", "query", deleteBooks, "args", []any{id}, "error", err)

	if err != nil {
		return false, err
	}

	const deleteAuthor = "DELETE FROM authors WHERE id = $1"
	res, err := executor.ExecContext(ctx, deleteAuthor, id)

	logger.Log.Infow("query executed", "query", deleteAuthor, "args", []any{id}, "error", err)

	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
