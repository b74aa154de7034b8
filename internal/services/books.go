package services

import (
	"context"
	"errors"

	"github.com/pzaremba/book-library-api/internal/logger"
	"github.com/pzaremba/book-library-api/internal/models"
	"github.com/pzaremba/book-library-api/internal/query"
	"github.com/pzaremba/book-library-api/internal/repositories"
)

// BookReader defines read-only operations for books.
type BookReader interface {
	Count(ctx context.Context, p *query.Params) (int, error)
	GetAll(ctx context.Context, p *query.Params) ([]models.BookWithAuthor, error)
	GetByID(ctx context.Context, id int64) (*models.BookWithAuthor, error)
	GetByISBN(ctx context.Context, isbn int64) (*models.BookDB, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Save(ctx context.Context, in models.BookInput) (*models.BookDB, error)
	Update(ctx context.Context, id int64, in models.BookInput) (*models.BookDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// BookAuthorReader looks up the owning author for FK pre-checks and for
// assembling the nested author object on writes.
type BookAuthorReader interface {
	GetByID(ctx context.Context, id int64) (*models.AuthorDB, error)
}

// BooksService implements the book catalog operations.
type BooksService struct {
	reader  BookReader
	writer  BookWriter
	authors BookAuthorReader
}

// NewBooksService creates a new BooksService instance.
func NewBooksService(reader BookReader, writer BookWriter, authors BookAuthorReader) *BooksService {
	return &BooksService{reader: reader, writer: writer, authors: authors}
}

// List returns the shaped page of books plus the total record count.
func (svc *BooksService) List(ctx context.Context, p *query.Params) ([]models.BookWithAuthor, int, error) {
	total, err := svc.reader.Count(ctx, p)
	if err != nil {
		logger.Log.Errorw("failed to count books", "err", err)
		return nil, 0, err
	}

	books, err := svc.reader.GetAll(ctx, p)
	if err != nil {
		logger.Log.Errorw("failed to list books", "err", err)
		return nil, 0, err
	}
	return books, total, nil
}

// Get returns a single book with its author.
func (svc *BooksService) Get(ctx context.Context, id int64) (*models.BookWithAuthor, error) {
	book, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "id", id, "err", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// Create stores a new book after checking the owning author exists and the
// isbn is free. The store constraints remain the final authority behind
// both checks.
func (svc *BooksService) Create(ctx context.Context, in models.BookInput) (*models.BookWithAuthor, error) {
	author, err := svc.checkAuthorAndISBN(ctx, in, 0)
	if err != nil {
		return nil, err
	}

	book, err := svc.writer.Save(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to save book", "err", err)
		return nil, svc.mapWriteError(err, in)
	}
	return withAuthor(book, author), nil
}

// Update fully replaces an existing book's fields.
func (svc *BooksService) Update(ctx context.Context, id int64, in models.BookInput) (*models.BookWithAuthor, error) {
	author, err := svc.checkAuthorAndISBN(ctx, in, id)
	if err != nil {
		return nil, err
	}

	book, err := svc.writer.Update(ctx, id, in)
	if err != nil {
		logger.Log.Errorw("failed to update book", "id", id, "err", err)
		return nil, svc.mapWriteError(err, in)
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return withAuthor(book, author), nil
}

// Delete removes a book.
func (svc *BooksService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete book", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrBookNotFound
	}
	return nil
}

// checkAuthorAndISBN runs the pre-insert checks. selfID excludes the book
// being updated from the isbn uniqueness check; zero means a create.
func (svc *BooksService) checkAuthorAndISBN(ctx context.Context, in models.BookInput, selfID int64) (*models.AuthorDB, error) {
	author, err := svc.authors.GetByID(ctx, in.AuthorID)
	if err != nil {
		logger.Log.Errorw("failed to check author exists", "author_id", in.AuthorID, "err", err)
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorDoesNotExist
	}

	existing, err := svc.reader.GetByISBN(ctx, in.ISBN)
	if err != nil {
		logger.Log.Errorw("failed to check isbn uniqueness", "isbn", in.ISBN, "err", err)
		return nil, err
	}
	if existing != nil && existing.ID != selfID {
		return nil, &ConflictError{Resource: "Book", Field: "isbn", Value: in.ISBN}
	}
	return author, nil
}

// mapWriteError translates store constraint sentinels into domain errors,
// covering the race window between pre-check and insert.
func (svc *BooksService) mapWriteError(err error, in models.BookInput) error {
	switch {
	case errors.Is(err, repositories.ErrUniqueViolation):
		return &ConflictError{Resource: "Book", Field: "isbn", Value: in.ISBN}
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return ErrAuthorDoesNotExist
	}
	return err
}

func withAuthor(book *models.BookDB, author *models.AuthorDB) *models.BookWithAuthor {
	return &models.BookWithAuthor{
		BookDB:          *book,
		AuthorFirstName: author.FirstName,
		AuthorLastName:  author.LastName,
	}
}
