package services

import (
	"context"
	"time"

	"github.com/pzaremba/book-library-api/internal/logger"
	"github.com/pzaremba/book-library-api/internal/models"
	"github.com/pzaremba/book-library-api/internal/query"
)

// AuthorReader defines read-only operations for authors.
type AuthorReader interface {
	Count(ctx context.Context, p *query.Params) (int, error)
	GetAll(ctx context.Context, p *query.Params) ([]models.AuthorDB, error)
	GetByID(ctx context.Context, id int64) (*models.AuthorDB, error)
	GetBooks(ctx context.Context, authorIDs []int64) (map[int64][]models.BookDB, error)
}

// AuthorWriter defines write operations for authors.
type AuthorWriter interface {
	Save(ctx context.Context, firstName, lastName string, birthDate time.Time) (*models.AuthorDB, error)
	Update(ctx context.Context, id int64, firstName, lastName string, birthDate time.Time) (*models.AuthorDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// AuthorsService implements the author catalog operations.
type AuthorsService struct {
	reader AuthorReader
	writer AuthorWriter
}

// NewAuthorsService creates a new AuthorsService instance.
func NewAuthorsService(reader AuthorReader, writer AuthorWriter) *AuthorsService {
	return &AuthorsService{reader: reader, writer: writer}
}

// List returns the shaped page of authors with their books attached, plus
// the total record count for pagination.
func (svc *AuthorsService) List(ctx context.Context, p *query.Params) ([]models.AuthorWithBooks, int, error) {
	total, err := svc.reader.Count(ctx, p)
	if err != nil {
		logger.Log.Errorw("failed to count authors", "err", err)
		return nil, 0, err
	}

	authors, err := svc.reader.GetAll(ctx, p)
	if err != nil {
		logger.Log.Errorw("failed to list authors", "err", err)
		return nil, 0, err
	}

	ids := make([]int64, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}
	booksByAuthor, err := svc.reader.GetBooks(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load books for authors", "err", err)
		return nil, 0, err
	}

	result := make([]models.AuthorWithBooks, 0, len(authors))
	for _, a := range authors {
		books := booksByAuthor[a.ID]
		if books == nil {
			books = []models.BookDB{}
		}
		result = append(result, models.AuthorWithBooks{Author: a, Books: books})
	}
	return result, total, nil
}

// Get returns a single author with its books.
func (svc *AuthorsService) Get(ctx context.Context, id int64) (*models.AuthorWithBooks, error) {
	author, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get author", "id", id, "err", err)
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	booksByAuthor, err := svc.reader.GetBooks(ctx, []int64{id})
	if err != nil {
		logger.Log.Errorw("failed to load books for author", "id", id, "err", err)
		return nil, err
	}
	books := booksByAuthor[id]
	if books == nil {
		books = []models.BookDB{}
	}
	return &models.AuthorWithBooks{Author: *author, Books: books}, nil
}

// Create stores a new author. The new author owns no books yet.
func (svc *AuthorsService) Create(ctx context.Context, in models.AuthorInput) (*models.AuthorWithBooks, error) {
	birthDate, err := in.ParsedBirthDate()
	if err != nil {
		return nil, err
	}

	author, err := svc.writer.Save(ctx, in.FirstName, in.LastName, birthDate)
	if err != nil {
		logger.Log.Errorw("failed to save author", "err", err)
		return nil, err
	}
	return &models.AuthorWithBooks{Author: *author, Books: []models.BookDB{}}, nil
}

// Update fully replaces an existing author's fields.
func (svc *AuthorsService) Update(ctx context.Context, id int64, in models.AuthorInput) (*models.AuthorWithBooks, error) {
	birthDate, err := in.ParsedBirthDate()
	if err != nil {
		return nil, err
	}

	author, err := svc.writer.Update(ctx, id, in.FirstName, in.LastName, birthDate)
	if err != nil {
		logger.Log.Errorw("failed to update author", "id", id, "err", err)
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	booksByAuthor, err := svc.reader.GetBooks(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	books := booksByAuthor[id]
	if books == nil {
		books = []models.BookDB{}
	}
	return &models.AuthorWithBooks{Author: *author, Books: books}, nil
}

// Delete removes an author together with all of its books.
func (svc *AuthorsService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete author", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrAuthorNotFound
	}
	return nil
}
