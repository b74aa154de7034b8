package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaremba/book-library-api/internal/models"
)

func TestBookWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	author := seedAuthor(t, NewAuthorWriteRepository(db, nil), "Stanislaw", "Lem", "12-09-1921")

	repo := NewBookWriteRepository(db)
	ctx := context.Background()

	desc := "A planet with a sentient ocean"
	book, err := repo.Save(ctx, models.BookInput{
		Title:         "Solaris",
		ISBN:          9788370540128,
		NumberOfPages: 204,
		Description:   &desc,
		AuthorID:      author.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, book.ID)
	assert.True(t, book.Description.Valid)

	t.Run("DuplicateISBN", func(t *testing.T) {
		_, err := repo.Save(ctx, models.BookInput{
			Title: "Solaris again", ISBN: 9788370540128, NumberOfPages: 204, AuthorID: author.ID,
		})
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("MissingAuthor", func(t *testing.T) {
		_, err := repo.Save(ctx, models.BookInput{
			Title: "Orphan", ISBN: 9788370540999, NumberOfPages: 100, AuthorID: 9999,
		})
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
	})
}

func TestBookWriteRepository_UpdateAndDelete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	author := seedAuthor(t, NewAuthorWriteRepository(db, nil), "Frank", "Herbert", "08-10-1920")

	repo := NewBookWriteRepository(db)
	ctx := context.Background()

	book, err := repo.Save(ctx, models.BookInput{
		Title: "Dune", ISBN: 9780441013593, NumberOfPages: 412, AuthorID: author.ID,
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, book.ID, models.BookInput{
		Title: "Dune Messiah", ISBN: 9780441013593, NumberOfPages: 256, AuthorID: author.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Dune Messiah", updated.Title)
	assert.Equal(t, 256, updated.NumberOfPages)

	missing, err := repo.Update(ctx, 9999, models.BookInput{
		Title: "Ghost", ISBN: 9780000000001, NumberOfPages: 1, AuthorID: author.ID,
	})
	assert.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.Delete(ctx, book.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestBookReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	authorRepo := NewAuthorWriteRepository(db, nil)
	lem := seedAuthor(t, authorRepo, "Stanislaw", "Lem", "12-09-1921")
	herbert := seedAuthor(t, authorRepo, "Frank", "Herbert", "08-10-1920")

	writeRepo := NewBookWriteRepository(db)
	readRepo := NewBookReadRepository(db)
	ctx := context.Background()

	solaris, err := writeRepo.Save(ctx, models.BookInput{
		Title: "Solaris", ISBN: 9788370540128, NumberOfPages: 204, AuthorID: lem.ID,
	})
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, models.BookInput{
		Title: "Dune", ISBN: 9780441013593, NumberOfPages: 412, AuthorID: herbert.ID,
	})
	require.NoError(t, err)

	t.Run("GetByID", func(t *testing.T) {
		book, err := readRepo.GetByID(ctx, solaris.ID)
		require.NoError(t, err)
		require.NotNil(t, book)
		assert.Equal(t, "Solaris", book.Title)
		assert.Equal(t, "Stanislaw", book.AuthorFirstName)
		assert.Equal(t, "Lem", book.AuthorLastName)

		missing, err := readRepo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("GetByISBN", func(t *testing.T) {
		book, err := readRepo.GetByISBN(ctx, 9788370540128)
		require.NoError(t, err)
		require.NotNil(t, book)
		assert.Equal(t, solaris.ID, book.ID)

		missing, err := readRepo.GetByISBN(ctx, 9999999999999)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("GetAllFiltered", func(t *testing.T) {
		p := parseParams(t, "/api/v1/books?filter=number_of_pages:gt:300", models.BookResource)

		total, err := readRepo.Count(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		books, err := readRepo.GetAll(ctx, p)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Dune", books[0].Title)
	})

	t.Run("GetAllSorted", func(t *testing.T) {
		p := parseParams(t, "/api/v1/books?sort=-title", models.BookResource)

		books, err := readRepo.GetAll(ctx, p)
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Solaris", books[0].Title)
	})
}
