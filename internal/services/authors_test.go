package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaremba/book-library-api/internal/models"
	"github.com/pzaremba/book-library-api/internal/query"
)

func TestAuthorsService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthorReader(ctrl)
	writer := NewMockAuthorWriter(ctrl)

	authors := []models.AuthorDB{
		{ID: 1, FirstName: "Andrzej", LastName: "Sapkowski"},
		{ID: 2, FirstName: "Stanislaw", LastName: "Lem"},
	}
	books := map[int64][]models.BookDB{
		1: {{ID: 10, Title: "The Witcher", AuthorID: 1}},
	}

	p := &query.Params{}
	reader.EXPECT().Count(gomock.Any(), p).Return(2, nil)
	reader.EXPECT().GetAll(gomock.Any(), p).Return(authors, nil)
	reader.EXPECT().GetBooks(gomock.Any(), []int64{1, 2}).Return(books, nil)

	svc := NewAuthorsService(reader, writer)

	got, total, err := svc.List(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Books, 1)
	// Authors without books carry an empty slice, never nil.
	assert.NotNil(t, got[1].Books)
	assert.Empty(t, got[1].Books)
}

func TestAuthorsService_List_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthorReader(ctrl)
	reader.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

	svc := NewAuthorsService(reader, NewMockAuthorWriter(ctrl))

	_, _, err := svc.List(context.Background(), &query.Params{})
	assert.Error(t, err)
}

func TestAuthorsService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthorReader(ctrl)

	author := &models.AuthorDB{ID: 1, FirstName: "Ursula", LastName: "Le Guin"}
	reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(author, nil)
	reader.EXPECT().GetBooks(gomock.Any(), []int64{1}).Return(map[int64][]models.BookDB{}, nil)

	svc := NewAuthorsService(reader, NewMockAuthorWriter(ctrl))

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, *author, got.Author)
	assert.NotNil(t, got.Books)
	assert.Empty(t, got.Books)
}

func TestAuthorsService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthorReader(ctrl)
	reader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

	svc := NewAuthorsService(reader, NewMockAuthorWriter(ctrl))

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestAuthorsService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockAuthorWriter(ctrl)

	birthDate := time.Date(1948, 6, 21, 0, 0, 0, 0, time.UTC)
	saved := &models.AuthorDB{ID: 1, FirstName: "Andrzej", LastName: "Sapkowski", BirthDate: birthDate}
	writer.EXPECT().Save(gomock.Any(), "Andrzej", "Sapkowski", birthDate).Return(saved, nil)

	svc := NewAuthorsService(NewMockAuthorReader(ctrl), writer)

	in := models.AuthorInput{FirstName: "Andrzej", LastName: "Sapkowski", BirthDate: "21-06-1948"}
	got, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Author.ID)
	assert.NotNil(t, got.Books)
	assert.Empty(t, got.Books)
}

func TestAuthorsService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockAuthorWriter(ctrl)
	writer.EXPECT().Update(gomock.Any(), int64(42), "A", "B", gomock.Any()).Return(nil, nil)

	svc := NewAuthorsService(NewMockAuthorReader(ctrl), writer)

	in := models.AuthorInput{FirstName: "A", LastName: "B", BirthDate: "01-01-1990"}
	_, err := svc.Update(context.Background(), 42, in)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestAuthorsService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockAuthorWriter(ctrl)
	writer.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil)

	svc := NewAuthorsService(NewMockAuthorReader(ctrl), writer)

	assert.NoError(t, svc.Delete(context.Background(), 1))
}

func TestAuthorsService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockAuthorWriter(ctrl)
	writer.EXPECT().Delete(gomock.Any(), int64(42)).Return(false, nil)

	svc := NewAuthorsService(NewMockAuthorReader(ctrl), writer)

	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrAuthorNotFound)
}
