package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pzaremba/book-library-api/internal/logger"
	"github.com/pzaremba/book-library-api/internal/models"
	"github.com/pzaremba/book-library-api/internal/query"
	"github.com/pzaremba/book-library-api/internal/services"
	"github.com/pzaremba/book-library-api/internal/validation"
)

// BooksLister defines the interface that the list handler needs.
type BooksLister interface {
	List(ctx context.Context, p *query.Params) ([]models.BookWithAuthor, int, error)
}

// BooksGetter defines the interface that the get-one handler needs.
type BooksGetter interface {
	Get(ctx context.Context, id int64) (*models.BookWithAuthor, error)
}

// BooksCreator defines the interface that the create handler needs.
type BooksCreator interface {
	Create(ctx context.Context, in models.BookInput) (*models.BookWithAuthor, error)
}

// BooksUpdater defines the interface that the update handler needs.
type BooksUpdater interface {
	Update(ctx context.Context, id int64, in models.BookInput) (*models.BookWithAuthor, error)
}

// BooksDeleter defines the interface that the delete handler needs.
type BooksDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewListBooksHandler returns an HTTP handler listing books.
// @Summary List books
// @Description Returns books with filtering, sorting, field selection and pagination
// @Tags books
// @Produce json
// @Param fields query string false "Comma-separated list of fields to return"
// @Param sort query string false "Sort column, prefix with - for descending"
// @Param filter query string false "Filter expression column:value or column:op:value"
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size"
// @Success 200 {object} handlers.ListResponse "Page of books"
// @Failure 400 {object} handlers.ErrorResponse "Malformed query parameter"
// @Router /books [get]
func NewListBooksHandler(svc BooksLister, defaultLimit, maxLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := query.Parse(r, models.BookResource, defaultLimit, maxLimit)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		books, total, err := svc.List(r.Context(), p)
		if err != nil {
			logger.Log.Errorw("failed to list books", "err", err)
			respondInternal(w)
			return
		}

		data := make([]map[string]any, 0, len(books))
		for _, b := range books {
			data = append(data, selectFields(b.Payload(), p.Fields))
		}

		writeJSON(w, http.StatusOK, ListResponse{
			Success:         true,
			Data:            data,
			NumberOfRecords: len(data),
			Pagination:      p.Paginate(total),
		})
	}
}

// NewGetBookHandler returns an HTTP handler fetching a single book.
// @Summary Get book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} handlers.DataResponse "Book with its author"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /books/{id} [get]
func NewGetBookHandler(svc BooksGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Book with id %s not found", chiID(r)))
			return
		}

		book, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrBookNotFound) {
				respondError(w, http.StatusNotFound, fmt.Sprintf("Book with id %d not found", id))
				return
			}
			logger.Log.Errorw("failed to get book", "id", id, "err", err)
			respondInternal(w)
			return
		}

		respondData(w, http.StatusOK, book.Payload())
	}
}

// handleBookWriteError maps book write failures to responses shared by the
// create and update handlers. Returns false when the error was unexpected.
func handleBookWriteError(w http.ResponseWriter, err error, in models.BookInput) bool {
	var conflict *services.ConflictError
	switch {
	case errors.Is(err, services.ErrAuthorDoesNotExist):
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Author with id %d does not exist", in.AuthorID))
	case errors.As(err, &conflict):
		respondError(w, http.StatusConflict, conflict.Error())
	default:
		return false
	}
	return true
}

// NewCreateBookHandler returns an HTTP handler creating a book.
// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Param book body models.BookInput true "Book payload"
// @Success 201 {object} handlers.DataResponse "Created book with nested author"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate isbn"
// @Router /books [post]
// @Security BearerAuth
func NewCreateBookHandler(svc BooksCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.BookInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		v := validation.New()
		models.ValidateBookInput(v, in)
		if !v.Valid() {
			respondValidation(w, v.Errors)
			return
		}

		book, err := svc.Create(r.Context(), in)
		if err != nil {
			if handleBookWriteError(w, err, in) {
				return
			}
			logger.Log.Errorw("failed to create book", "err", err)
			respondInternal(w)
			return
		}

		respondData(w, http.StatusCreated, book.Payload())
	}
}

// NewUpdateBookHandler returns an HTTP handler fully updating a book.
// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param book body models.BookInput true "Book payload"
// @Success 200 {object} handlers.DataResponse "Updated book"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failure"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate isbn"
// @Router /books/{id} [put]
// @Security BearerAuth
func NewUpdateBookHandler(svc BooksUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Book with id %s not found", chiID(r)))
			return
		}

		var in models.BookInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		v := validation.New()
		models.ValidateBookInput(v, in)
		if !v.Valid() {
			respondValidation(w, v.Errors)
			return
		}

		book, err := svc.Update(r.Context(), id, in)
		if err != nil {
			if errors.Is(err, services.ErrBookNotFound) {
				respondError(w, http.StatusNotFound, fmt.Sprintf("Book with id %d not found", id))
				return
			}
			if handleBookWriteError(w, err, in) {
				return
			}
			logger.Log.Errorw("failed to update book", "id", id, "err", err)
			respondInternal(w)
			return
		}

		respondData(w, http.StatusOK, book.Payload())
	}
}

// NewDeleteBookHandler returns an HTTP handler deleting a book.
// @Summary Delete book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} handlers.DataResponse "Deletion confirmation"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /books/{id} [delete]
// @Security BearerAuth
func NewDeleteBookHandler(svc BooksDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Book with id %s not found", chiID(r)))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, services.ErrBookNotFound) {
				respondError(w, http.StatusNotFound, fmt.Sprintf("Book with id %d not found", id))
				return
			}
			logger.Log.Errorw("failed to delete book", "id", id, "err", err)
			respondInternal(w)
			return
		}

		respondData(w, http.StatusOK, fmt.Sprintf("Book with id %d has been deleted", id))
	}
}
