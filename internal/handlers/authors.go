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

// AuthorsLister defines the interface that the list handler needs.
type AuthorsLister interface {
	List(ctx context.Context, p *query.Params) ([]models.AuthorWithBooks, int, error)
}

// AuthorsGetter defines the interface that the get-one handler needs.
type AuthorsGetter interface {
	Get(ctx context.Context, id int64) (*models.AuthorWithBooks, error)
}

// AuthorsCreator defines the interface that the create handler needs.
type AuthorsCreator interface {
	Create(ctx context.Context, in models.AuthorInput) (*models.AuthorWithBooks, error)
}

// AuthorsUpdater defines the interface that the update handler needs.
type AuthorsUpdater interface {
	Update(ctx context.Context, id int64, in models.AuthorInput) (*models.AuthorWithBooks, error)
}

// AuthorsDeleter defines the interface that the delete handler needs.
type AuthorsDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// authorPayload serializes one author with its nested books, restricted to
// the selected fields.
func authorPayload(a models.AuthorWithBooks, fields []string) map[string]any {
	m := a.Author.Payload()
	books := make([]map[string]any, 0, len(a.Books))
	for _, b := range a.Books {
		books = append(books, b.Payload())
	}
	m["books"] = books
	return selectFields(m, fields)
}

// NewListAuthorsHandler returns an HTTP handler listing authors.
// @Summary List authors
// @Description Returns authors with filtering, sorting, field selection and pagination
// @Tags authors
// @Produce json
// @Param fields query string false "Comma-separated list of fields to return"
// @Param sort query string false "Sort column, prefix with - for descending"
// @Param filter query string false "Filter expression column:value or column:op:value"
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size"
// @Success 200 {object} handlers.ListResponse "Page of authors"
// @Failure 400 {object} handlers.ErrorResponse "Malformed query parameter"
// @Router /authors [get]
func NewListAuthorsHandler(svc AuthorsLister, defaultLimit, maxLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := query.Parse(r, models.AuthorResource, defaultLimit, maxLimit)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		authors, total, err := svc.List(r.Context(), p)
		if err != nil {
			logger.Log.Errorw("failed to list authors", "err", err)
			respondInternal(w)
			return
		}

		data := make([]map[string]any, 0, len(authors))
		for _, a := range authors {
			data = append(data, authorPayload(a, p.Fields))
		}

		writeJSON(w, http.StatusOK, ListResponse{
			Success:         true,
			Data:            data,
			NumberOfRecords: len(data),
			Pagination:      p.Paginate(total),
		})
	}
}

// NewGetAuthorHandler returns an HTTP handler fetching a single author.
// @Summary Get author
// @Tags authors
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} handlers.DataResponse "Author with its books"
// @Failure 404 {object} handlers.ErrorResponse "Author not found"
// @Router /authors/{id} [get]
func NewGetAuthorHandler(svc AuthorsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Author with id %s not found", chiID(r)))
			return
		}

		author, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrAuthorNotFound) {
				respondError(w, http.StatusNotFound, fmt.Sprintf("Author with id %d not found", id))
				return
			}
			logger.Log.Errorw("failed to get author", "id", id, "err", err)
			respondInternal(w)
			return
		}

		respondData(w, http.StatusOK, authorPayload(*author, nil))
	}
}

// NewCreateAuthorHandler returns an HTTP handler creating an author.
// @Summary Create author
// @Tags authors
// @Accept json
// @Produce json
// @Param author body models.AuthorInput true "Author payload"
// @Success 201 {object} handlers.DataResponse "Created author, books empty"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /authors [post]
// @Security BearerAuth
func NewCreateAuthorHandler(svc AuthorsCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.AuthorInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		v := validation.New()
		models.ValidateAuthorInput(v, in)
		if !v.Valid() {
			respondValidation(w, v.Errors)
			return
		}

		author, err := svc.Create(r.Context(), in)
		if err != nil {
			logger.Log.Errorw("failed to create author", "err", err)
			respondInternal(w)
			return
		}

		respondData(w, http.StatusCreated, authorPayload(*author, nil))
	}
}

// NewUpdateAuthorHandler returns an HTTP handler fully updating an author.
// @Summary Update author
// @Tags authors
// @Accept json
// @Produce json
// @Param id path int true "Author ID"
// @Param author body models.AuthorInput true "Author payload"
// @Success 200 {object} handlers.DataResponse "Updated author"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failure"
// @Failure 404 {object} handlers.ErrorResponse "Author not found"
// @Router /authors/{id} [put]
// @Security BearerAuth
func NewUpdateAuthorHandler(svc AuthorsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Author with id %s not found", chiID(r)))
			return
		}

		var in models.AuthorInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		v := validation.New()
		models.ValidateAuthorInput(v, in)
		if !v.Valid() {
			respondValidation(w, v.Errors)
			return
		}

		author, err := svc.Update(r.Context(), id, in)
		if err != nil {
			if errors.Is(err, services.ErrAuthorNotFound) {
				respondError(w, http.StatusNotFound, fmt.Sprintf("Author with id %d not found", id))
				return
			}
			logger.Log.Errorw("failed to update author", "id", id, "err", err)
			respondInternal(w)
			return
		}

		respondData(w, http.StatusOK, authorPayload(*author, nil))
	}
}

// NewDeleteAuthorHandler returns an HTTP handler deleting an author and,
// through the cascade, all of its books.
// @Summary Delete author
// @Description Deletes the author and every book it owns
// @Tags authors
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} handlers.DataResponse "Deletion confirmation"
// @Failure 404 {object} handlers.ErrorResponse "Author not found"
// @Router /authors/{id} [delete]
// @Security BearerAuth
func NewDeleteAuthorHandler(svc AuthorsDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Author with id %s not found", chiID(r)))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, services.ErrAuthorNotFound) {
				respondError(w, http.StatusNotFound, fmt.Sprintf("Author with id %d not found", id))
				return
			}
			logger.Log.Errorw("failed to delete author", "id", id, "err", err)
			respondInternal(w)
			return
		}

		respondData(w, http.StatusOK, fmt.Sprintf("Author with id %d has been deleted", id))
	}
}
