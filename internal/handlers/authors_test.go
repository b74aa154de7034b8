package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaremba/book-library-api/internal/models"
	"github.com/pzaremba/book-library-api/internal/query"
	"github.com/pzaremba/book-library-api/internal/services"
)

// withID injects a chi route context carrying the id path parameter.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleAuthorWithBooks() models.AuthorWithBooks {
	return models.AuthorWithBooks{
		Author: models.AuthorDB{
			ID:        1,
			FirstName: "Andrzej",
			LastName:  "Sapkowski",
			BirthDate: time.Date(1948, 6, 21, 0, 0, 0, 0, time.UTC),
		},
		Books: []models.BookDB{
			{ID: 10, Title: "The Witcher", ISBN: 9788375780635, NumberOfPages: 320, AuthorID: 1},
		},
	}
}

func TestListAuthorsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthorsLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).
		Return([]models.AuthorWithBooks{sampleAuthorWithBooks()}, 1, nil)

	handler := NewListAuthorsHandler(mockSvc, 5, 100)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["number_of_records"])

	data := body["data"].([]any)
	require.Len(t, data, 1)
	author := data[0].(map[string]any)
	assert.Equal(t, "Andrzej", author["first_name"])
	assert.Equal(t, "21-06-1948", author["birth_date"])
	assert.Len(t, author["books"], 1)

	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, "/api/v1/authors?page=1", pagination["current_page"])
	assert.Equal(t, float64(1), pagination["total_records"])
}

func TestListAuthorsHandler_FieldSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthorsLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).
		Return([]models.AuthorWithBooks{sampleAuthorWithBooks()}, 1, nil)

	handler := NewListAuthorsHandler(mockSvc, 5, 100)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors?fields=first_name,last_name", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	author := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "Andrzej", author["first_name"])
	assert.Equal(t, "Sapkowski", author["last_name"])
	assert.NotContains(t, author, "id")
	assert.NotContains(t, author, "birth_date")
	assert.NotContains(t, author, "books")
}

func TestListAuthorsHandler_BadQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthorsLister(ctrl)

	handler := NewListAuthorsHandler(mockSvc, 5, 100)

	tests := []struct {
		name string
		url  string
	}{
		{"UnknownField", "/api/v1/authors?fields=unknown"},
		{"UnknownSortColumn", "/api/v1/authors?sort=unknown"},
		{"UnknownFilterColumn", "/api/v1/authors?filter=unknown:1"},
		{"BadFilterOp", "/api/v1/authors?filter=id:weird:1"},
		{"TextAgainstIntColumn", "/api/v1/authors?filter=id:abc"},
		{"BadDateFilterValue", "/api/v1/authors?filter=birth_date:gte:soon"},
		{"NonNumericPage", "/api/v1/authors?page=abc"},
		{"ZeroPage", "/api/v1/authors?page=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestGetAuthorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	author := sampleAuthorWithBooks()

	mockSvc := NewMockAuthorsGetter(ctrl)
	mockSvc.EXPECT().Get(gomock.Any(), int64(1)).Return(&author, nil)

	handler := NewGetAuthorHandler(mockSvc)

	req := withID(httptest.NewRequest(http.MethodGet, "/api/v1/authors/1", nil), "1")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["id"])
	assert.Len(t, data["books"], 1)
}

func TestGetAuthorHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthorsGetter(ctrl)
	mockSvc.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, services.ErrAuthorNotFound)

	handler := NewGetAuthorHandler(mockSvc)

	req := withID(httptest.NewRequest(http.MethodGet, "/api/v1/authors/42", nil), "42")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Author with id 42 not found", body["message"])
}

func TestCreateAuthorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := models.AuthorWithBooks{
		Author: models.AuthorDB{
			ID:        1,
			FirstName: "Andrzej",
			LastName:  "Sapkowski",
			BirthDate: time.Date(1948, 6, 21, 0, 0, 0, 0, time.UTC),
		},
		Books: []models.BookDB{},
	}

	mockSvc := NewMockAuthorsCreator(ctrl)
	mockSvc.EXPECT().Create(gomock.Any(), models.AuthorInput{
		FirstName: "Andrzej",
		LastName:  "Sapkowski",
		BirthDate: "21-06-1948",
	}).Return(&created, nil)

	handler := NewCreateAuthorHandler(mockSvc)

	body := `{"first_name":"Andrzej","last_name":"Sapkowski","birth_date":"21-06-1948"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/authors", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, "Andrzej", data["first_name"])
	assert.Equal(t, []any{}, data["books"])
}

func TestCreateAuthorHandler_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthorsCreator(ctrl)

	handler := NewCreateAuthorHandler(mockSvc)

	tests := []struct {
		name string
		body string
	}{
		{"MissingFirstName", `{"last_name":"Sapkowski","birth_date":"21-06-1948"}`},
		{"BadDateFormat", `{"first_name":"A","last_name":"B","birth_date":"1948-06-21"}`},
		{"FutureDate", `{"first_name":"A","last_name":"B","birth_date":"01-01-2100"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/authors", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, false, resp["success"])
			assert.NotEmpty(t, resp["errors"])
		})
	}
}

func TestUpdateAuthorHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthorsUpdater(ctrl)
	mockSvc.EXPECT().Update(gomock.Any(), int64(42), gomock.Any()).
		Return(nil, services.ErrAuthorNotFound)

	handler := NewUpdateAuthorHandler(mockSvc)

	body := `{"first_name":"A","last_name":"B","birth_date":"01-01-1990"}`
	req := withID(httptest.NewRequest(http.MethodPut, "/api/v1/authors/42", strings.NewReader(body)), "42")
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteAuthorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthorsDeleter(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	handler := NewDeleteAuthorHandler(mockSvc)

	req := withID(httptest.NewRequest(http.MethodDelete, "/api/v1/authors/1", nil), "1")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Author with id 1 has been deleted", body["data"])
}

func TestDeleteAuthorHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthorsDeleter(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), int64(42)).Return(services.ErrAuthorNotFound)

	handler := NewDeleteAuthorHandler(mockSvc)

	req := withID(httptest.NewRequest(http.MethodDelete, "/api/v1/authors/42", nil), "42")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// Listing still succeeds when a pagination query walks past the last page.
func TestListAuthorsHandler_PageBeyondEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthorsLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *query.Params) ([]models.AuthorWithBooks, int, error) {
			assert.Equal(t, 99, p.Page)
			return []models.AuthorWithBooks{}, 1, nil
		})

	handler := NewListAuthorsHandler(mockSvc, 5, 100)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors?page=99", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, float64(0), body["number_of_records"])
}
