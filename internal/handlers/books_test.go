package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaremba/book-library-api/internal/models"
	"github.com/pzaremba/book-library-api/internal/services"
)

func sampleBookWithAuthor() models.BookWithAuthor {
	return models.BookWithAuthor{
		BookDB: models.BookDB{
			ID:            10,
			Title:         "Solaris",
			ISBN:          9788370540128,
			NumberOfPages: 204,
			AuthorID:      1,
		},
		AuthorFirstName: "Stanislaw",
		AuthorLastName:  "Lem",
	}
}

func TestListBooksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBooksLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).
		Return([]models.BookWithAuthor{sampleBookWithAuthor()}, 1, nil)

	handler := NewListBooksHandler(mockSvc, 5, 100)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	data := body["data"].([]any)
	require.Len(t, data, 1)
	book := data[0].(map[string]any)
	assert.Equal(t, "Solaris", book["title"])
	assert.NotContains(t, book, "author_id")

	author := book["author"].(map[string]any)
	assert.Equal(t, "Stanislaw", author["first_name"])
	assert.Equal(t, "Lem", author["last_name"])
}

func TestGetBookHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBooksGetter(ctrl)
	mockSvc.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, services.ErrBookNotFound)

	handler := NewGetBookHandler(mockSvc)

	req := withID(httptest.NewRequest(http.MethodGet, "/api/v1/books/42", nil), "42")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Book with id 42 not found", body["message"])
}

func TestCreateBookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := sampleBookWithAuthor()

	mockSvc := NewMockBooksCreator(ctrl)
	mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&created, nil)

	handler := NewCreateBookHandler(mockSvc)

	body := `{"title":"Solaris","isbn":9788370540128,"number_of_pages":204,"author_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, "Solaris", data["title"])
	assert.NotNil(t, data["author"])
}

func TestCreateBookHandler_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBooksCreator(ctrl)

	handler := NewCreateBookHandler(mockSvc)

	tests := []struct {
		name string
		body string
	}{
		{"MissingTitle", `{"isbn":9788370540128,"number_of_pages":204,"author_id":1}`},
		{"ShortISBN", `{"title":"Solaris","isbn":12345,"number_of_pages":204,"author_id":1}`},
		{"ZeroPages", `{"title":"Solaris","isbn":9788370540128,"number_of_pages":0,"author_id":1}`},
		{"MissingAuthor", `{"title":"Solaris","isbn":9788370540128,"number_of_pages":204}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestCreateBookHandler_AuthorDoesNotExist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBooksCreator(ctrl)
	mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrAuthorDoesNotExist)

	handler := NewCreateBookHandler(mockSvc)

	body := `{"title":"Solaris","isbn":9788370540128,"number_of_pages":204,"author_id":99}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Author with id 99 does not exist", resp["message"])
}

func TestCreateBookHandler_DuplicateISBN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBooksCreator(ctrl)
	mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &services.ConflictError{Resource: "Book", Field: "isbn", Value: int64(9788370540128)})

	handler := NewCreateBookHandler(mockSvc)

	body := `{"title":"Solaris","isbn":9788370540128,"number_of_pages":204,"author_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Book with isbn 9788370540128 already exists", resp["message"])
}

func TestUpdateBookHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBooksUpdater(ctrl)
	mockSvc.EXPECT().Update(gomock.Any(), int64(42), gomock.Any()).
		Return(nil, services.ErrBookNotFound)

	handler := NewUpdateBookHandler(mockSvc)

	body := `{"title":"Solaris","isbn":9788370540128,"number_of_pages":204,"author_id":1}`
	req := withID(httptest.NewRequest(http.MethodPut, "/api/v1/books/42", strings.NewReader(body)), "42")
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteBookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBooksDeleter(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)

	handler := NewDeleteBookHandler(mockSvc)

	req := withID(httptest.NewRequest(http.MethodDelete, "/api/v1/books/10", nil), "10")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Book with id 10 has been deleted", body["data"])
}
