package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbrandao-dev/bookshelf-api/internal/models"
	"github.com/pbrandao-dev/bookshelf-api/internal/search"
	"github.com/pbrandao-dev/bookshelf-api/internal/services"
)

func TestBookRoutesRequireToken(t *testing.T) {
	srv, _ := newTestServer(t, &fakeBookService{}, &fakeUserService{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/books", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, srv.URL+"/api/books", "Bearer bogus", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestListBooks(t *testing.T) {
	books := &fakeBookService{
		findAll: func(ctx context.Context) ([]models.Book, error) {
			return []models.Book{testBook()}, nil
		},
	}
	srv, tokens := newTestServer(t, books, &fakeUserService{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/books", bearerFor(t, tokens), "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got []models.Book
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Dune", got[0].Title)
}

func TestListBooksEmptyCatalogEncodesAsArray(t *testing.T) {
	books := &fakeBookService{
		findAll: func(ctx context.Context) ([]models.Book, error) {
			return []models.Book{}, nil
		},
	}
	srv, tokens := newTestServer(t, books, &fakeUserService{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/books", bearerFor(t, tokens), "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestCreateBook(t *testing.T) {
	created := testBook()
	books := &fakeBookService{
		create: func(ctx context.Context, in models.BookInput) (models.Book, error) {
			assert.Equal(t, "Dune", in.Title)
			assert.Equal(t, 29.9, *in.Price)
			return created, nil
		},
	}
	srv, tokens := newTestServer(t, books, &fakeUserService{})

	body := `{"title":"Dune","author":"Herbert","publicationDate":"1965-08-01","price":29.9,"pageCount":412,"genre":"Ficção Científica"}`
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/books", bearerFor(t, tokens), body)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var got struct {
		Message string      `json:"message"`
		Book    models.Book `json:"book"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, created.ID, got.Book.ID)
	assert.False(t, got.Book.CreatedAt.IsZero())
}

func TestCreateBookValidationFailsBeforeStorage(t *testing.T) {
	storageTouched := false
	books := &fakeBookService{
		create: func(ctx context.Context, in models.BookInput) (models.Book, error) {
			storageTouched = true
			return models.Book{}, nil
		},
	}
	srv, tokens := newTestServer(t, books, &fakeUserService{})

	// Negative price, missing pageCount, genre outside the list.
	body := `{"title":"Dune","author":"Herbert","publicationDate":"1965-08-01","price":-5,"genre":"Culinária"}`
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/books", bearerFor(t, tokens), body)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var got struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Contains(t, got.Errors, "price")
	assert.Contains(t, got.Errors, "pageCount")
	assert.Contains(t, got.Errors, "genre")
	assert.False(t, storageTouched)
}

func TestGetBookNotFound(t *testing.T) {
	books := &fakeBookService{
		findByID: func(ctx context.Context, id string) (models.Book, error) {
			return models.Book{}, services.ErrNotFound
		},
	}
	srv, tokens := newTestServer(t, books, &fakeUserService{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/books/652f1e9b8f1b2c0001a3d001", bearerFor(t, tokens), "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateBookNotFound(t *testing.T) {
	books := &fakeBookService{
		update: func(ctx context.Context, id string, in models.BookInput) (models.Book, error) {
			return models.Book{}, services.ErrNotFound
		},
	}
	srv, tokens := newTestServer(t, books, &fakeUserService{})

	body := `{"title":"Dune","author":"Herbert","publicationDate":"1965-08-01","price":29.9,"pageCount":412,"genre":"Ficção Científica"}`
	resp := doRequest(t, http.MethodPut, srv.URL+"/api/books/652f1e9b8f1b2c0001a3d001", bearerFor(t, tokens), body)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteBookNotFoundIsNot200(t *testing.T) {
	books := &fakeBookService{
		delete: func(ctx context.Context, id string) error {
			return services.ErrNotFound
		},
	}
	srv, tokens := newTestServer(t, books, &fakeUserService{})

	resp := doRequest(t, http.MethodDelete, srv.URL+"/api/books/652f1e9b8f1b2c0001a3d001", bearerFor(t, tokens), "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteBook(t *testing.T) {
	books := &fakeBookService{
		delete: func(ctx context.Context, id string) error { return nil },
	}
	srv, tokens := newTestServer(t, books, &fakeUserService{})

	resp := doRequest(t, http.MethodDelete, srv.URL+"/api/books/652f1e9b8f1b2c0001a3d001", bearerFor(t, tokens), "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdvancedSearchBuildsFilterFromParams(t *testing.T) {
	var captured search.Filter
	books := &fakeBookService{
		search: func(ctx context.Context, f search.Filter) ([]models.Book, error) {
			captured = f
			return []models.Book{testBook()}, nil
		},
	}
	srv, tokens := newTestServer(t, books, &fakeUserService{})

	url := srv.URL + "/api/books/search/advanced?minPages=300&genre=Romance&genre=Suspense"
	resp := doRequest(t, http.MethodGet, url, bearerFor(t, tokens), "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, captured.MinPages)
	assert.Equal(t, 300, *captured.MinPages)
	assert.Equal(t, []string{"Romance", "Suspense"}, captured.Genres)
	assert.Nil(t, captured.MinPrice)
	assert.Nil(t, captured.FromDate)
}

func TestAdvancedSearchRejectsBadParams(t *testing.T) {
	storageTouched := false
	books := &fakeBookService{
		search: func(ctx context.Context, f search.Filter) ([]models.Book, error) {
			storageTouched = true
			return nil, nil
		},
	}
	srv, tokens := newTestServer(t, books, &fakeUserService{})

	url := srv.URL + "/api/books/search/advanced?minPrice=cheap"
	resp := doRequest(t, http.MethodGet, url, bearerFor(t, tokens), "")

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var got struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Contains(t, got.Errors, "minPrice")
	assert.False(t, storageTouched)
}

func TestGenresEndpoint(t *testing.T) {
	srv, tokens := newTestServer(t, &fakeBookService{}, &fakeUserService{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/books/genres", bearerFor(t, tokens), "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got struct {
		Genres []string `json:"genres"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Contains(t, got.Genres, "Romance")
	assert.Len(t, got.Genres, len(models.Genres))
}

func TestHealthEndpointIsOpen(t *testing.T) {
	srv, _ := newTestServer(t, &fakeBookService{}, &fakeUserService{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/health", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
