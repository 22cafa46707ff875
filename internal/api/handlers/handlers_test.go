package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pbrandao-dev/bookshelf-api/internal/api"
	"github.com/pbrandao-dev/bookshelf-api/internal/auth"
	"github.com/pbrandao-dev/bookshelf-api/internal/models"
	"github.com/pbrandao-dev/bookshelf-api/internal/search"
)

// fakeBookService implements services.BookServiceProvider with
// overridable function fields.
type fakeBookService struct {
	findAll  func(ctx context.Context) ([]models.Book, error)
	findByID func(ctx context.Context, id string) (models.Book, error)
	search   func(ctx context.Context, f search.Filter) ([]models.Book, error)
	create   func(ctx context.Context, in models.BookInput) (models.Book, error)
	update   func(ctx context.Context, id string, in models.BookInput) (models.Book, error)
	delete   func(ctx context.Context, id string) error
}

func (s *fakeBookService) FindAll(ctx context.Context) ([]models.Book, error) {
	return s.findAll(ctx)
}

func (s *fakeBookService) FindByID(ctx context.Context, id string) (models.Book, error) {
	return s.findByID(ctx, id)
}

func (s *fakeBookService) Search(ctx context.Context, f search.Filter) ([]models.Book, error) {
	return s.search(ctx, f)
}

func (s *fakeBookService) Create(ctx context.Context, in models.BookInput) (models.Book, error) {
	return s.create(ctx, in)
}

func (s *fakeBookService) Update(ctx context.Context, id string, in models.BookInput) (models.Book, error) {
	return s.update(ctx, id, in)
}

func (s *fakeBookService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

// fakeUserService implements services.UserServiceProvider.
type fakeUserService struct {
	register     func(ctx context.Context, username, email, password string) (models.User, error)
	authenticate func(ctx context.Context, email, password string) (models.User, error)
	getByID      func(ctx context.Context, id string) (models.User, error)
}

func (s *fakeUserService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	return s.register(ctx, username, email, password)
}

func (s *fakeUserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return s.authenticate(ctx, email, password)
}

func (s *fakeUserService) GetByID(ctx context.Context, id string) (models.User, error) {
	return s.getByID(ctx, id)
}

const testSecret = "handler-test-secret"

func newTestServer(t *testing.T, books *fakeBookService, users *fakeUserService) (*httptest.Server, *auth.JWTManager) {
	t.Helper()
	tokens := auth.NewJWTManager(testSecret, time.Hour)
	srv := httptest.NewServer(api.NewRouter(tokens, books, users, "http://localhost:3000"))
	t.Cleanup(srv.Close)
	return srv, tokens
}

func bearerFor(t *testing.T, tokens *auth.JWTManager) string {
	t.Helper()
	token, err := tokens.Issue(primitive.NewObjectID().Hex(), "reader@example.com", "reader_01")
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, method, url, bearer, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func testBook() models.Book {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	return models.Book{
		ID:              primitive.NewObjectID(),
		Title:           "Dune",
		Author:          "Herbert",
		PublicationDate: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC),
		Price:           29.9,
		PageCount:       412,
		Genre:           "Ficção Científica",
		CreatedAt:       now,
	}
}
