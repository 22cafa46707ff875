package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pbrandao-dev/bookshelf-api/internal/models"
	"github.com/pbrandao-dev/bookshelf-api/internal/search"
)

// BookServiceProvider defines the interface for book catalog services.
type BookServiceProvider interface {
	FindAll(ctx context.Context) ([]models.Book, error)
	FindByID(ctx context.Context, id string) (models.Book, error)
	Search(ctx context.Context, filter search.Filter) ([]models.Book, error)
	Create(ctx context.Context, in models.BookInput) (models.Book, error)
	Update(ctx context.Context, id string, in models.BookInput) (models.Book, error)
	Delete(ctx context.Context, id string) error
}

// BookService provides business logic for the book catalog, backed by a
// MongoDB collection.
type BookService struct {
	books *mongo.Collection
}

// NewBookService creates a new BookService.
func NewBookService(db *mongo.Database) *BookService {
	return &BookService{books: db.Collection("books")}
}

// FindAll retrieves every book in the catalog.
func (s *BookService) FindAll(ctx context.Context) ([]models.Book, error) {
	return s.find(ctx, bson.M{})
}

// Search retrieves the books matching a structured filter.
func (s *BookService) Search(ctx context.Context, filter search.Filter) ([]models.Book, error) {
	return s.find(ctx, filter.Query())
}

func (s *BookService) find(ctx context.Context, query bson.M) ([]models.Book, error) {
	cursor, err := s.books.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer cursor.Close(ctx)

	// Non-nil so an empty result encodes as [] rather than null.
	books := []models.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	return books, nil
}

// FindByID retrieves a single book. An id that is not a valid ObjectID
// cannot name any stored document, so it reports ErrNotFound.
func (s *BookService) FindByID(ctx context.Context, id string) (models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Book{}, ErrNotFound
	}

	var book models.Book
	err = s.books.FindOne(ctx, bson.M{"_id": oid}).Decode(&book)
	if err == mongo.ErrNoDocuments {
		return models.Book{}, ErrNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("find book: %w", err)
	}
	return book, nil
}

// Create inserts a new book and returns it with its assigned id and
// creation timestamp. Input is assumed validated by the caller.
func (s *BookService) Create(ctx context.Context, in models.BookInput) (models.Book, error) {
	date, err := in.Date()
	if err != nil {
		return models.Book{}, fmt.Errorf("parse publication date: %w", err)
	}

	book := models.Book{
		Title:           in.Title,
		Author:          in.Author,
		PublicationDate: date,
		Price:           *in.Price,
		PageCount:       *in.PageCount,
		Genre:           in.Genre,
		CreatedAt:       time.Now().UTC(),
	}

	result, err := s.books.InsertOne(ctx, book)
	if err != nil {
		return models.Book{}, fmt.Errorf("insert book: %w", err)
	}

	book.ID = result.InsertedID.(primitive.ObjectID)
	return book, nil
}

// Update replaces the mutable fields of an existing book and stamps
// updatedAt. The id and createdAt are never touched.
func (s *BookService) Update(ctx context.Context, id string, in models.BookInput) (models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Book{}, ErrNotFound
	}

	date, err := in.Date()
	if err != nil {
		return models.Book{}, fmt.Errorf("parse publication date: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"title":           in.Title,
		"author":          in.Author,
		"publicationDate": date,
		"price":           *in.Price,
		"pageCount":       *in.PageCount,
		"genre":           in.Genre,
		"updatedAt":       time.Now().UTC(),
	}}

	result, err := s.books.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return models.Book{}, fmt.Errorf("update book: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.Book{}, ErrNotFound
	}

	return s.FindByID(ctx, id)
}

// Delete removes a book, reporting ErrNotFound when no document matched.
func (s *BookService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.books.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
