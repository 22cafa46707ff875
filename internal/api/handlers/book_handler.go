package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pbrandao-dev/bookshelf-api/internal/models"
	"github.com/pbrandao-dev/bookshelf-api/internal/search"
	"github.com/pbrandao-dev/bookshelf-api/internal/services"
	"github.com/pbrandao-dev/bookshelf-api/internal/validator"
)

// BookHandler handles HTTP requests for the book catalog.
type BookHandler struct {
	service services.BookServiceProvider
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(service services.BookServiceProvider) *BookHandler {
	return &BookHandler{service: service}
}

// List handles the request to get all books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FindAll(r.Context())
	if err != nil {
		respondServerError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, books)
}

// Get handles the request to get a single book by its ID.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	book, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "book not found")
			return
		}
		respondServerError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, book)
}

// Create handles the request to add a new book to the catalog.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v := validator.New()
	models.ValidateBookInput(v, input)
	if !v.Valid() {
		respondValidationErrors(w, v.Errors)
		return
	}

	book, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "book created successfully",
		"book":    book,
	})
}

// Update handles the request to replace an existing book's fields.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input models.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v := validator.New()
	models.ValidateBookInput(v, input)
	if !v.Valid() {
		respondValidationErrors(w, v.Errors)
		return
	}

	book, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "book not found")
			return
		}
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "book updated successfully",
		"book":    book,
	})
}

// Delete handles the request to remove a book from the catalog.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "book not found")
			return
		}
		respondServerError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "book deleted successfully"})
}

// AdvancedSearch handles filtered catalog queries. Parameters that are
// present but unparsable are rejected with field errors before the
// filter is built; absent parameters simply skip their dimension.
func (h *BookHandler) AdvancedSearch(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	filter := search.ParseFilter(r.URL.Query(), v)
	if !v.Valid() {
		respondValidationErrors(w, v.Errors)
		return
	}

	books, err := h.service.Search(r.Context(), filter)
	if err != nil {
		respondServerError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, books)
}

// Genres returns the fixed list of accepted genres so clients can
// populate their forms.
func (h *BookHandler) Genres(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"genres": models.Genres})
}
