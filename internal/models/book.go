package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pbrandao-dev/bookshelf-api/internal/validator"
)

// Genres is the fixed list of accepted book genres.
var Genres = []string{
	"Ação e Aventura",
	"Autobiografia",
	"Autoajuda",
	"Biografia",
	"Conto",
	"Crônica",
	"Desenvolvimento Pessoal",
	"Distopia",
	"Divulgação Científica",
	"Dramático",
	"Ensaio",
	"Épico ou Narrativo",
	"Espiritualidade",
	"Fantasia",
	"Ficção Científica",
	"Ficção Histórica",
	"Ficção Policial",
	"Filosofia",
	"Guias e Manuais",
	"História",
	"Horror",
	"Jornalismo Literário",
	"Lírico",
	"Memórias",
	"Novela",
	"Religião",
	"Romance",
	"Suspense",
	"Terror",
	"Thriller",
}

// Book represents a single book document in the catalog.
type Book struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Author          string             `bson:"author" json:"author"`
	PublicationDate time.Time          `bson:"publicationDate" json:"publicationDate"`
	Price           float64            `bson:"price" json:"price"`
	PageCount       int                `bson:"pageCount" json:"pageCount"`
	Genre           string             `bson:"genre" json:"genre"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// BookInput holds the fields a client supplies when creating or replacing
// a book. Price and PageCount are pointers so a missing field can be told
// apart from an explicit zero.
type BookInput struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	PublicationDate string   `json:"publicationDate"`
	Price           *float64 `json:"price"`
	PageCount       *int     `json:"pageCount"`
	Genre           string   `json:"genre"`
}

// dateLayouts are the accepted publicationDate formats: a plain ISO date
// or a full RFC 3339 timestamp.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Date parses the PublicationDate field.
func (in BookInput) Date() (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, in.PublicationDate); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid publication date")
}

// ValidateBookInput checks every field of a create/update payload and
// records failures on v. Nothing touches storage until this passes.
func ValidateBookInput(v *validator.Validator, in BookInput) {
	v.Check(in.Title != "", "title", "must be provided")
	v.Check(in.Author != "", "author", "must be provided")

	v.Check(in.PublicationDate != "", "publicationDate", "must be provided")
	if in.PublicationDate != "" {
		if _, err := in.Date(); err != nil {
			v.AddError("publicationDate", "must be a valid ISO 8601 date")
		}
	}

	v.Check(in.Price != nil, "price", "must be provided")
	if in.Price != nil {
		v.Check(*in.Price >= 0, "price", "must not be negative")
	}

	v.Check(in.PageCount != nil, "pageCount", "must be provided")
	if in.PageCount != nil {
		v.Check(*in.PageCount >= 1, "pageCount", "must be a positive integer")
	}

	v.Check(in.Genre != "", "genre", "must be provided")
	if in.Genre != "" {
		v.Check(validator.In(in.Genre, Genres...), "genre", "must be a known genre")
	}
}
