package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Author struct {
	AuthorID  string
	Name      string
	BookIDs   []string
	CreatedAt time.Time
}

type Book struct {
	BookID     string
	Title      string
	ISBN       string
	PriceCents int64
	Quantity   int
	AuthorID   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BookRef is a book reference joined into author reads for display.
type BookRef struct {
	BookID string
	Title  string
}

type AuthorView struct {
	Author Author
	Books  []BookRef
}

// BookView joins the author name into book reads for display. AuthorName is
// empty when the author record no longer exists (author deletion does not
// cascade to books).
type BookView struct {
	Book       Book
	AuthorName string
}

type CreateBookInput struct {
	Title      string
	ISBN       string
	PriceCents int64
	Quantity   int
	AuthorID   string
}

// UpdateBookInput carries partial updates; nil fields are left unchanged.
type UpdateBookInput struct {
	Title      *string
	ISBN       *string
	PriceCents *int64
	Quantity   *int
	AuthorID   *string
}

// Repository owns both sides of the author/book relation so the
// Author.BookIDs backlink is maintained in exactly one place.
type Repository interface {
	ListAuthors(ctx context.Context) ([]AuthorView, error)
	GetAuthor(ctx context.Context, authorID string) (AuthorView, error)
	CreateAuthor(ctx context.Context, author Author) error
	UpdateAuthor(ctx context.Context, authorID string, name string) (Author, error)
	DeleteAuthor(ctx context.Context, authorID string) error

	ListBooks(ctx context.Context) ([]BookView, error)
	GetBook(ctx context.Context, bookID string) (BookView, error)
	CreateBook(ctx context.Context, book Book) error
	UpdateBook(ctx context.Context, bookID string, input UpdateBookInput, now time.Time) (Book, error)
	DeleteBook(ctx context.Context, bookID string) error

	// DecrementBookStock applies a conditional decrement: it succeeds only
	// when the book exists and quantity >= requested, atomically per book.
	// ok=false reports failure without distinguishing missing from
	// insufficient; the returned book carries the title when resolvable.
	DecrementBookStock(ctx context.Context, bookID string, quantity int, now time.Time) (Book, bool, error)
	// IncrementBookStock restores previously reserved stock (compensation).
	IncrementBookStock(ctx context.Context, bookID string, quantity int, now time.Time) error
}
