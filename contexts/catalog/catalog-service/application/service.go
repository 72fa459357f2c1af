package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "bookstore/contexts/catalog/catalog-service/domain/errors"
	"bookstore/contexts/catalog/catalog-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) ListAuthors(ctx context.Context) ([]ports.AuthorView, error) {
	return s.Repo.ListAuthors(ctx)
}

func (s Service) GetAuthor(ctx context.Context, authorID string) (ports.AuthorView, error) {
	if strings.TrimSpace(authorID) == "" {
		return ports.AuthorView{}, domainerrors.ErrAuthorNotFound
	}
	return s.Repo.GetAuthor(ctx, authorID)
}

func (s Service) CreateAuthor(ctx context.Context, name string) (ports.Author, error) {
	logger := resolveLogger(s.Logger)

	name = strings.TrimSpace(name)
	if name == "" {
		return ports.Author{}, domainerrors.ErrAuthorNameRequired
	}
	authorID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Author{}, err
	}
	author := ports.Author{
		AuthorID:  authorID,
		Name:      name,
		BookIDs:   []string{},
		CreatedAt: s.now(),
	}
	if err := s.Repo.CreateAuthor(ctx, author); err != nil {
		return ports.Author{}, err
	}

	logger.Info("author created",
		"event", "catalog_author_created",
		"module", "catalog/catalog-service",
		"layer", "application",
		"author_id", author.AuthorID,
	)
	return author, nil
}

func (s Service) UpdateAuthor(ctx context.Context, authorID string, name string) (ports.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.Author{}, domainerrors.ErrAuthorNameRequired
	}
	return s.Repo.UpdateAuthor(ctx, authorID, name)
}

// DeleteAuthor removes the author record only. Books referencing the author
// are kept with a dangling author id; book reads tolerate the gap.
func (s Service) DeleteAuthor(ctx context.Context, authorID string) error {
	logger := resolveLogger(s.Logger)

	if err := s.Repo.DeleteAuthor(ctx, authorID); err != nil {
		return err
	}
	logger.Info("author deleted",
		"event", "catalog_author_deleted",
		"module", "catalog/catalog-service",
		"layer", "application",
		"author_id", authorID,
	)
	return nil
}

func (s Service) ListBooks(ctx context.Context) ([]ports.BookView, error) {
	return s.Repo.ListBooks(ctx)
}

func (s Service) GetBook(ctx context.Context, bookID string) (ports.BookView, error) {
	if strings.TrimSpace(bookID) == "" {
		return ports.BookView{}, domainerrors.ErrBookNotFound
	}
	return s.Repo.GetBook(ctx, bookID)
}

func (s Service) CreateBook(ctx context.Context, input ports.CreateBookInput) (ports.Book, error) {
	logger := resolveLogger(s.Logger)

	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.ISBN) == "" ||
		strings.TrimSpace(input.AuthorID) == "" {
		return ports.Book{}, domainerrors.ErrMissingFields
	}
	if input.PriceCents <= 0 || input.Quantity < 0 {
		return ports.Book{}, domainerrors.ErrInvalidBook
	}

	bookID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Book{}, err
	}
	now := s.now()
	book := ports.Book{
		BookID:     bookID,
		Title:      strings.TrimSpace(input.Title),
		ISBN:       strings.TrimSpace(input.ISBN),
		PriceCents: input.PriceCents,
		Quantity:   input.Quantity,
		AuthorID:   strings.TrimSpace(input.AuthorID),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.CreateBook(ctx, book); err != nil {
		return ports.Book{}, err
	}

	logger.Info("book created",
		"event", "catalog_book_created",
		"module", "catalog/catalog-service",
		"layer", "application",
		"book_id", book.BookID,
		"author_id", book.AuthorID,
	)
	return book, nil
}

func (s Service) UpdateBook(ctx context.Context, bookID string, input ports.UpdateBookInput) (ports.Book, error) {
	logger := resolveLogger(s.Logger)

	if strings.TrimSpace(bookID) == "" {
		return ports.Book{}, domainerrors.ErrBookNotFound
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return ports.Book{}, domainerrors.ErrMissingFields
	}
	if input.ISBN != nil && strings.TrimSpace(*input.ISBN) == "" {
		return ports.Book{}, domainerrors.ErrMissingFields
	}
	if input.PriceCents != nil && *input.PriceCents <= 0 {
		return ports.Book{}, domainerrors.ErrInvalidBook
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return ports.Book{}, domainerrors.ErrInvalidBook
	}
	if input.AuthorID != nil && strings.TrimSpace(*input.AuthorID) == "" {
		return ports.Book{}, domainerrors.ErrMissingFields
	}

	book, err := s.Repo.UpdateBook(ctx, bookID, input, s.now())
	if err != nil {
		return ports.Book{}, err
	}

	logger.Info("book updated",
		"event", "catalog_book_updated",
		"module", "catalog/catalog-service",
		"layer", "application",
		"book_id", book.BookID,
	)
	return book, nil
}

func (s Service) DeleteBook(ctx context.Context, bookID string) error {
	logger := resolveLogger(s.Logger)

	if strings.TrimSpace(bookID) == "" {
		return domainerrors.ErrBookNotFound
	}
	if err := s.Repo.DeleteBook(ctx, bookID); err != nil {
		return err
	}
	logger.Info("book deleted",
		"event", "catalog_book_deleted",
		"module", "catalog/catalog-service",
		"layer", "application",
		"book_id", bookID,
	)
	return nil
}

// ReserveStock applies a conditional decrement against a single book. The
// returned ok is false when the book is missing or has fewer units than
// requested; in the latter case the returned Book still carries the title.
func (s Service) ReserveStock(ctx context.Context, bookID string, quantity int) (ports.Book, bool, error) {
	if strings.TrimSpace(bookID) == "" || quantity <= 0 {
		return ports.Book{}, false, nil
	}
	return s.Repo.DecrementBookStock(ctx, bookID, quantity, s.now())
}

// ReleaseStock undoes an earlier ReserveStock.
func (s Service) ReleaseStock(ctx context.Context, bookID string, quantity int) error {
	return s.Repo.IncrementBookStock(ctx, bookID, quantity, s.now())
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
