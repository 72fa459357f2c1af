package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domainerrors "bookstore/contexts/catalog/catalog-service/domain/errors"
	"bookstore/contexts/catalog/catalog-service/ports"

	"github.com/google/uuid"
)

// Store keeps authors and books under one lock so the Author.BookIDs
// backlink and the conditional stock decrement stay atomic.
type Store struct {
	mu      sync.RWMutex
	authors map[string]ports.Author
	books   map[string]ports.Book
	byISBN  map[string]string
}

func NewStore() *Store {
	return &Store{
		authors: make(map[string]ports.Author),
		books:   make(map[string]ports.Book),
		byISBN:  make(map[string]string),
	}
}

func (s *Store) ListAuthors(ctx context.Context) ([]ports.AuthorView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]ports.AuthorView, 0, len(s.authors))
	for _, author := range s.authors {
		views = append(views, s.authorViewLocked(author))
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].Author.CreatedAt.Before(views[j].Author.CreatedAt)
	})
	return views, nil
}

func (s *Store) GetAuthor(ctx context.Context, authorID string) (ports.AuthorView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	author, ok := s.authors[authorID]
	if !ok {
		return ports.AuthorView{}, domainerrors.ErrAuthorNotFound
	}
	return s.authorViewLocked(author), nil
}

func (s *Store) CreateAuthor(ctx context.Context, author ports.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authors[author.AuthorID] = cloneAuthor(author)
	return nil
}

func (s *Store) UpdateAuthor(ctx context.Context, authorID string, name string) (ports.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.authors[authorID]
	if !ok {
		return ports.Author{}, domainerrors.ErrAuthorNotFound
	}
	author.Name = name
	s.authors[authorID] = author
	return cloneAuthor(author), nil
}

func (s *Store) DeleteAuthor(ctx context.Context, authorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[authorID]; !ok {
		return domainerrors.ErrAuthorNotFound
	}
	delete(s.authors, authorID)
	return nil
}

func (s *Store) ListBooks(ctx context.Context) ([]ports.BookView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]ports.BookView, 0, len(s.books))
	for _, book := range s.books {
		views = append(views, s.bookViewLocked(book))
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].Book.CreatedAt.Before(views[j].Book.CreatedAt)
	})
	return views, nil
}

func (s *Store) GetBook(ctx context.Context, bookID string) (ports.BookView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[bookID]
	if !ok {
		return ports.BookView{}, domainerrors.ErrBookNotFound
	}
	return s.bookViewLocked(book), nil
}

func (s *Store) CreateBook(ctx context.Context, book ports.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.authors[book.AuthorID]
	if !ok {
		return domainerrors.ErrAuthorNotFound
	}
	if _, exists := s.byISBN[book.ISBN]; exists {
		return domainerrors.ErrDuplicateISBN
	}

	s.books[book.BookID] = book
	s.byISBN[book.ISBN] = book.BookID
	author.BookIDs = append(author.BookIDs, book.BookID)
	s.authors[author.AuthorID] = author
	return nil
}

func (s *Store) UpdateBook(ctx context.Context, bookID string, input ports.UpdateBookInput, now time.Time) (ports.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok {
		return ports.Book{}, domainerrors.ErrBookNotFound
	}

	// Validate every field before mutating anything so a failed update
	// leaves the author backlinks and the ISBN index untouched.
	if input.AuthorID != nil && *input.AuthorID != book.AuthorID {
		if _, ok := s.authors[*input.AuthorID]; !ok {
			return ports.Book{}, domainerrors.ErrAuthorNotFound
		}
	}
	if input.ISBN != nil && *input.ISBN != book.ISBN {
		if _, exists := s.byISBN[*input.ISBN]; exists {
			return ports.Book{}, domainerrors.ErrDuplicateISBN
		}
	}

	if input.AuthorID != nil && *input.AuthorID != book.AuthorID {
		newAuthor := s.authors[*input.AuthorID]
		if oldAuthor, ok := s.authors[book.AuthorID]; ok {
			oldAuthor.BookIDs = removeID(oldAuthor.BookIDs, bookID)
			s.authors[oldAuthor.AuthorID] = oldAuthor
		}
		newAuthor.BookIDs = append(newAuthor.BookIDs, bookID)
		s.authors[newAuthor.AuthorID] = newAuthor
		book.AuthorID = *input.AuthorID
	}

	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.ISBN != nil && *input.ISBN != book.ISBN {
		delete(s.byISBN, book.ISBN)
		s.byISBN[*input.ISBN] = bookID
		book.ISBN = *input.ISBN
	}
	if input.PriceCents != nil {
		book.PriceCents = *input.PriceCents
	}
	if input.Quantity != nil {
		book.Quantity = *input.Quantity
	}
	book.UpdatedAt = now.UTC()
	s.books[bookID] = book
	return book, nil
}

func (s *Store) DeleteBook(ctx context.Context, bookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok {
		return domainerrors.ErrBookNotFound
	}
	delete(s.books, bookID)
	delete(s.byISBN, book.ISBN)
	if author, ok := s.authors[book.AuthorID]; ok {
		author.BookIDs = removeID(author.BookIDs, bookID)
		s.authors[author.AuthorID] = author
	}
	return nil
}

func (s *Store) DecrementBookStock(ctx context.Context, bookID string, quantity int, now time.Time) (ports.Book, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok {
		return ports.Book{}, false, nil
	}
	if book.Quantity < quantity {
		return book, false, nil
	}
	book.Quantity -= quantity
	book.UpdatedAt = now.UTC()
	s.books[bookID] = book
	return book, true, nil
}

func (s *Store) IncrementBookStock(ctx context.Context, bookID string, quantity int, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok {
		return domainerrors.ErrBookNotFound
	}
	book.Quantity += quantity
	book.UpdatedAt = now.UTC()
	s.books[bookID] = book
	return nil
}

func (s *Store) NewID(ctx context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) authorViewLocked(author ports.Author) ports.AuthorView {
	view := ports.AuthorView{
		Author: cloneAuthor(author),
		Books:  make([]ports.BookRef, 0, len(author.BookIDs)),
	}
	for _, bookID := range author.BookIDs {
		if book, ok := s.books[bookID]; ok {
			view.Books = append(view.Books, ports.BookRef{BookID: bookID, Title: book.Title})
		}
	}
	return view
}

func (s *Store) bookViewLocked(book ports.Book) ports.BookView {
	view := ports.BookView{Book: book}
	if author, ok := s.authors[book.AuthorID]; ok {
		view.AuthorName = author.Name
	}
	return view
}

func cloneAuthor(in ports.Author) ports.Author {
	out := in
	out.BookIDs = append([]string(nil), in.BookIDs...)
	return out
}

func removeID(ids []string, target string) []string {
	filtered := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != target {
			filtered = append(filtered, id)
		}
	}
	return filtered
}

var _ ports.Repository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
