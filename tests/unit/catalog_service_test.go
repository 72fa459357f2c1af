package unit

import (
	"context"
	"errors"
	"testing"

	catalogservice "bookstore/contexts/catalog/catalog-service"
	domainerrors "bookstore/contexts/catalog/catalog-service/domain/errors"
	"bookstore/contexts/catalog/catalog-service/ports"
	httptransport "bookstore/contexts/catalog/catalog-service/transport/http"
)

func newCatalogModule() catalogservice.Module {
	return catalogservice.NewInMemoryModule(nil)
}

func createAuthor(t *testing.T, module catalogservice.Module, name string) string {
	t.Helper()
	author, err := module.Service.CreateAuthor(context.Background(), name)
	if err != nil {
		t.Fatalf("create author %q failed: %v", name, err)
	}
	return author.AuthorID
}

func createBook(t *testing.T, module catalogservice.Module, title, isbn, authorID string, priceCents int64, quantity int) string {
	t.Helper()
	book, err := module.Service.CreateBook(context.Background(), ports.CreateBookInput{
		Title:      title,
		ISBN:       isbn,
		PriceCents: priceCents,
		Quantity:   quantity,
		AuthorID:   authorID,
	})
	if err != nil {
		t.Fatalf("create book %q failed: %v", title, err)
	}
	return book.BookID
}

func TestCreateBookAppendsToAuthorBookList(t *testing.T) {
	module := newCatalogModule()
	authorID := createAuthor(t, module, "Ursula Vernon")
	bookID := createBook(t, module, "Nettle and Bone", "978-1-25-024440-3", authorID, 1899, 5)

	view, err := module.Service.GetAuthor(context.Background(), authorID)
	if err != nil {
		t.Fatalf("get author failed: %v", err)
	}
	if len(view.Author.BookIDs) != 1 || view.Author.BookIDs[0] != bookID {
		t.Fatalf("expected author book list [%s], got %v", bookID, view.Author.BookIDs)
	}
	if len(view.Books) != 1 || view.Books[0].Title != "Nettle and Bone" {
		t.Fatalf("expected joined book title, got %+v", view.Books)
	}

	book, err := module.Service.GetBook(context.Background(), bookID)
	if err != nil {
		t.Fatalf("get book failed: %v", err)
	}
	if book.Book.AuthorID != authorID {
		t.Fatalf("expected author id %s, got %s", authorID, book.Book.AuthorID)
	}
	if book.AuthorName != "Ursula Vernon" {
		t.Fatalf("expected joined author name, got %q", book.AuthorName)
	}
}

func TestCreateBookValidation(t *testing.T) {
	module := newCatalogModule()
	authorID := createAuthor(t, module, "Ursula Vernon")

	_, err := module.Service.CreateBook(context.Background(), ports.CreateBookInput{
		Title:      "",
		ISBN:       "978-1-25-024440-3",
		PriceCents: 1899,
		Quantity:   5,
		AuthorID:   authorID,
	})
	if !errors.Is(err, domainerrors.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	_, err = module.Service.CreateBook(context.Background(), ports.CreateBookInput{
		Title:      "Nettle and Bone",
		ISBN:       "978-1-25-024440-3",
		PriceCents: 0,
		Quantity:   5,
		AuthorID:   authorID,
	})
	if !errors.Is(err, domainerrors.ErrInvalidBook) {
		t.Fatalf("expected ErrInvalidBook for zero price, got %v", err)
	}

	_, err = module.Service.CreateBook(context.Background(), ports.CreateBookInput{
		Title:      "Nettle and Bone",
		ISBN:       "978-1-25-024440-3",
		PriceCents: 1899,
		Quantity:   5,
		AuthorID:   "missing-author",
	})
	if !errors.Is(err, domainerrors.ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}
}

func TestCreateBookRejectsDuplicateISBN(t *testing.T) {
	module := newCatalogModule()
	authorID := createAuthor(t, module, "Ursula Vernon")
	createBook(t, module, "Nettle and Bone", "978-1-25-024440-3", authorID, 1899, 5)

	_, err := module.Service.CreateBook(context.Background(), ports.CreateBookInput{
		Title:      "Thornhedge",
		ISBN:       "978-1-25-024440-3",
		PriceCents: 1499,
		Quantity:   3,
		AuthorID:   authorID,
	})
	if !errors.Is(err, domainerrors.ErrDuplicateISBN) {
		t.Fatalf("expected ErrDuplicateISBN, got %v", err)
	}
}

func TestUpdateBookAuthorMovesBookBetweenLists(t *testing.T) {
	module := newCatalogModule()
	authorA := createAuthor(t, module, "Author A")
	authorB := createAuthor(t, module, "Author B")
	bookID := createBook(t, module, "Wandering Tome", "978-0-00-000001-1", authorA, 2500, 2)

	newAuthor := authorB
	if _, err := module.Service.UpdateBook(context.Background(), bookID, ports.UpdateBookInput{AuthorID: &newAuthor}); err != nil {
		t.Fatalf("update book author failed: %v", err)
	}

	viewA, err := module.Service.GetAuthor(context.Background(), authorA)
	if err != nil {
		t.Fatalf("get author A failed: %v", err)
	}
	if len(viewA.Author.BookIDs) != 0 {
		t.Fatalf("expected author A book list empty, got %v", viewA.Author.BookIDs)
	}

	viewB, err := module.Service.GetAuthor(context.Background(), authorB)
	if err != nil {
		t.Fatalf("get author B failed: %v", err)
	}
	if len(viewB.Author.BookIDs) != 1 || viewB.Author.BookIDs[0] != bookID {
		t.Fatalf("expected author B book list [%s], got %v", bookID, viewB.Author.BookIDs)
	}
}

func TestFailedUpdateLeavesAuthorListsAndBookUntouched(t *testing.T) {
	module := newCatalogModule()
	authorA := createAuthor(t, module, "Author A")
	authorB := createAuthor(t, module, "Author B")
	bookID := createBook(t, module, "Wandering Tome", "978-0-00-000001-1", authorA, 2500, 2)
	otherID := createBook(t, module, "Settled Tome", "978-0-00-000002-8", authorB, 3000, 1)

	newAuthor := authorB
	takenISBN := "978-0-00-000002-8"
	_, err := module.Service.UpdateBook(context.Background(), bookID, ports.UpdateBookInput{
		AuthorID: &newAuthor,
		ISBN:     &takenISBN,
	})
	if !errors.Is(err, domainerrors.ErrDuplicateISBN) {
		t.Fatalf("expected ErrDuplicateISBN, got %v", err)
	}

	book, err := module.Service.GetBook(context.Background(), bookID)
	if err != nil {
		t.Fatalf("get book failed: %v", err)
	}
	if book.Book.AuthorID != authorA {
		t.Fatalf("expected book still under author A, got %s", book.Book.AuthorID)
	}
	if book.Book.ISBN != "978-0-00-000001-1" {
		t.Fatalf("expected original isbn kept, got %s", book.Book.ISBN)
	}

	viewA, err := module.Service.GetAuthor(context.Background(), authorA)
	if err != nil {
		t.Fatalf("get author A failed: %v", err)
	}
	if len(viewA.Author.BookIDs) != 1 || viewA.Author.BookIDs[0] != bookID {
		t.Fatalf("expected author A book list [%s], got %v", bookID, viewA.Author.BookIDs)
	}

	viewB, err := module.Service.GetAuthor(context.Background(), authorB)
	if err != nil {
		t.Fatalf("get author B failed: %v", err)
	}
	if len(viewB.Author.BookIDs) != 1 || viewB.Author.BookIDs[0] != otherID {
		t.Fatalf("expected author B book list [%s], got %v", otherID, viewB.Author.BookIDs)
	}
}

func TestUpdateBookSameAuthorIsNoOpForLists(t *testing.T) {
	module := newCatalogModule()
	authorA := createAuthor(t, module, "Author A")
	bookID := createBook(t, module, "Wandering Tome", "978-0-00-000001-1", authorA, 2500, 2)

	sameAuthor := authorA
	if _, err := module.Service.UpdateBook(context.Background(), bookID, ports.UpdateBookInput{AuthorID: &sameAuthor}); err != nil {
		t.Fatalf("no-op author update failed: %v", err)
	}

	view, err := module.Service.GetAuthor(context.Background(), authorA)
	if err != nil {
		t.Fatalf("get author failed: %v", err)
	}
	if len(view.Author.BookIDs) != 1 || view.Author.BookIDs[0] != bookID {
		t.Fatalf("expected unchanged book list [%s], got %v", bookID, view.Author.BookIDs)
	}
}

func TestDeleteBookPullsIDFromAuthorList(t *testing.T) {
	module := newCatalogModule()
	authorID := createAuthor(t, module, "Ursula Vernon")
	bookID := createBook(t, module, "Nettle and Bone", "978-1-25-024440-3", authorID, 1899, 5)

	if err := module.Service.DeleteBook(context.Background(), bookID); err != nil {
		t.Fatalf("delete book failed: %v", err)
	}

	view, err := module.Service.GetAuthor(context.Background(), authorID)
	if err != nil {
		t.Fatalf("get author failed: %v", err)
	}
	if len(view.Author.BookIDs) != 0 {
		t.Fatalf("expected empty book list, got %v", view.Author.BookIDs)
	}

	if _, err := module.Service.GetBook(context.Background(), bookID); !errors.Is(err, domainerrors.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestDeleteAuthorKeepsBooks(t *testing.T) {
	module := newCatalogModule()
	authorID := createAuthor(t, module, "Ursula Vernon")
	bookID := createBook(t, module, "Nettle and Bone", "978-1-25-024440-3", authorID, 1899, 5)

	if err := module.Service.DeleteAuthor(context.Background(), authorID); err != nil {
		t.Fatalf("delete author failed: %v", err)
	}

	view, err := module.Service.GetBook(context.Background(), bookID)
	if err != nil {
		t.Fatalf("expected book to survive author deletion, got %v", err)
	}
	if view.AuthorName != "" {
		t.Fatalf("expected empty author name for dangling reference, got %q", view.AuthorName)
	}
}

func TestCreateBookHandlerRequiresPriceAndQuantity(t *testing.T) {
	module := newCatalogModule()
	authorID := createAuthor(t, module, "Ursula Vernon")

	price := 18.99
	_, err := module.Handler.CreateBookHandler(context.Background(), httptransport.CreateBookRequest{
		Title:    "Nettle and Bone",
		ISBN:     "978-1-25-024440-3",
		Price:    &price,
		AuthorID: authorID,
	})
	if !errors.Is(err, domainerrors.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for absent quantity, got %v", err)
	}
}
