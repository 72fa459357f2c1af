package httpadapter

import (
	"context"
	"log/slog"
	"math"

	"bookstore/contexts/catalog/catalog-service/application"
	domainerrors "bookstore/contexts/catalog/catalog-service/domain/errors"
	"bookstore/contexts/catalog/catalog-service/ports"
	httptransport "bookstore/contexts/catalog/catalog-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ListAuthorsHandler godoc
// @Summary List authors
// @Description Returns all authors with their books joined by title.
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} httptransport.AuthorDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /authors [get]
func (h Handler) ListAuthorsHandler(ctx context.Context) ([]httptransport.AuthorDTO, error) {
	views, err := h.Service.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.AuthorDTO, 0, len(views))
	for _, view := range views {
		items = append(items, toAuthorDTO(view))
	}
	return items, nil
}

// GetAuthorHandler godoc
// @Summary Get an author
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Author id"
// @Success 200 {object} httptransport.AuthorDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /authors/{id} [get]
func (h Handler) GetAuthorHandler(ctx context.Context, authorID string) (httptransport.AuthorDTO, error) {
	view, err := h.Service.GetAuthor(ctx, authorID)
	if err != nil {
		return httptransport.AuthorDTO{}, err
	}
	return toAuthorDTO(view), nil
}

// CreateAuthorHandler godoc
// @Summary Create an author
// @Tags authors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreateAuthorRequest true "Author payload"
// @Success 201 {object} httptransport.AuthorDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /authors [post]
func (h Handler) CreateAuthorHandler(ctx context.Context, req httptransport.CreateAuthorRequest) (httptransport.AuthorDTO, error) {
	author, err := h.Service.CreateAuthor(ctx, req.Name)
	if err != nil {
		return httptransport.AuthorDTO{}, err
	}
	return httptransport.AuthorDTO{
		ID:    author.AuthorID,
		Name:  author.Name,
		Books: []httptransport.BookRefDTO{},
	}, nil
}

// UpdateAuthorHandler godoc
// @Summary Update an author
// @Tags authors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Author id"
// @Param request body httptransport.UpdateAuthorRequest true "Author payload"
// @Success 200 {object} httptransport.AuthorDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /authors/{id} [put]
func (h Handler) UpdateAuthorHandler(ctx context.Context, authorID string, req httptransport.UpdateAuthorRequest) (httptransport.AuthorDTO, error) {
	author, err := h.Service.UpdateAuthor(ctx, authorID, req.Name)
	if err != nil {
		return httptransport.AuthorDTO{}, err
	}
	view, err := h.Service.GetAuthor(ctx, author.AuthorID)
	if err != nil {
		return httptransport.AuthorDTO{}, err
	}
	return toAuthorDTO(view), nil
}

// DeleteAuthorHandler godoc
// @Summary Delete an author
// @Description Removes the author record; the author's books are kept.
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Author id"
// @Success 200 {object} httptransport.MessageResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /authors/{id} [delete]
func (h Handler) DeleteAuthorHandler(ctx context.Context, authorID string) (httptransport.MessageResponse, error) {
	if err := h.Service.DeleteAuthor(ctx, authorID); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "Author deleted successfully"}, nil
}

// ListBooksHandler godoc
// @Summary List books
// @Description Returns all books with the author name joined in.
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {array} httptransport.BookDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /books [get]
func (h Handler) ListBooksHandler(ctx context.Context) ([]httptransport.BookDTO, error) {
	views, err := h.Service.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.BookDTO, 0, len(views))
	for _, view := range views {
		items = append(items, toBookDTO(view))
	}
	return items, nil
}

// GetBookHandler godoc
// @Summary Get a book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book id"
// @Success 200 {object} httptransport.BookDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /books/{id} [get]
func (h Handler) GetBookHandler(ctx context.Context, bookID string) (httptransport.BookDTO, error) {
	view, err := h.Service.GetBook(ctx, bookID)
	if err != nil {
		return httptransport.BookDTO{}, err
	}
	return toBookDTO(view), nil
}

// CreateBookHandler godoc
// @Summary Create a book
// @Description Creates a book and appends its id to the author's book list.
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreateBookRequest true "Book payload"
// @Success 201 {object} httptransport.BookDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /books [post]
func (h Handler) CreateBookHandler(ctx context.Context, req httptransport.CreateBookRequest) (httptransport.BookDTO, error) {
	if req.Price == nil || req.Quantity == nil {
		return httptransport.BookDTO{}, domainerrors.ErrMissingFields
	}
	book, err := h.Service.CreateBook(ctx, ports.CreateBookInput{
		Title:      req.Title,
		ISBN:       req.ISBN,
		PriceCents: priceToCents(*req.Price),
		Quantity:   *req.Quantity,
		AuthorID:   req.AuthorID,
	})
	if err != nil {
		return httptransport.BookDTO{}, err
	}
	return toBookDTO(ports.BookView{Book: book}), nil
}

// UpdateBookHandler godoc
// @Summary Update a book
// @Description Applies partial updates; an author change moves the book id between the authors' book lists.
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book id"
// @Param request body httptransport.UpdateBookRequest true "Book payload"
// @Success 200 {object} httptransport.BookDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /books/{id} [put]
func (h Handler) UpdateBookHandler(ctx context.Context, bookID string, req httptransport.UpdateBookRequest) (httptransport.BookDTO, error) {
	input := ports.UpdateBookInput{
		Title:    req.Title,
		ISBN:     req.ISBN,
		Quantity: req.Quantity,
		AuthorID: req.AuthorID,
	}
	if req.Price != nil {
		cents := priceToCents(*req.Price)
		input.PriceCents = &cents
	}
	book, err := h.Service.UpdateBook(ctx, bookID, input)
	if err != nil {
		return httptransport.BookDTO{}, err
	}
	return toBookDTO(ports.BookView{Book: book}), nil
}

// DeleteBookHandler godoc
// @Summary Delete a book
// @Description Removes the book and pulls its id from the author's book list.
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book id"
// @Success 200 {object} httptransport.MessageResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /books/{id} [delete]
func (h Handler) DeleteBookHandler(ctx context.Context, bookID string) (httptransport.MessageResponse, error) {
	if err := h.Service.DeleteBook(ctx, bookID); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "Book deleted successfully"}, nil
}

func toAuthorDTO(view ports.AuthorView) httptransport.AuthorDTO {
	dto := httptransport.AuthorDTO{
		ID:    view.Author.AuthorID,
		Name:  view.Author.Name,
		Books: make([]httptransport.BookRefDTO, 0, len(view.Books)),
	}
	for _, ref := range view.Books {
		dto.Books = append(dto.Books, httptransport.BookRefDTO{ID: ref.BookID, Title: ref.Title})
	}
	return dto
}

func toBookDTO(view ports.BookView) httptransport.BookDTO {
	return httptransport.BookDTO{
		ID:         view.Book.BookID,
		Title:      view.Book.Title,
		ISBN:       view.Book.ISBN,
		Price:      centsToPrice(view.Book.PriceCents),
		Quantity:   view.Book.Quantity,
		AuthorID:   view.Book.AuthorID,
		AuthorName: view.AuthorName,
	}
}

func priceToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func centsToPrice(cents int64) float64 {
	return float64(cents) / 100
}
