package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainerrors "bookstore/contexts/catalog/catalog-service/domain/errors"
	"bookstore/contexts/catalog/catalog-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) ListAuthors(ctx context.Context) ([]ports.AuthorView, error) {
	var rows []authorModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	views := make([]ports.AuthorView, 0, len(rows))
	for _, row := range rows {
		view, err := r.authorView(ctx, row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *Repository) GetAuthor(ctx context.Context, authorID string) (ports.AuthorView, error) {
	var row authorModel
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.AuthorView{}, domainerrors.ErrAuthorNotFound
		}
		return ports.AuthorView{}, err
	}
	return r.authorView(ctx, row)
}

func (r *Repository) CreateAuthor(ctx context.Context, author ports.Author) error {
	row := authorModel{
		AuthorID:  author.AuthorID,
		Name:      author.Name,
		CreatedAt: author.CreatedAt.UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateAuthor(ctx context.Context, authorID string, name string) (ports.Author, error) {
	result := r.db.WithContext(ctx).
		Model(&authorModel{}).
		Where("author_id = ?", authorID).
		Update("name", name)
	if result.Error != nil {
		return ports.Author{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ports.Author{}, domainerrors.ErrAuthorNotFound
	}

	view, err := r.GetAuthor(ctx, authorID)
	if err != nil {
		return ports.Author{}, err
	}
	return view.Author, nil
}

func (r *Repository) DeleteAuthor(ctx context.Context, authorID string) error {
	result := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&authorModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAuthorNotFound
	}
	return nil
}

func (r *Repository) ListBooks(ctx context.Context) ([]ports.BookView, error) {
	var rows []bookModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	views := make([]ports.BookView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ports.BookView{
			Book:       row.toPort(),
			AuthorName: r.authorName(ctx, row.AuthorID),
		})
	}
	return views, nil
}

func (r *Repository) GetBook(ctx context.Context, bookID string) (ports.BookView, error) {
	var row bookModel
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.BookView{}, domainerrors.ErrBookNotFound
		}
		return ports.BookView{}, err
	}
	return ports.BookView{
		Book:       row.toPort(),
		AuthorName: r.authorName(ctx, row.AuthorID),
	}, nil
}

func (r *Repository) CreateBook(ctx context.Context, book ports.Book) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author authorModel
		if err := tx.Where("author_id = ?", book.AuthorID).First(&author).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrAuthorNotFound
			}
			return err
		}

		row := bookModelFromPort(book)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateISBN
			}
			return err
		}
		return nil
	})
}

func (r *Repository) UpdateBook(ctx context.Context, bookID string, input ports.UpdateBookInput, now time.Time) (ports.Book, error) {
	var updated ports.Book
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row bookModel
		if err := tx.Where("book_id = ?", bookID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrBookNotFound
			}
			return err
		}

		if input.AuthorID != nil && *input.AuthorID != row.AuthorID {
			var author authorModel
			if err := tx.Where("author_id = ?", *input.AuthorID).First(&author).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domainerrors.ErrAuthorNotFound
				}
				return err
			}
			row.AuthorID = *input.AuthorID
		}
		if input.Title != nil {
			row.Title = *input.Title
		}
		if input.ISBN != nil {
			row.ISBN = *input.ISBN
		}
		if input.PriceCents != nil {
			row.PriceCents = *input.PriceCents
		}
		if input.Quantity != nil {
			row.Quantity = *input.Quantity
		}
		row.UpdatedAt = now.UTC()

		if err := tx.Save(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateISBN
			}
			return err
		}
		updated = row.toPort()
		return nil
	})
	if err != nil {
		return ports.Book{}, err
	}
	return updated, nil
}

func (r *Repository) DeleteBook(ctx context.Context, bookID string) error {
	result := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Delete(&bookModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBookNotFound
	}
	return nil
}

// DecrementBookStock relies on a single conditional UPDATE so concurrent
// orders for the same book cannot over-deduct.
func (r *Repository) DecrementBookStock(ctx context.Context, bookID string, quantity int, now time.Time) (ports.Book, bool, error) {
	var row bookModel
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Book{}, false, nil
		}
		return ports.Book{}, false, err
	}

	result := r.db.WithContext(ctx).
		Model(&bookModel{}).
		Where("book_id = ? AND quantity >= ?", bookID, quantity).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity - ?", quantity),
			"updated_at": now.UTC(),
		})
	if result.Error != nil {
		return ports.Book{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return row.toPort(), false, nil
	}
	book := row.toPort()
	book.Quantity -= quantity
	return book, true, nil
}

func (r *Repository) IncrementBookStock(ctx context.Context, bookID string, quantity int, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&bookModel{}).
		Where("book_id = ?", bookID).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", quantity),
			"updated_at": now.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBookNotFound
	}
	return nil
}

func (r *Repository) authorView(ctx context.Context, row authorModel) (ports.AuthorView, error) {
	var books []bookModel
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", row.AuthorID).
		Order("created_at ASC").
		Find(&books).
		Error; err != nil {
		return ports.AuthorView{}, err
	}

	view := ports.AuthorView{
		Author: ports.Author{
			AuthorID:  row.AuthorID,
			Name:      row.Name,
			BookIDs:   make([]string, 0, len(books)),
			CreatedAt: row.CreatedAt.UTC(),
		},
		Books: make([]ports.BookRef, 0, len(books)),
	}
	for _, book := range books {
		view.Author.BookIDs = append(view.Author.BookIDs, book.BookID)
		view.Books = append(view.Books, ports.BookRef{BookID: book.BookID, Title: book.Title})
	}
	return view, nil
}

func (r *Repository) authorName(ctx context.Context, authorID string) string {
	var row authorModel
	err := r.db.WithContext(ctx).
		Select("name").
		Where("author_id = ?", authorID).
		First(&row).
		Error
	if err != nil {
		return ""
	}
	return row.Name
}

type authorModel struct {
	AuthorID  string    `gorm:"column:author_id;primaryKey"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (authorModel) TableName() string {
	return "authors"
}

type bookModel struct {
	BookID     string    `gorm:"column:book_id;primaryKey"`
	Title      string    `gorm:"column:title"`
	ISBN       string    `gorm:"column:isbn;uniqueIndex"`
	PriceCents int64     `gorm:"column:price_cents"`
	Quantity   int       `gorm:"column:quantity"`
	AuthorID   string    `gorm:"column:author_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (bookModel) TableName() string {
	return "books"
}

func bookModelFromPort(book ports.Book) bookModel {
	return bookModel{
		BookID:     book.BookID,
		Title:      book.Title,
		ISBN:       book.ISBN,
		PriceCents: book.PriceCents,
		Quantity:   book.Quantity,
		AuthorID:   book.AuthorID,
		CreatedAt:  book.CreatedAt.UTC(),
		UpdatedAt:  book.UpdatedAt.UTC(),
	}
}

func (m bookModel) toPort() ports.Book {
	return ports.Book{
		BookID:     m.BookID,
		Title:      m.Title,
		ISBN:       m.ISBN,
		PriceCents: m.PriceCents,
		Quantity:   m.Quantity,
		AuthorID:   m.AuthorID,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
