package http

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type BookRefDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type AuthorDTO struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Books []BookRefDTO `json:"books"`
}

type CreateAuthorRequest struct {
	Name string `json:"name"`
}

type UpdateAuthorRequest struct {
	Name string `json:"name"`
}

type BookDTO struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	ISBN       string  `json:"isbn"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	AuthorID   string  `json:"author_id"`
	AuthorName string  `json:"author_name,omitempty"`
}

type CreateBookRequest struct {
	Title    string   `json:"title"`
	ISBN     string   `json:"isbn"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
	AuthorID string   `json:"author"`
}

type UpdateBookRequest struct {
	Title    *string  `json:"title,omitempty"`
	ISBN     *string  `json:"isbn,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	AuthorID *string  `json:"author,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
