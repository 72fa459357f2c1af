package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	catalogerrors "bookstore/contexts/catalog/catalog-service/domain/errors"
	cataloghttp "bookstore/contexts/catalog/catalog-service/transport/http"
	authports "bookstore/contexts/identity-access/auth-service/ports"
)

func (s *Server) handleListAuthors(w http.ResponseWriter, r *http.Request, _ authports.Claims) {
	resp, err := s.catalog.Handler.ListAuthorsHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAuthor(w http.ResponseWriter, r *http.Request, _ authports.Claims) {
	resp, err := s.catalog.Handler.GetAuthorHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateAuthor(w http.ResponseWriter, r *http.Request, _ authports.Claims) {
	var req cataloghttp.CreateAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "request body must be valid JSON", "")
		return
	}

	resp, err := s.catalog.Handler.CreateAuthorHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateAuthor(w http.ResponseWriter, r *http.Request, _ authports.Claims) {
	var req cataloghttp.UpdateAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "request body must be valid JSON", "")
		return
	}

	resp, err := s.catalog.Handler.UpdateAuthorHandler(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteAuthor(w http.ResponseWriter, r *http.Request, _ authports.Claims) {
	resp, err := s.catalog.Handler.DeleteAuthorHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request, _ authports.Claims) {
	resp, err := s.catalog.Handler.ListBooksHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request, _ authports.Claims) {
	resp, err := s.catalog.Handler.GetBookHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request, _ authports.Claims) {
	var req cataloghttp.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "request body must be valid JSON", "")
		return
	}

	resp, err := s.catalog.Handler.CreateBookHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request, _ authports.Claims) {
	var req cataloghttp.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "request body must be valid JSON", "")
		return
	}

	resp, err := s.catalog.Handler.UpdateBookHandler(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request, _ authports.Claims) {
	resp, err := s.catalog.Handler.DeleteBookHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrMissingFields),
		errors.Is(err, catalogerrors.ErrInvalidBook),
		errors.Is(err, catalogerrors.ErrAuthorNameRequired),
		errors.Is(err, catalogerrors.ErrDuplicateISBN):
		writeCatalogError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, catalogerrors.ErrBookNotFound),
		errors.Is(err, catalogerrors.ErrAuthorNotFound):
		writeCatalogError(w, http.StatusNotFound, err.Error(), "")
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal server error", err.Error())
	}
}

func writeCatalogError(w http.ResponseWriter, status int, message string, details string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{
		Error:   message,
		Details: details,
	})
}
