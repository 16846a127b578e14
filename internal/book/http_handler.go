package book

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/David-0115/express-bookstore/internal/httpx"
	"github.com/David-0115/express-bookstore/internal/schema"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"books": books})
}

// GetByISBN handles GET /books/{isbn}
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	b, err := h.service.GetByISBN(r.Context(), isbn)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"book": b})
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		httpx.JSONMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if violations := schema.BookCreate.Validate(payload); len(violations) > 0 {
		httpx.JSONMessage(w, http.StatusBadRequest, violations)
		return
	}

	b := fromPayload(payload)
	created, err := h.service.Create(r.Context(), b)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"book": created})
}

// Update handles PUT /books/{isbn}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	payload, err := decodeBody(r)
	if err != nil {
		httpx.JSONMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if violations := schema.BookUpdate.Validate(payload); len(violations) > 0 {
		httpx.JSONMessage(w, http.StatusBadRequest, violations)
		return
	}

	b := fromPayload(payload)
	updated, err := h.service.Update(r.Context(), isbn, b)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"book": updated})
}

// Delete handles DELETE /books/{isbn}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	if err := h.service.Delete(r.Context(), isbn); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Book deleted")
}

// writeError is the single encoder from storage errors to HTTP responses.
// Duplicate-key keeps the driver text (clients match on the constraint
// name); the conflict status stays 500 for compatibility with existing
// clients even though 409 would be more accurate.
func writeError(w http.ResponseWriter, err error) {
	var notFound *NotFoundError
	var duplicate *DuplicateISBNError
	switch {
	case errors.As(err, &notFound):
		httpx.JSONMessage(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &duplicate):
		httpx.JSONMessage(w, http.StatusInternalServerError, duplicate.Message)
	default:
		httpx.JSONMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody reads the request body as a dynamic JSON object. UseNumber
// keeps integers distinguishable from strings for schema checking. An
// empty body decodes as an empty object, so it fails validation with the
// full required-property list rather than a parse error.
func decodeBody(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return payload, nil
}

// fromPayload maps a schema-validated body onto a Book. For updates the
// caller overrides ISBN with the path parameter.
func fromPayload(payload map[string]any) Book {
	return Book{
		ISBN:      asString(payload["isbn"]),
		AmazonURL: asString(payload["amazon_url"]),
		Author:    asString(payload["author"]),
		Language:  asString(payload["language"]),
		Pages:     asInt(payload["pages"]),
		Publisher: asString(payload["publisher"]),
		Title:     asString(payload["title"]),
		Year:      asInt(payload["year"]),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		f, _ := n.Float64()
		return int(f)
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}
