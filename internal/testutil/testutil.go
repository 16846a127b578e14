package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/David-0115/express-bookstore/internal/book"
)

// TestBook is the canned fixture shared by handler and integration tests.
var TestBook = book.Book{
	ISBN:      "0691161518",
	AmazonURL: "http://a.co/eobPtX2",
	Author:    "Matthew Lane",
	Language:  "english",
	Pages:     264,
	Publisher: "Princeton University Press",
	Title:     "Power-Up: Unlocking the Hidden Mathematics in Video Games",
	Year:      2017,
}

// Payload returns b's attributes as a dynamic JSON object, the shape
// request bodies take after decoding.
func Payload(b book.Book) map[string]any {
	return map[string]any{
		"isbn":       b.ISBN,
		"amazon_url": b.AmazonURL,
		"author":     b.Author,
		"language":   b.Language,
		"pages":      b.Pages,
		"publisher":  b.Publisher,
		"title":      b.Title,
		"year":       b.Year,
	}
}

// NewRequest creates a new HTTP request for testing. A non-nil body is
// JSON-encoded.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse holds a recorded HTTP response with its decoded body.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
