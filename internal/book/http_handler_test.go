package book_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-0115/express-bookstore/internal/book"
	"github.com/David-0115/express-bookstore/internal/testutil"
)

func newTestHandler(t *testing.T) (*book.HTTPHandler, *book.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := book.NewMockRepository(ctrl)
	return book.NewHTTPHandler(book.NewService(mockRepo)), mockRepo
}

func TestHTTPHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().List(gomock.Any()).Return([]book.Book{testutil.TestBook}, nil)

		w := httptest.NewRecorder()
		handler.List(w, testutil.NewRequest(http.MethodGet, "/books", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		books, ok := resp.Body["books"].([]any)
		require.True(t, ok)
		require.Len(t, books, 1)
		got := books[0].(map[string]any)
		assert.Equal(t, testutil.TestBook.ISBN, got["isbn"])
		assert.Equal(t, float64(testutil.TestBook.Pages), got["pages"])
	})

	t.Run("empty collection encodes as empty array", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().List(gomock.Any()).Return([]book.Book{}, nil)

		w := httptest.NewRecorder()
		handler.List(w, testutil.NewRequest(http.MethodGet, "/books", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		books, ok := resp.Body["books"].([]any)
		require.True(t, ok)
		assert.Empty(t, books)
	})

	t.Run("storage error", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.List(w, testutil.NewRequest(http.MethodGet, "/books", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Equal(t, "internal server error", resp.Body["message"])
	})
}

func TestHTTPHandler_GetByISBN(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().GetByISBN(gomock.Any(), "0691161518").Return(testutil.TestBook, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/books/0691161518", nil)
		r.SetPathValue("isbn", "0691161518")
		handler.GetByISBN(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		got := resp.Body["book"].(map[string]any)
		assert.Equal(t, testutil.TestBook.Title, got["title"])
	})

	t.Run("not found", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().GetByISBN(gomock.Any(), "0000000").
			Return(book.Book{}, &book.NotFoundError{ISBN: "0000000"})

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/books/0000000", nil)
		r.SetPathValue("isbn", "0000000")
		handler.GetByISBN(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "There is no book with an isbn '0000000", resp.Body["message"])
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().Create(gomock.Any(), testutil.TestBook).Return(testutil.TestBook, nil)

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/books", testutil.Payload(testutil.TestBook)))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusCreated, resp.Code)
		got := resp.Body["book"].(map[string]any)
		assert.Equal(t, testutil.TestBook.ISBN, got["isbn"])
		assert.Equal(t, testutil.TestBook.AmazonURL, got["amazon_url"])
		assert.Equal(t, float64(testutil.TestBook.Year), got["year"])
	})

	t.Run("empty body short-circuits before storage", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/books", map[string]any{}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		expected := []any{
			`instance requires property "isbn"`,
			`instance requires property "amazon_url"`,
			`instance requires property "author"`,
			`instance requires property "language"`,
			`instance requires property "pages"`,
			`instance requires property "publisher"`,
			`instance requires property "title"`,
			`instance requires property "year"`,
		}
		assert.Equal(t, expected, resp.Body["message"])
	})

	t.Run("pages as string rejected", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		payload := testutil.Payload(testutil.TestBook)
		payload["pages"] = "123"
		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/books", payload))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, []any{"instance.pages is not of a type(s) integer"}, resp.Body["message"])
	})

	t.Run("body with no content validates as empty object", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/books", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		violations, ok := resp.Body["message"].([]any)
		require.True(t, ok)
		assert.Len(t, violations, 8)
		assert.Equal(t, `instance requires property "isbn"`, violations[0])
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader("{not json"))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.Create(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "invalid JSON body", resp.Body["message"])
	})

	t.Run("duplicate isbn keeps driver text and legacy 500", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		driverMessage := `duplicate key value violates unique constraint "books_pkey"`
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(book.Book{}, &book.DuplicateISBNError{ISBN: testutil.TestBook.ISBN, Message: driverMessage})

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/books", testutil.Payload(testutil.TestBook)))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Equal(t, driverMessage, resp.Body["message"])
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)

		updated := testutil.TestBook
		updated.Title = "Put Test"
		updated.Author = "David"
		mockRepo.EXPECT().
			Update(gomock.Any(), "0691161518", gomock.Any()).
			Return(updated, nil)

		payload := testutil.Payload(updated)
		delete(payload, "isbn")
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/books/0691161518", payload)
		r.SetPathValue("isbn", "0691161518")
		handler.Update(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		got := resp.Body["book"].(map[string]any)
		assert.Equal(t, "Put Test", got["title"])
		assert.Equal(t, "David", got["author"])
		assert.Equal(t, testutil.TestBook.ISBN, got["isbn"])
	})

	t.Run("empty body lists seven violations", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/books/0691161518", map[string]any{})
		r.SetPathValue("isbn", "0691161518")
		handler.Update(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		expected := []any{
			`instance requires property "amazon_url"`,
			`instance requires property "author"`,
			`instance requires property "language"`,
			`instance requires property "pages"`,
			`instance requires property "publisher"`,
			`instance requires property "title"`,
			`instance requires property "year"`,
		}
		assert.Equal(t, expected, resp.Body["message"])
	})

	t.Run("pages as string rejected", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		payload := testutil.Payload(testutil.TestBook)
		delete(payload, "isbn")
		payload["pages"] = "123"
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/books/0691161518", payload)
		r.SetPathValue("isbn", "0691161518")
		handler.Update(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, []any{"instance.pages is not of a type(s) integer"}, resp.Body["message"])
	})

	t.Run("unknown isbn", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			Update(gomock.Any(), "0000000", gomock.Any()).
			Return(book.Book{}, &book.NotFoundError{ISBN: "0000000"})

		payload := testutil.Payload(testutil.TestBook)
		delete(payload, "isbn")
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/books/0000000", payload)
		r.SetPathValue("isbn", "0000000")
		handler.Update(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().Delete(gomock.Any(), "0691161518").Return(nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodDelete, "/books/0691161518", nil)
		r.SetPathValue("isbn", "0691161518")
		handler.Delete(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "Book deleted", resp.Body["message"])
	})

	t.Run("unknown isbn keeps legacy message", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().Delete(gomock.Any(), "1234").Return(&book.NotFoundError{ISBN: "1234"})

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodDelete, "/books/1234", nil)
		r.SetPathValue("isbn", "1234")
		handler.Delete(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "There is no book with an isbn '1234", resp.Body["message"])
	})
}
