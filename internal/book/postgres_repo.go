package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT isbn, amazon_url, author, language, pages, publisher, title, year
		FROM books
		ORDER BY title
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ISBN, &b.AmazonURL, &b.Author, &b.Language,
			&b.Pages, &b.Publisher, &b.Title, &b.Year,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	const query = `
		SELECT isbn, amazon_url, author, language, pages, publisher, title, year
		FROM books
		WHERE isbn = $1
		LIMIT 1
	`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, isbn).Scan(
		&b.ISBN, &b.AmazonURL, &b.Author, &b.Language,
		&b.Pages, &b.Publisher, &b.Title, &b.Year,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, &NotFoundError{ISBN: isbn}
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, b Book) (Book, error) {
	const query = `
		INSERT INTO books (isbn, amazon_url, author, language, pages, publisher, title, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING isbn, amazon_url, author, language, pages, publisher, title, year
	`
	var out Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		b.ISBN, b.AmazonURL, b.Author, b.Language,
		b.Pages, b.Publisher, b.Title, b.Year,
	).Scan(
		&out.ISBN, &out.AmazonURL, &out.Author, &out.Language,
		&out.Pages, &out.Publisher, &out.Title, &out.Year,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			// Clients match on the constraint name in the driver text.
			return Book{}, &DuplicateISBNError{ISBN: b.ISBN, Message: pgErr.Message}
		}
		return Book{}, err
	}
	return out, nil
}

func (r *PostgresRepo) Update(ctx context.Context, isbn string, b Book) (Book, error) {
	const query = `
		UPDATE books
		SET amazon_url = $1, author = $2, language = $3, pages = $4,
		    publisher = $5, title = $6, year = $7
		WHERE isbn = $8
		RETURNING isbn, amazon_url, author, language, pages, publisher, title, year
	`
	var out Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		b.AmazonURL, b.Author, b.Language, b.Pages,
		b.Publisher, b.Title, b.Year, isbn,
	).Scan(
		&out.ISBN, &out.AmazonURL, &out.Author, &out.Language,
		&out.Pages, &out.Publisher, &out.Title, &out.Year,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, &NotFoundError{ISBN: isbn}
		}
		return Book{}, err
	}
	return out, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, isbn string) error {
	const query = `DELETE FROM books WHERE isbn = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, isbn)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{ISBN: isbn}
	}
	return nil
}
