package main

import (
	"context"
	"log"

	"github.com/David-0115/express-bookstore/internal/book"
	"github.com/David-0115/express-bookstore/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

var sampleBooks = []book.Book{
	{
		ISBN:      "0691161518",
		AmazonURL: "http://a.co/eobPtX2",
		Author:    "Matthew Lane",
		Language:  "english",
		Pages:     264,
		Publisher: "Princeton University Press",
		Title:     "Power-Up: Unlocking the Hidden Mathematics in Video Games",
		Year:      2017,
	},
	{
		ISBN:      "0048231886",
		AmazonURL: "http://www.amazon.com/fellowship",
		Author:    "JRR Tolkien",
		Language:  "english",
		Pages:     423,
		Publisher: "George Allen & Unwin",
		Title:     "The Fellowship of the Ring",
		Year:      1954,
	},
	{
		ISBN:      "0201616224",
		AmazonURL: "http://www.amazon.com/pragprog",
		Author:    "Andrew Hunt",
		Language:  "english",
		Pages:     352,
		Publisher: "Addison-Wesley",
		Title:     "The Pragmatic Programmer",
		Year:      1999,
	},
}

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cfg := config.Load()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	const query = `
		INSERT INTO books (isbn, amazon_url, author, language, pages, publisher, title, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (isbn) DO NOTHING
	`

	inserted := 0
	for _, b := range sampleBooks {
		tag, err := pool.Exec(ctx, query,
			b.ISBN, b.AmazonURL, b.Author, b.Language,
			b.Pages, b.Publisher, b.Title, b.Year,
		)
		if err != nil {
			log.Fatalf("Failed to seed book %s: %v", b.ISBN, err)
		}
		inserted += int(tag.RowsAffected())
	}

	log.Printf("Seeded %d of %d books", inserted, len(sampleBooks))
}
