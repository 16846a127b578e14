package schema

// BookCreate is the request schema for POST /books: all eight attributes
// required, isbn included.
var BookCreate = Schema{Properties: []Property{
	{Name: "isbn", Type: String},
	{Name: "amazon_url", Type: String},
	{Name: "author", Type: String},
	{Name: "language", Type: String},
	{Name: "pages", Type: Integer},
	{Name: "publisher", Type: String},
	{Name: "title", Type: String},
	{Name: "year", Type: Integer},
}}

// BookUpdate is the request schema for PUT /books/{isbn}: the seven
// non-key attributes; the ISBN comes from the path.
var BookUpdate = Schema{Properties: []Property{
	{Name: "amazon_url", Type: String},
	{Name: "author", Type: String},
	{Name: "language", Type: String},
	{Name: "pages", Type: Integer},
	{Name: "publisher", Type: String},
	{Name: "title", Type: String},
	{Name: "year", Type: Integer},
}}
