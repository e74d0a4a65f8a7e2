package book

// Author is a writer referenced by zero or more books.
type Author struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Book is a stocked title. AuthorID references an Author row; the reference
// is declared but not enforced by the storage engine, so orphaned values are
// possible.
type Book struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	AuthorID int64  `json:"author_id"`
	Qty      int64  `json:"qty"`
}

// BookDetail is a book joined with its author's identity for display.
type BookDetail struct {
	Book
	AuthorName    string `json:"author_name"`
	AuthorCountry string `json:"author_country"`
}
