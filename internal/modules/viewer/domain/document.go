package domain

// Document is a fetched course PDF held in the local cache.
type Document struct {
	FileName  string
	Path      string
	PageCount int
}

// Page is one page of extracted text.
type Page struct {
	Number int
	Text   string
}

// ClampPage keeps page navigation inside the document.
func ClampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if total > 0 && page > total {
		return total
	}
	return page
}
