package dto

type DocumentOutput struct {
	FileName  string
	Path      string
	PageCount int
}

type PageOutput struct {
	FileName  string
	Number    int
	PageCount int
	Text      string
}
