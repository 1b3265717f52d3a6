package library

// Book is a single catalog record. Ids are supplied by the caller and are not
// required to be unique.
type Book struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Author    string `json:"author" yaml:"author"`
	Available bool   `json:"available" yaml:"-"`
	Borrower  string `json:"borrower" yaml:"borrower,omitempty"`
}

// SeedData is the document accepted by ImportSeed.
type SeedData struct {
	Books []Book `yaml:"books"`
}
