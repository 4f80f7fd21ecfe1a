package gdocs

// Document is a simplified view of a Google Doc.
type Document struct {
	ID    string
	Title string
	Body  string // plain text, paragraph runs joined with newlines
}
