package domain

// Movie is read-only reference data loaded with the catalog.
type Movie struct {
	ID              string
	Title           string
	Genre           string
	DurationMinutes int
	Language        string
	Description     string
	Cast            []string
}
