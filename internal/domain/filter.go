package domain

// ListFilter selects the notes returned by a store listing.
type ListFilter struct {
	View   View
	Search string
}

// ViewOptions shapes an already-listed set of notes for display.
// A nil Color matches every color.
type ViewOptions struct {
	Color *Color
	Date  DateFilter
	Sort  SortOrder
}
