package category

// Category is a shared classification label for expenses (e.g. "Food").
// Categories are globally visible and have no owner.
type Category struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
	IsDefault   bool
}
