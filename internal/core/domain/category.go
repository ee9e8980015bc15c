package domain

// Category labels entries for display. It is opaque to aggregation: deleting
// a category never touches the entries that reference it.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	AuditFields
}
