package schema

// RefSavedFilterTable represents the 'saved_filters' table
type RefSavedFilterTable struct {
	Table     string
	ID        string
	Name      string
	Criteria  string
	CreatedAt string
	UpdatedAt string
}

// RefSavedFilter is the schema definition for saved_filters
var RefSavedFilter = RefSavedFilterTable{
	Table:     "saved_filters",
	ID:        "id",
	Name:      "name",
	Criteria:  "criteria",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t RefSavedFilterTable) Columns() []string {
	return []string{t.ID, t.Name, t.Criteria, t.CreatedAt, t.UpdatedAt}
}
