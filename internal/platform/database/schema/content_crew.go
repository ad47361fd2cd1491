package schema

// ContentCrewTable represents the 'content.crew' table
type ContentCrewTable struct {
	Table        string
	ID           string
	Section      string
	Name         string
	Pronouns     string
	Description  string
	Location     string
	Link         string
	ContactLink  string
	ContactLabel string
	Pills        string
	SortOrder    string
}

// ContentCrew is the schema definition for content.crew
var ContentCrew = ContentCrewTable{
	Table:        "content.crew",
	ID:           "id",
	Section:      "section",
	Name:         "name",
	Pronouns:     "pronouns",
	Description:  "description",
	Location:     "location",
	Link:         "link",
	ContactLink:  "contact_link",
	ContactLabel: "contact_label",
	Pills:        "pills",
	SortOrder:    "sort_order",
}

func (t ContentCrewTable) Columns() []string {
	return []string{
		t.ID, t.Section, t.Name, t.Pronouns, t.Description, t.Location,
		t.Link, t.ContactLink, t.ContactLabel, t.Pills,
	}
}
