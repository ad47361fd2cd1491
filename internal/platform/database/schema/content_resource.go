package schema

// ContentResourceTable represents the 'content.resource' table
type ContentResourceTable struct {
	Table       string
	ID          string
	Section     string
	Title       string
	Type        string
	Subcategory string
	Description string
	Location    string
	Link        string
	IMDBLink    string
	Vendor      string
	Pills       string
	Schedule    string
	SortOrder   string
}

// ContentResource is the schema definition for content.resource
var ContentResource = ContentResourceTable{
	Table:       "content.resource",
	ID:          "id",
	Section:     "section",
	Title:       "title",
	Type:        "type",
	Subcategory: "subcategory",
	Description: "description",
	Location:    "location",
	Link:        "link",
	IMDBLink:    "imdb_link",
	Vendor:      "vendor",
	Pills:       "pills",
	Schedule:    "schedule",
	SortOrder:   "sort_order",
}

func (t ContentResourceTable) Columns() []string {
	return []string{
		t.ID, t.Section, t.Title, t.Type, t.Subcategory, t.Description,
		t.Location, t.Link, t.IMDBLink, t.Vendor, t.Pills, t.Schedule,
	}
}
