package schema

// ContentCastTable represents the 'content.cast' table
type ContentCastTable struct {
	Table        string
	ID           string
	Name         string
	Pronouns     string
	Description  string
	Location     string
	Link         string
	ContactLink  string
	ContactLabel string
	Email        string
	Instagram    string
	Pills        string
	TMDBPersonID string
	PhotoURL     string
	Credits      string
}

// ContentCast is the schema definition for content.cast
var ContentCast = ContentCastTable{
	Table:        "content.cast",
	ID:           "id",
	Name:         "name",
	Pronouns:     "pronouns",
	Description:  "description",
	Location:     "location",
	Link:         "link",
	ContactLink:  "contact_link",
	ContactLabel: "contact_label",
	Email:        "email",
	Instagram:    "instagram",
	Pills:        "pills",
	TMDBPersonID: "tmdb_person_id",
	PhotoURL:     "photo_url",
	Credits:      "credits",
}

func (t ContentCastTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Pronouns, t.Description, t.Location, t.Link,
		t.ContactLink, t.ContactLabel, t.Email, t.Instagram, t.Pills,
		t.TMDBPersonID, t.PhotoURL, t.Credits,
	}
}
