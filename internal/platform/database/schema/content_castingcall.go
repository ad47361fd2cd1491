package schema

// ContentCastingCallTable represents the 'content.casting_call' table
type ContentCastingCallTable struct {
	Table             string
	Slug              string
	Title             string
	Date              string
	AuditionDeadline  string
	Location          string
	Pay               string
	Type              string
	Union             string
	Under18           string
	PayMin            string
	PayMax            string
	AgeRange          string
	AgeMin            string
	AgeMax            string
	Gender            string
	Ethnicity         string
	Archived          string
	Deleted           string
	Director          string
	FilmingDates      string
	Description       string
	SubmissionDetails string
	SubmissionLink    string
	SourceLink        string
	Exclusive         string
	Roles             string
	CreatedAt         string
	UpdatedAt         string
}

// ContentCastingCall is the schema definition for content.casting_call
var ContentCastingCall = ContentCastingCallTable{
	Table:             "content.casting_call",
	Slug:              "slug",
	Title:             "title",
	Date:              "date",
	AuditionDeadline:  "audition_deadline",
	Location:          "location",
	Pay:               "pay",
	Type:              "type",
	Union:             "union_status",
	Under18:           "under18",
	PayMin:            "pay_min",
	PayMax:            "pay_max",
	AgeRange:          "age_range",
	AgeMin:            "age_min",
	AgeMax:            "age_max",
	Gender:            "gender",
	Ethnicity:         "ethnicity",
	Archived:          "archived",
	Deleted:           "deleted",
	Director:          "director",
	FilmingDates:      "filming_dates",
	Description:       "description",
	SubmissionDetails: "submission_details",
	SubmissionLink:    "submission_link",
	SourceLink:        "source_link",
	Exclusive:         "exclusive",
	Roles:             "roles",
	CreatedAt:         "created_at",
	UpdatedAt:         "updated_at",
}

func (t ContentCastingCallTable) Columns() []string {
	return []string{
		t.Slug, t.Title, t.Date, t.AuditionDeadline, t.Location, t.Pay,
		t.Type, t.Union, t.Under18, t.PayMin, t.PayMax, t.AgeRange,
		t.AgeMin, t.AgeMax, t.Gender, t.Ethnicity, t.Archived,
		t.Director, t.FilmingDates, t.Description, t.SubmissionDetails,
		t.SubmissionLink, t.SourceLink, t.Exclusive, t.Roles,
	}
}
