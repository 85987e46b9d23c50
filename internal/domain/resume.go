package domain

// ContactInfo identifies the resume owner. Optional fields are empty when
// absent from the source.
type ContactInfo struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	GitHub   string
	LeetCode string
	Location string
}

// SkillCategory groups skill items under a label ("Languages", "Cloud").
type SkillCategory struct {
	Category string
	Items    []string
}

// Experience is one position held.
type Experience struct {
	Company   string
	Role      string
	Location  string
	StartDate string
	EndDate   string
	Bullets   []string
}

// Education is one degree or program.
type Education struct {
	Degree     string
	University string
	StartDate  string
	EndDate    string
	Details    []string
}

// Project is a side or portfolio project.
type Project struct {
	Name        string
	Description string
	TechStack   []string
	Link        string
	Bullets     []string
}

// ResumeData is the typed resume built from a validated source tree.
// Values are built once per render and treated as read-only afterwards.
type ResumeData struct {
	Contact    ContactInfo
	Summary    string
	Skills     []SkillCategory
	Experience []Experience
	Education  []Education
	Projects   []Project
}

// Keywords flattens every skill item across categories, in source order.
func (r ResumeData) Keywords() []string {
	var out []string
	for _, sc := range r.Skills {
		out = append(out, sc.Items...)
	}
	return out
}
