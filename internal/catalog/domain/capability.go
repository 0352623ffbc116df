// Package domain defines the core domain models and types for the capability
// catalog. Capabilities are consulting skill areas with descriptive metadata
// and a roster of registered consultants.
package domain

// Capability represents a consulting skill area with its metadata and roster.
type Capability struct {
	// Name is the unique key identifying this capability in the catalog.
	// It is carried separately in API responses, which map name to details.
	Name string `json:"-"`
	// Description is a human-readable summary of the capability.
	Description string `json:"description"`
	// PracticeArea groups the capability (e.g., "Technology", "Strategy").
	PracticeArea string `json:"practice_area"`
	// SkillLevels lists the proficiency tiers recognized for this capability.
	SkillLevels []string `json:"skill_levels"`
	// Certifications lists relevant professional certifications.
	Certifications []string `json:"certifications"`
	// IndustryVerticals lists the industries where this capability applies.
	IndustryVerticals []string `json:"industry_verticals"`
	// Capacity is the hours per week available across the team.
	Capacity int `json:"capacity"`
	// Consultants holds registered consultant emails in registration order.
	// Each email appears at most once.
	Consultants []string `json:"consultants"`
}

// HasConsultant reports whether the email is present in the roster.
func (c *Capability) HasConsultant(email string) bool {
	for _, consultant := range c.Consultants {
		if consultant == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the capability. Slice fields are copied so
// mutations on the clone never reach the original.
func (c *Capability) Clone() *Capability {
	clone := *c
	clone.SkillLevels = append([]string(nil), c.SkillLevels...)
	clone.Certifications = append([]string(nil), c.Certifications...)
	clone.IndustryVerticals = append([]string(nil), c.IndustryVerticals...)
	clone.Consultants = append([]string(nil), c.Consultants...)
	return &clone
}
