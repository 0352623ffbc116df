// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	catalogDomain "github.com/slalom/capabilities/internal/catalog/domain"
)

// CapabilityResponse represents a capability in API responses.
type CapabilityResponse struct {
	Description       string   `json:"description"`
	PracticeArea      string   `json:"practice_area"`
	SkillLevels       []string `json:"skill_levels"`
	Certifications    []string `json:"certifications"`
	IndustryVerticals []string `json:"industry_verticals"`
	Capacity          int      `json:"capacity"`
	Consultants       []string `json:"consultants"`
}

// ListCapabilitiesResponse maps capability names to their details.
type ListCapabilitiesResponse map[string]CapabilityResponse

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// MapCapabilityToResponse converts a domain capability to an API response.
func MapCapabilityToResponse(capability *catalogDomain.Capability) CapabilityResponse {
	return CapabilityResponse{
		Description:       capability.Description,
		PracticeArea:      capability.PracticeArea,
		SkillLevels:       capability.SkillLevels,
		Certifications:    capability.Certifications,
		IndustryVerticals: capability.IndustryVerticals,
		Capacity:          capability.Capacity,
		Consultants:       capability.Consultants,
	}
}

// MapCapabilitiesToListResponse converts a catalog snapshot to a list response.
func MapCapabilitiesToListResponse(
	capabilities map[string]*catalogDomain.Capability,
) ListCapabilitiesResponse {
	response := make(ListCapabilitiesResponse, len(capabilities))
	for name, capability := range capabilities {
		response[name] = MapCapabilityToResponse(capability)
	}

	return response
}
