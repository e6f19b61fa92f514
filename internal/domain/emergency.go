package domain

import "strings"

// Category labels offered when authoring items. Categories are free-form;
// only the first four influence emergency classification.
const (
	CategoryInfrastructure      = "Infrastructure"
	CategoryHealth              = "Health"
	CategoryEducation           = "Education"
	CategoryEnvironment         = "Environment"
	CategorySocialServices      = "Social Services"
	CategoryEconomicDevelopment = "Economic Development"
)

// Categories is the canonical list presented to users, in display order.
var Categories = []string{
	CategoryInfrastructure,
	CategoryHealth,
	CategoryEducation,
	CategoryEnvironment,
	CategorySocialServices,
	CategoryEconomicDevelopment,
}

type EmergencyType string

const (
	EmergencyTyphoon      EmergencyType = "Typhoon"
	EmergencyEarthquake   EmergencyType = "Earthquake"
	EmergencyFlood        EmergencyType = "Flood"
	EmergencyFire         EmergencyType = "Fire"
	EmergencyHealthCrisis EmergencyType = "Health Crisis"
)

// EmergencyTypes lists the recognized emergency types in display order.
var EmergencyTypes = []EmergencyType{
	EmergencyTyphoon,
	EmergencyEarthquake,
	EmergencyFlood,
	EmergencyFire,
	EmergencyHealthCrisis,
}

// ParseEmergencyType matches s case-insensitively against the recognized
// types. The empty string is valid and means "no specific emergency".
func ParseEmergencyType(s string) (EmergencyType, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	for _, t := range EmergencyTypes {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return EmergencyType(s), false
}

var basePriority = map[string]int{
	"infrastructure":  1,
	"health":          2,
	"social services": 3,
	"environment":     4,
}

var healthCrisisPriority = map[string]int{
	"health":          1,
	"social services": 2,
	"infrastructure":  3,
}

var disasterPriority = map[string]int{
	"infrastructure":  1,
	"social services": 2,
	"health":          3,
}

// ClassifyEmergencyPriority returns a copy of item with its emergency flag and
// priority level derived from its category and the emergency type. When
// enabled is false the item is reset to an unflagged level 5. Unrecognized
// emergency types fall back to the base category table.
func ClassifyEmergencyPriority(item Item, enabled bool, emergencyType string) Item {
	item.emergency = enabled
	if !enabled {
		item.priorityLevel = LowestPriority
		return item
	}
	item.priorityLevel = EmergencyPriorityFor(item.category, emergencyType)
	return item
}

// EmergencyPriorityFor resolves the priority level of a category under an
// emergency type. Both arguments are matched case-insensitively.
func EmergencyPriorityFor(category, emergencyType string) int {
	cat := strings.ToLower(strings.TrimSpace(category))

	var table map[string]int
	switch strings.ToLower(strings.TrimSpace(emergencyType)) {
	case "health crisis":
		table = healthCrisisPriority
	case "typhoon", "earthquake", "flood", "fire":
		table = disasterPriority
	}
	if level, ok := table[cat]; ok {
		return level
	}
	if level, ok := basePriority[cat]; ok {
		return level
	}
	return LowestPriority
}
