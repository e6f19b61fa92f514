package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	MinBenefit = 0.0
	MaxBenefit = 10.0

	// LowestPriority is the emergency priority level of every unclassified item.
	LowestPriority = 5
)

// ValidationError reports an item field that violates its constraints.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Field, e.Value, e.Reason)
}

// Item is a candidate project competing for budget. It is an immutable value:
// every change produces a new Item so that a solve never observes mutation.
type Item struct {
	id          string
	name        string
	cost        float64
	benefit     float64
	category    string
	description string
	ratio       float64

	emergency     bool
	priorityLevel int
}

// NewItem validates cost and benefit and returns an unclassified item.
func NewItem(name string, cost, benefit float64, category, description string) (Item, error) {
	if err := ValidateCost(cost); err != nil {
		return Item{}, err
	}
	if err := ValidateBenefit(benefit); err != nil {
		return Item{}, err
	}
	return Item{
		name:          name,
		cost:          cost,
		benefit:       benefit,
		category:      category,
		description:   description,
		ratio:         benefitCostRatio(benefit, cost),
		priorityLevel: LowestPriority,
	}, nil
}

// ValidateCost rejects zero, negative and infinite costs.
func ValidateCost(cost float64) error {
	if !(cost > 0) {
		return &ValidationError{Field: "cost", Value: cost, Reason: "must be positive"}
	}
	if math.IsInf(cost, 1) {
		return &ValidationError{Field: "cost", Value: cost, Reason: "must be finite"}
	}
	return nil
}

// ValidateBenefit enforces the closed interval [0, 10].
func ValidateBenefit(benefit float64) error {
	if benefit > MaxBenefit {
		return &ValidationError{Field: "benefit", Value: benefit, Reason: "cannot exceed 10"}
	}
	if !(benefit >= MinBenefit) {
		return &ValidationError{Field: "benefit", Value: benefit, Reason: "cannot be negative"}
	}
	return nil
}

func benefitCostRatio(benefit, cost float64) float64 {
	if cost > 0 {
		return benefit / cost
	}
	return 0
}

// WithBenefit returns a copy of the item carrying the new benefit score.
func (it Item) WithBenefit(benefit float64) (Item, error) {
	if err := ValidateBenefit(benefit); err != nil {
		return Item{}, err
	}
	it.benefit = benefit
	it.ratio = benefitCostRatio(benefit, it.cost)
	return it, nil
}

// WithID returns a copy of the item bound to a store identifier.
func (it Item) WithID(id string) Item {
	it.id = id
	return it
}

func (it Item) ID() string          { return it.id }
func (it Item) Name() string        { return it.name }
func (it Item) Cost() float64       { return it.cost }
func (it Item) Benefit() float64    { return it.benefit }
func (it Item) Category() string    { return it.category }
func (it Item) Description() string { return it.description }

// BenefitCostRatio is benefit divided by cost.
func (it Item) BenefitCostRatio() float64 { return it.ratio }

// IsEmergencyPriority reports whether the last classification enabled emergency mode.
func (it Item) IsEmergencyPriority() bool { return it.emergency }

// EmergencyPriorityLevel is 1 (most urgent) through 5. Always 5 when the
// item is not flagged.
func (it Item) EmergencyPriorityLevel() int {
	if it.priorityLevel == 0 {
		return LowestPriority
	}
	return it.priorityLevel
}

// PriorityLabel renders the item's priority as shown in tables and reports.
func (it Item) PriorityLabel() string {
	if it.emergency {
		return fmt.Sprintf("Emergency P%d", it.EmergencyPriorityLevel())
	}
	return "Normal"
}

// DisplayID returns the first 8 characters of the ID.
func (it Item) DisplayID() string {
	if len(it.id) >= 8 {
		return it.id[:8]
	}
	return it.id
}

func (it Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s | Cost: %.2f | Benefit: %.2f | Ratio: %.3f | Category: %s",
		it.name, it.cost, it.benefit, it.ratio, it.category)
	if it.emergency {
		fmt.Fprintf(&b, " [EMERGENCY PRIORITY: %d]", it.EmergencyPriorityLevel())
	}
	return b.String()
}
