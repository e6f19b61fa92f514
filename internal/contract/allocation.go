package contract

import "github.com/alexanderramin/budgetwise/internal/domain"

// AllocationRequest asks for the best subset of the portfolio within Budget.
// When Items is nil the stored portfolio is used.
type AllocationRequest struct {
	Budget        float64
	EmergencyMode bool
	EmergencyType string
	Items         []domain.Item
}

// AllocationResponse is the solver outcome plus the derived report.
type AllocationResponse struct {
	Budget         float64             `json:"budget"`
	EmergencyMode  bool                `json:"emergency_mode"`
	EmergencyType  string              `json:"emergency_type,omitempty"`
	CandidateCount int                 `json:"candidate_count"`
	Selected       []SelectedItem      `json:"selected"`
	TotalCost      float64             `json:"total_cost"`
	TotalBenefit   float64             `json:"total_benefit"`
	Efficiency     float64             `json:"efficiency"`
	UtilizationPct float64             `json:"utilization_pct"`
	Remaining      float64             `json:"remaining"`
	Categories     []CategoryBreakdown `json:"categories"`
	Priorities     []PriorityCount     `json:"priorities,omitempty"`
	TopByCost      []SelectedItem      `json:"top_by_cost"`
	Search         SearchStats         `json:"search"`
}

// SelectedItem is one accepted item in search order.
type SelectedItem struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name"`
	Cost          float64 `json:"cost"`
	Benefit       float64 `json:"benefit"`
	Ratio         float64 `json:"ratio"`
	Category      string  `json:"category"`
	PriorityLevel int     `json:"priority_level"`
	PriorityLabel string  `json:"priority_label"`
}

// CategoryBreakdown aggregates selected items per category in order of
// first appearance.
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Cost     float64 `json:"cost"`
	SharePct float64 `json:"share_pct"`
}

// PriorityCount is only reported in emergency mode. Label is
// "Priority <n>" or "Normal".
type PriorityCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type SearchStats struct {
	NodesExpanded int  `json:"nodes_expanded"`
	NodesPushed   int  `json:"nodes_pushed"`
	NodesPruned   int  `json:"nodes_pruned"`
	MaxQueueLen   int  `json:"max_queue_len"`
	Truncated     bool `json:"truncated"`
}
