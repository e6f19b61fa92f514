package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/alexanderramin/budgetwise/internal/contract"
	"github.com/alexanderramin/budgetwise/internal/domain"
	"github.com/alexanderramin/budgetwise/internal/metrics"
	"github.com/alexanderramin/budgetwise/internal/repository"
	"github.com/alexanderramin/budgetwise/internal/solver"
)

// ErrEmptyPortfolio is returned when there is nothing to allocate.
var ErrEmptyPortfolio = errors.New("no items to allocate")

// AllocationConfig tunes the allocation service.
type AllocationConfig struct {
	// NodeLimit caps expanded search nodes per solve. Zero is unlimited.
	NodeLimit int
	// Metrics receives one observation per solve. Nil disables metrics.
	Metrics metrics.Recorder
}

type allocationService struct {
	items     repository.ItemRepo
	nodeLimit int
	metrics   metrics.Recorder
	observer  UseCaseObserver
}

func NewAllocationService(items repository.ItemRepo, cfg AllocationConfig, observers ...UseCaseObserver) AllocationService {
	rec := cfg.Metrics
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &allocationService{
		items:     items,
		nodeLimit: cfg.NodeLimit,
		metrics:   rec,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *allocationService) Optimize(ctx context.Context, req contract.AllocationRequest) (resp *contract.AllocationResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"budget":    req.Budget,
		"emergency": req.EmergencyMode,
	}
	defer func() { observe(ctx, s.observer, "optimize", startedAt, err, fields) }()

	if math.IsNaN(req.Budget) || math.IsInf(req.Budget, 0) || req.Budget <= 0 {
		return nil, &domain.ValidationError{Field: "budget", Value: req.Budget, Reason: "must be a positive amount"}
	}

	// A nil list means the stored portfolio; an explicit empty list solves to
	// an empty selection.
	candidates := req.Items
	if candidates == nil {
		candidates, err = s.items.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			return nil, ErrEmptyPortfolio
		}
	}
	fields["items"] = len(candidates)

	emergencyType := ""
	if req.EmergencyMode {
		emergencyType = req.EmergencyType
		if t, ok := domain.ParseEmergencyType(emergencyType); ok {
			emergencyType = string(t)
		}
		fields["emergency_type"] = emergencyType
	}

	classified := make([]domain.Item, len(candidates))
	for i, it := range candidates {
		classified[i] = domain.ClassifyEmergencyPriority(it, req.EmergencyMode, emergencyType)
	}

	solveStart := time.Now()
	sol, stats := solver.SolveWithOptions(classified, req.Budget, req.EmergencyMode, solver.Options{NodeLimit: s.nodeLimit})
	solveDuration := time.Since(solveStart)

	resp = buildAllocationReport(req.Budget, req.EmergencyMode, emergencyType, len(classified), sol, stats)
	fields["selected"] = len(sol.SelectedItems)
	fields["nodes_expanded"] = stats.NodesExpanded
	if stats.Truncated {
		fields["truncated"] = true
	}

	if mErr := s.metrics.ObserveSolve(metrics.Solve{
		EmergencyMode: req.EmergencyMode,
		Candidates:    len(classified),
		Selected:      len(sol.SelectedItems),
		NodesExpanded: stats.NodesExpanded,
		NodesPruned:   stats.NodesPruned,
		Truncated:     stats.Truncated,
		Utilization:   resp.UtilizationPct / 100,
		Duration:      solveDuration,
	}); mErr != nil {
		// Metrics are best effort; the allocation itself succeeded.
		fields["metrics_error"] = mErr.Error()
	}

	return resp, nil
}
