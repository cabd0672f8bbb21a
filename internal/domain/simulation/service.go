package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oncotwin/oncotwin/internal/domain/patient"
)

const progressSteps = 10

// Service runs treatment simulations end to end: selection validation,
// prediction generation, the cosmetic progress sequence, and the final
// commit into the patient's history.
type Service struct {
	patients       *patient.Service
	gen            Generator
	progressBudget time.Duration
	now            func() time.Time
}

// NewService wires the runner. progressBudget is the total wall time of the
// progress animation; zero disables the delay entirely.
func NewService(patients *patient.Service, gen Generator, progressBudget time.Duration) *Service {
	return &Service{
		patients:       patients,
		gen:            gen,
		progressBudget: progressBudget,
		now:            time.Now,
	}
}

// RunRequest selects scenario options and knob settings for one run.
type RunRequest struct {
	ScenarioIDs []string                      `json:"scenarioIds"`
	Parameters  *patient.SimulationParameters `json:"parameters"`
}

// ProgressFunc receives percentages 10, 20, ... 100 as the run advances.
type ProgressFunc func(percent int)

// Run executes a simulation for one patient. The prediction is generated up
// front; the progress sequence only paces its delivery. Cancelling ctx stops
// the run and commits nothing. On success exactly one PatientSimulation is
// appended and the patient's status becomes Simulation Complete.
func (s *Service) Run(ctx context.Context, patientID string, req RunRequest, progress ProgressFunc) (*patient.Patient, error) {
	choices := ResolveSelection(req.ScenarioIDs)
	if len(choices) == 0 {
		return nil, fmt.Errorf("%w: at least one treatment scenario must be selected", patient.ErrValidation)
	}

	p, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	params := DefaultParameters()
	if req.Parameters != nil {
		params = *req.Parameters
	}
	scenario := patient.SimulationScenario{Choices: choices, Parameters: params}
	result := s.gen.Generate(p, scenario)

	if err := s.pace(ctx, progress); err != nil {
		return nil, err
	}

	sim := patient.PatientSimulation{
		ID:             "psim_" + uuid.NewString(),
		Scenario:       scenario,
		Result:         result,
		SimulationDate: s.now(),
	}
	return s.patients.AppendSimulation(ctx, patientID, sim)
}

// pace walks the progress sequence in ten equal steps over the budget.
func (s *Service) pace(ctx context.Context, progress ProgressFunc) error {
	step := s.progressBudget / progressSteps

	for i := 1; i <= progressSteps; i++ {
		if step > 0 {
			timer := time.NewTimer(step)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if progress != nil {
			progress(i * 100 / progressSteps)
		}
	}
	return nil
}
