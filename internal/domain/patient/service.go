package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrValidation marks rejected input. Handlers map it to 400.
var ErrValidation = errors.New("validation failed")

// Notifier receives event messages emitted by patient mutations. Severity is
// one of "info", "success", "warning", "error".
type Notifier interface {
	Notify(ctx context.Context, message, severity string)
}

// NopNotifier discards events. Useful in tests.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, string, string) {}

// Service owns all patient workflows: creation from the template, partial
// updates, and the append-only lab/outcome/simulation logs.
type Service struct {
	repo     Repository
	notifier Notifier
	template *Patient
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		template: SeedPatients()[0],
		now:      time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateRequest holds the optional fields of the new-patient form. Everything
// else is cloned from the template patient.
type CreateRequest struct {
	Name string `json:"name"`
	Age  *int   `json:"age"`
}

// Create clones the template, assigns a time-derived id and display code,
// resets status and the append-only logs, and inserts at the head of the
// list.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Patient, error) {
	now := s.now()

	p := s.template.Clone()
	p.ID = fmt.Sprintf("patient_%d", now.UnixMilli())
	p.Name = strings.TrimSpace(req.Name)
	if p.Name == "" {
		p.Name = "New Patient " + p.ID[len(p.ID)-4:]
	}
	p.Demographics.PatientID = strings.ToUpper(p.ID)
	p.Demographics.Age = 60
	if req.Age != nil {
		if *req.Age <= 0 {
			return nil, fmt.Errorf("%w: age must be positive", ErrValidation)
		}
		p.Demographics.Age = *req.Age
	}
	p.Status = StatusAwaitingSimulation
	p.Simulations = nil
	p.ActualOutcomes = nil
	p.VirtualTumor.LastUpdated = now

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, fmt.Sprintf("New patient digital twin created: %s.", p.Name), "success")
	return p, nil
}

// DemographicsPatch updates individual demographics fields. Nil means keep.
type DemographicsPatch struct {
	PatientID *string `json:"patientId"`
	Age       *int    `json:"age"`
	Sex       *Sex    `json:"sex"`
}

// ClinicalHistoryPatch updates individual history fields. Nil means keep;
// slices replace the stored slice when non-nil.
type ClinicalHistoryPatch struct {
	DiagnosisDate  *string  `json:"diagnosisDate"`
	Stage          *string  `json:"stage"`
	Location       *string  `json:"location"`
	Comorbidities  []string `json:"comorbidities"`
	PastTreatments []string `json:"pastTreatments"`
}

// UpdateRequest carries partial patient fields. Nil pointers leave the stored
// value untouched. Demographics and clinical history merge field by field;
// the multi-modal sub-records replace wholesale.
type UpdateRequest struct {
	Name            *string               `json:"name"`
	CancerType      *string               `json:"cancerType"`
	Status          *Status               `json:"status"`
	Demographics    *DemographicsPatch    `json:"demographics"`
	ClinicalHistory *ClinicalHistoryPatch `json:"clinicalHistory"`
	GenomicData     *GenomicData          `json:"genomicData"`
	ImagingData     *ImagingData          `json:"imagingData"`
	MicrobiomeData  *MicrobiomeData       `json:"microbiomeData"`
	LabResults      *[]LabResult          `json:"labResults"`
}

// Update merges req onto the stored record and refreshes the virtual tumor
// timestamp. Nothing is written when the id is unknown or a field fails
// validation.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Patient, error) {
	if req.Status != nil && !ValidStatus(*req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	editedRecord := false
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.CancerType != nil {
		p.CancerType = *req.CancerType
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if d := req.Demographics; d != nil {
		if d.PatientID != nil {
			p.Demographics.PatientID = *d.PatientID
		}
		if d.Age != nil {
			p.Demographics.Age = *d.Age
		}
		if d.Sex != nil {
			p.Demographics.Sex = *d.Sex
		}
		editedRecord = true
	}
	if h := req.ClinicalHistory; h != nil {
		if h.DiagnosisDate != nil {
			p.ClinicalHistory.DiagnosisDate = *h.DiagnosisDate
		}
		if h.Stage != nil {
			p.ClinicalHistory.Stage = *h.Stage
		}
		if h.Location != nil {
			p.ClinicalHistory.Location = *h.Location
		}
		if h.Comorbidities != nil {
			p.ClinicalHistory.Comorbidities = h.Comorbidities
		}
		if h.PastTreatments != nil {
			p.ClinicalHistory.PastTreatments = h.PastTreatments
		}
		editedRecord = true
	}
	if req.GenomicData != nil {
		p.GenomicData = *req.GenomicData
	}
	if req.ImagingData != nil {
		p.ImagingData = *req.ImagingData
	}
	if req.MicrobiomeData != nil {
		p.MicrobiomeData = *req.MicrobiomeData
	}
	if req.LabResults != nil {
		p.LabResults = *req.LabResults
	}
	p.VirtualTumor.LastUpdated = s.now()

	if err := s.repo.Replace(ctx, p); err != nil {
		return nil, err
	}
	if editedRecord {
		s.notifier.Notify(ctx, fmt.Sprintf("Patient record updated for %s.", p.Name), "info")
	}
	return p, nil
}

// AddLabResult appends one lab entry. Existing entries are never rewritten.
func (s *Service) AddLabResult(ctx context.Context, id string, result LabResult) (*Patient, error) {
	result.MarkerName = strings.TrimSpace(result.MarkerName)
	result.Value = strings.TrimSpace(result.Value)
	if result.MarkerName == "" || result.Value == "" {
		return nil, fmt.Errorf("%w: lab result requires marker name and value", ErrValidation)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.LabResults = append(p.LabResults, result)
	p.VirtualTumor.LastUpdated = s.now()

	if err := s.repo.Replace(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// OutcomeRequest is a manually recorded clinical observation.
type OutcomeRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// AddOutcome appends an observed result and flags the twin as having new
// data to incorporate.
func (s *Service) AddOutcome(ctx context.Context, id string, req OutcomeRequest) (*Patient, error) {
	req.Date = strings.TrimSpace(req.Date)
	req.Description = strings.TrimSpace(req.Description)
	if req.Date == "" || req.Description == "" {
		return nil, fmt.Errorf("%w: outcome requires date and description", ErrValidation)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.ActualOutcomes = append(p.ActualOutcomes, ActualOutcome{
		ID:          "outcome_" + uuid.NewString(),
		Date:        req.Date,
		Description: req.Description,
	})
	p.Status = StatusNewDataAvailable
	p.VirtualTumor.LastUpdated = s.now()

	if err := s.repo.Replace(ctx, p); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, fmt.Sprintf("New outcome recorded for %s. Model can be updated.", p.Name), "info")
	return p, nil
}

// AppendSimulation commits a finished prediction run to the patient's
// history and marks the twin simulation-complete.
func (s *Service) AppendSimulation(ctx context.Context, id string, sim PatientSimulation) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Simulations = append(p.Simulations, sim)
	p.Status = StatusSimulationComplete
	p.VirtualTumor.LastUpdated = s.now()

	if err := s.repo.Replace(ctx, p); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, fmt.Sprintf("Simulation for %s completed and saved.", p.Name), "success")
	return p, nil
}
