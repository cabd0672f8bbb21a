package patient

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type captureNotifier struct {
	messages   []string
	severities []string
}

func (n *captureNotifier) Notify(_ context.Context, message, severity string) {
	n.messages = append(n.messages, message)
	n.severities = append(n.severities, severity)
}

func newTestService(t *testing.T) (*Service, *MemoryRepo, *captureNotifier) {
	t.Helper()
	repo := NewMemoryRepo()
	if err := Seed(context.Background(), repo); err != nil {
		t.Fatalf("seed: %v", err)
	}
	notifier := &captureNotifier{}
	return NewService(repo, notifier), repo, notifier
}

func TestSeedOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	patients, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("expected 2 seeded patients, got %d", len(patients))
	}
	if patients[0].ID != "patient_001" || patients[1].ID != "patient_002" {
		t.Errorf("unexpected seed order: %s, %s", patients[0].ID, patients[1].ID)
	}
	if patients[0].Status != StatusAwaitingSimulation {
		t.Errorf("patient_001 status = %q", patients[0].Status)
	}
}

func TestCreatePatient(t *testing.T) {
	svc, _, notifier := newTestService(t)
	age := 40
	p, err := svc.Create(context.Background(), CreateRequest{Name: "X", Age: &age})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !strings.HasPrefix(p.ID, "patient_") {
		t.Errorf("id = %q, want patient_ prefix", p.ID)
	}
	if p.Name != "X" {
		t.Errorf("name = %q", p.Name)
	}
	if p.Demographics.Age != 40 {
		t.Errorf("age = %d", p.Demographics.Age)
	}
	if p.Demographics.PatientID != strings.ToUpper(p.ID) {
		t.Errorf("display code = %q, want %q", p.Demographics.PatientID, strings.ToUpper(p.ID))
	}
	if p.Status != StatusAwaitingSimulation {
		t.Errorf("status = %q", p.Status)
	}
	if len(p.Simulations) != 0 || len(p.ActualOutcomes) != 0 {
		t.Errorf("expected empty simulation and outcome logs")
	}

	patients, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if patients[0].ID != p.ID {
		t.Errorf("new patient not at head of list, got %s", patients[0].ID)
	}

	if len(notifier.messages) != 1 || notifier.messages[0] != "New patient digital twin created: X." {
		t.Errorf("unexpected notifications: %v", notifier.messages)
	}
}

func TestCreatePatient_Defaults(t *testing.T) {
	svc, _, _ := newTestService(t)
	p, err := svc.Create(context.Background(), CreateRequest{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(p.Name, "New Patient ") {
		t.Errorf("default name = %q", p.Name)
	}
	if p.Demographics.Age != 60 {
		t.Errorf("default age = %d", p.Demographics.Age)
	}
	// Template clinical data carries over.
	if p.CancerType != "Colorectal Cancer (CRC)" {
		t.Errorf("cancer type = %q", p.CancerType)
	}
	if len(p.GenomicData.KeyMarkers) == 0 {
		t.Errorf("expected template genomic markers")
	}
}

func TestCreatePatient_InvalidAge(t *testing.T) {
	svc, repo, _ := newTestService(t)
	age := -3
	if _, err := svc.Create(context.Background(), CreateRequest{Age: &age}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.Len() != 2 {
		t.Errorf("store mutated on rejected create")
	}
}

func TestUpdatePatient_PartialDemographics(t *testing.T) {
	svc, _, _ := newTestService(t)

	before, err := svc.Get(context.Background(), "patient_001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	age := 70
	p, err := svc.Update(context.Background(), "patient_001", UpdateRequest{
		Demographics: &DemographicsPatch{Age: &age},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.Demographics.Age != 70 {
		t.Errorf("age = %d, want 70", p.Demographics.Age)
	}
	if p.Demographics.PatientID != before.Demographics.PatientID || p.Demographics.Sex != before.Demographics.Sex {
		t.Errorf("untouched demographics fields changed: %+v", p.Demographics)
	}
	if p.VirtualTumor.LastUpdated.Before(before.VirtualTumor.LastUpdated) {
		t.Errorf("lastUpdated went backwards")
	}
}

func TestUpdatePatient_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)
	name := "Nobody"
	_, err := svc.Update(context.Background(), "patient_999", UpdateRequest{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	patients, _ := svc.List(context.Background())
	for _, p := range patients {
		if p.Name == "Nobody" {
			t.Errorf("store mutated by failed update")
		}
	}
}

func TestUpdatePatient_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(t)
	bad := Status("Resting")
	if _, err := svc.Update(context.Background(), "patient_001", UpdateRequest{Status: &bad}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdatePatient_RefreshesTimestamp(t *testing.T) {
	svc, _, _ := newTestService(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	status := StatusActiveTreatment
	p, err := svc.Update(context.Background(), "patient_002", UpdateRequest{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !p.VirtualTumor.LastUpdated.Equal(fixed) {
		t.Errorf("lastUpdated = %v, want %v", p.VirtualTumor.LastUpdated, fixed)
	}
	if p.Status != StatusActiveTreatment {
		t.Errorf("status = %q", p.Status)
	}
}

func TestUpdatePatient_EditNotification(t *testing.T) {
	svc, _, notifier := newTestService(t)

	stage := "IVb"
	if _, err := svc.Update(context.Background(), "patient_001", UpdateRequest{
		ClinicalHistory: &ClinicalHistoryPatch{Stage: &stage},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(notifier.messages) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.messages))
	}

	// A pure status flip is not a record edit and stays silent.
	status := StatusActiveTreatment
	if _, err := svc.Update(context.Background(), "patient_001", UpdateRequest{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(notifier.messages) != 1 {
		t.Errorf("status-only update emitted a notification")
	}
}

func TestAddLabResult(t *testing.T) {
	svc, _, _ := newTestService(t)
	p, err := svc.AddLabResult(context.Background(), "patient_001", LabResult{
		MarkerName: "CA 19-9", Value: "41", Unit: "U/mL",
	})
	if err != nil {
		t.Fatalf("add lab result: %v", err)
	}
	if len(p.LabResults) != 3 {
		t.Fatalf("lab results = %d, want 3", len(p.LabResults))
	}
	last := p.LabResults[len(p.LabResults)-1]
	if last.MarkerName != "CA 19-9" || last.Value != "41" {
		t.Errorf("unexpected appended result: %+v", last)
	}
}

func TestAddLabResult_MissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	cases := []LabResult{
		{MarkerName: "", Value: "1"},
		{MarkerName: "CEA", Value: "  "},
	}
	for _, lr := range cases {
		if _, err := svc.AddLabResult(context.Background(), "patient_001", lr); !errors.Is(err, ErrValidation) {
			t.Errorf("lab result %+v: expected ErrValidation, got %v", lr, err)
		}
	}
}

func TestAddOutcome(t *testing.T) {
	svc, _, notifier := newTestService(t)
	p, err := svc.AddOutcome(context.Background(), "patient_001", OutcomeRequest{
		Date: "2026-02-10", Description: "CEA dropped to 4.1 ng/mL after cycle 2.",
	})
	if err != nil {
		t.Fatalf("add outcome: %v", err)
	}
	if len(p.ActualOutcomes) != 1 {
		t.Fatalf("outcomes = %d, want 1", len(p.ActualOutcomes))
	}
	if p.ActualOutcomes[0].ID == "" {
		t.Errorf("outcome id not assigned")
	}
	if p.Status != StatusNewDataAvailable {
		t.Errorf("status = %q, want %q", p.Status, StatusNewDataAvailable)
	}
	if len(notifier.messages) != 1 || !strings.Contains(notifier.messages[0], "New outcome recorded") {
		t.Errorf("unexpected notifications: %v", notifier.messages)
	}
}

func TestAddOutcome_AppendOnly(t *testing.T) {
	svc, _, _ := newTestService(t)
	first, err := svc.AddOutcome(context.Background(), "patient_002", OutcomeRequest{
		Date: "2026-01-05", Description: "Stable disease on restaging CT.",
	})
	if err != nil {
		t.Fatalf("first outcome: %v", err)
	}
	second, err := svc.AddOutcome(context.Background(), "patient_002", OutcomeRequest{
		Date: "2026-02-05", Description: "Partial response, lesions shrinking.",
	})
	if err != nil {
		t.Fatalf("second outcome: %v", err)
	}
	if len(second.ActualOutcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(second.ActualOutcomes))
	}
	if second.ActualOutcomes[0] != first.ActualOutcomes[0] {
		t.Errorf("prior outcome entry changed by append")
	}
}

func TestAddOutcome_EmptyDescription(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.AddOutcome(context.Background(), "patient_001", OutcomeRequest{Date: "2026-02-10"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	p, _ := svc.Get(context.Background(), "patient_001")
	if len(p.ActualOutcomes) != 0 {
		t.Errorf("outcome appended despite validation failure")
	}
}

func TestAppendSimulation(t *testing.T) {
	svc, _, notifier := newTestService(t)
	months := 12
	sim := PatientSimulation{
		ID: "sim_test",
		Scenario: SimulationScenario{
			Choices: []ScenarioChoice{{ID: "first-line", Label: "1st Line", Category: "Treatment Line"}},
		},
		Result: PredictionResult{
			Efficacy: PredictedEfficacy{
				TumorResponsePercentage: -30,
				SuccessProbabilityScore: 80,
				TimeToProgressionMonths: &months,
			},
		},
		SimulationDate: time.Now(),
	}

	p, err := svc.AppendSimulation(context.Background(), "patient_001", sim)
	if err != nil {
		t.Fatalf("append simulation: %v", err)
	}
	if len(p.Simulations) != 1 || p.Simulations[0].ID != "sim_test" {
		t.Fatalf("simulation not appended: %+v", p.Simulations)
	}
	if p.Status != StatusSimulationComplete {
		t.Errorf("status = %q, want %q", p.Status, StatusSimulationComplete)
	}
	if len(notifier.messages) != 1 || !strings.Contains(notifier.messages[0], "completed and saved") {
		t.Errorf("unexpected notifications: %v", notifier.messages)
	}
}

func TestRepoCopiesAreIsolated(t *testing.T) {
	svc, _, _ := newTestService(t)
	p, err := svc.Get(context.Background(), "patient_001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	p.Name = "Scribbled Over"
	p.GenomicData.KeyMarkers[0].Value = "corrupted"

	fresh, err := svc.Get(context.Background(), "patient_001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fresh.Name != "Johnathan M. Doe" {
		t.Errorf("caller mutation leaked into store: name = %q", fresh.Name)
	}
	if fresh.GenomicData.KeyMarkers[0].Value != "Mutated (G12D)" {
		t.Errorf("caller mutation leaked into stored markers")
	}
}
