// Package simulation produces mock treatment predictions. Results come from
// a seeded random source dressed up as model output; nothing here computes a
// real prognosis.
package simulation

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/oncotwin/oncotwin/internal/domain/patient"
)

// Generator turns a patient's current data and a chosen scenario into a
// prediction. The mock generator is the only implementation; a real model
// would slot in behind the same interface.
type Generator interface {
	Generate(p *patient.Patient, scenario patient.SimulationScenario) patient.PredictionResult
}

// MockGenerator draws every figure from rng. Seed the source to make output
// reproducible.
type MockGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMockGenerator(rng *rand.Rand) *MockGenerator {
	return &MockGenerator{rng: rng}
}

func (g *MockGenerator) Generate(p *patient.Patient, _ patient.SimulationScenario) patient.PredictionResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Response is signed: [-70, 30] where negative means shrinkage.
	months := g.rng.Intn(12) + 6
	lo := g.rng.Intn(10) + 45
	hi := g.rng.Intn(10) + 75
	if hi < lo {
		lo, hi = hi, lo
	}

	genName, genValue := firstMarker(p.GenomicData.KeyMarkers)
	micName, micValue := firstMarker(p.MicrobiomeData.KeySignatures)
	factors := []string{
		fmt.Sprintf("Genomic: %s (%s)", genName, genValue),
		fmt.Sprintf("Microbiome: %s (%s)", micName, micValue),
		fmt.Sprintf("Clinical: Age %d", p.Demographics.Age),
	}
	factors = factors[:g.rng.Intn(2)+2]

	response := "moderate"
	if g.rng.Intn(2) == 0 {
		response = "favorable"
	}

	return patient.PredictionResult{
		Efficacy: patient.PredictedEfficacy{
			TumorResponsePercentage: g.rng.Intn(101) - 70,
			SuccessProbabilityScore: g.rng.Intn(51) + 50,
			TimeToProgressionMonths: &months,
			ConfidenceInterval:      &[2]int{lo, hi},
		},
		PotentialSideEffects: []patient.PredictedSideEffect{
			{Name: "Nausea", PredictedRiskLevel: g.randomRisk()},
			{Name: "Fatigue", PredictedRiskLevel: g.randomRisk()},
		},
		InterpretableAI: patient.InterpretableAIInsight{
			KeyPredictiveFactors: factors,
			InfluenceData: []patient.InfluenceEntry{
				{Category: "Genomics", Importance: g.rng.Intn(50) + 20},
				{Category: "Microbiome", Importance: g.rng.Intn(40) + 10},
				{Category: "Imaging", Importance: g.rng.Intn(30) + 5},
				{Category: "Clinical", Importance: g.rng.Intn(20) + 5},
			},
			DecisionPathwaySnippet: fmt.Sprintf("The algorithm predicts a %s response...", response),
		},
	}
}

func (g *MockGenerator) randomRisk() patient.RiskLevel {
	return [...]patient.RiskLevel{patient.RiskLow, patient.RiskMedium, patient.RiskHigh}[g.rng.Intn(3)]
}

func firstMarker(markers []patient.Marker) (string, string) {
	if len(markers) == 0 {
		return "N/A", "N/A"
	}
	return markers[0].Name, markers[0].Value
}
