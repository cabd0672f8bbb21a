package patient

import "time"

// Status tracks where a patient sits in the simulate/observe loop.
type Status string

const (
	StatusAwaitingSimulation Status = "Awaiting Simulation"
	StatusNewDataAvailable   Status = "New Data Available"
	StatusSimulationComplete Status = "Simulation Complete"
	StatusActiveTreatment    Status = "Active Treatment"
)

// ValidStatus reports whether s is one of the four known patient statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusAwaitingSimulation, StatusNewDataAvailable, StatusSimulationComplete, StatusActiveTreatment:
		return true
	}
	return false
}

// Sex values for Demographics.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
	SexOther  Sex = "Other"
)

// Demographics carries the display code and basic attributes. The display
// code (PatientID) is conventionally immutable after creation; nothing
// enforces global uniqueness, matching current product requirements.
type Demographics struct {
	PatientID string `json:"patientId"`
	Age       int    `json:"age"`
	Sex       Sex    `json:"sex"`
}

type ClinicalHistory struct {
	DiagnosisDate  string   `json:"diagnosisDate"`
	Stage          string   `json:"stage"`
	Location       string   `json:"location"`
	Comorbidities  []string `json:"comorbidities"`
	PastTreatments []string `json:"pastTreatments"`
}

// Marker is a named key-value pair used for genomic markers, imaging tumor
// characteristics, and microbiome signatures alike.
type Marker struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// GenomicData holds key markers plus a report-uploaded status flag. The flag
// is a pure status bit; there is no file reference behind it.
type GenomicData struct {
	KeyMarkers     []Marker `json:"keyMarkers"`
	ReportUploaded bool     `json:"reportUploaded"`
}

type ImagingData struct {
	TumorCharacteristics []Marker `json:"tumorCharacteristics"`
	DICOMViewable        bool     `json:"dicomViewable"`
}

// MicrobiomeData's GutDiversityIndex is a unitless score in [0,1].
type MicrobiomeData struct {
	KeySignatures             []Marker `json:"keySignatures"`
	StoolSampleReportUploaded bool     `json:"stoolSampleReportUploaded"`
	GutDiversityIndex         float64  `json:"gutDiversityIndex"`
}

type LabResult struct {
	MarkerName string `json:"markerName"`
	Value      string `json:"value"`
	Unit       string `json:"unit"`
}

// VirtualTumorModel is the decorative twin: descriptive fields plus the
// freshness timestamp. Any accepted mutation of a patient's clinical
// sub-records refreshes LastUpdated.
type VirtualTumorModel struct {
	SimulatedGrowthRate         string    `json:"simulatedGrowthRate"`
	PredictedImmuneInfiltration string    `json:"predictedImmuneInfiltration"`
	MicroenvironmentFactors     string    `json:"microenvironmentFactors"`
	LastUpdated                 time.Time `json:"lastUpdated"`
}

// RiskLevel grades a predicted side effect.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// PredictedEfficacy summarizes a simulated treatment response.
// TumorResponsePercentage is signed: -30 means 30% shrinkage, 10 means 10%
// growth.
type PredictedEfficacy struct {
	TumorResponsePercentage int     `json:"tumorResponsePercentage"`
	TimeToProgressionMonths *int    `json:"timeToProgressionMonths,omitempty"`
	SuccessProbabilityScore int     `json:"successProbabilityScore"`
	ConfidenceInterval      *[2]int `json:"confidenceInterval,omitempty"`
}

type PredictedSideEffect struct {
	Name               string    `json:"name"`
	PredictedRiskLevel RiskLevel `json:"predictedRiskLevel"`
}

// InfluenceEntry scores one data category's claimed contribution to a
// prediction. Scores are synthetic and are not normalized across categories.
type InfluenceEntry struct {
	Category   string `json:"category"`
	Importance int    `json:"importance"`
}

type InterpretableAIInsight struct {
	KeyPredictiveFactors   []string         `json:"keyPredictiveFactors"`
	InfluenceData          []InfluenceEntry `json:"influenceData"`
	DecisionPathwaySnippet string           `json:"decisionPathwaySnippet"`
}

type PredictionResult struct {
	Efficacy             PredictedEfficacy      `json:"efficacy"`
	PotentialSideEffects []PredictedSideEffect  `json:"potentialSideEffects"`
	InterpretableAI      InterpretableAIInsight `json:"interpretableAI"`
}

// ScenarioChoice is one selected treatment-scenario option, snapshotted with
// its category so the stored simulation is self-describing.
type ScenarioChoice struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// SimulationParameters captures the knob settings a simulation ran with.
type SimulationParameters struct {
	ChemoDosage            string `json:"chemoDosage"`
	RadiationDose          string `json:"radiationDose"`
	Schedule               string `json:"schedule"`
	Duration               string `json:"duration"`
	HorizonMonths          int    `json:"simDurationMonths"`
	ComplianceRate         int    `json:"complianceRate"`
	ToxicityTolerance      string `json:"toxicityTolerance"`
	MicrobiomeIntervention string `json:"microbiomeIntervention"`
	SupportiveCare         string `json:"supportiveCareLevel"`
}

// SimulationScenario is the immutable scenario+parameter snapshot stored on a
// simulation record.
type SimulationScenario struct {
	Choices    []ScenarioChoice     `json:"choices"`
	Parameters SimulationParameters `json:"parameters"`
}

// PatientSimulation is one completed prediction run. Appended, never edited.
type PatientSimulation struct {
	ID             string             `json:"id"`
	Scenario       SimulationScenario `json:"scenario"`
	Result         PredictionResult   `json:"result"`
	SimulationDate time.Time          `json:"simulationDate"`
}

// ActualOutcome is an observed clinical result recorded against the twin.
// Immutable once appended.
type ActualOutcome struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Patient is the unit of storage and mutation. All sub-records are
// exclusively owned; there is no sharing between patients.
type Patient struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	CancerType      string              `json:"cancerType"`
	Status          Status              `json:"status"`
	Demographics    Demographics        `json:"demographics"`
	ClinicalHistory ClinicalHistory     `json:"clinicalHistory"`
	GenomicData     GenomicData         `json:"genomicData"`
	ImagingData     ImagingData         `json:"imagingData"`
	MicrobiomeData  MicrobiomeData      `json:"microbiomeData"`
	LabResults      []LabResult         `json:"labResults"`
	VirtualTumor    VirtualTumorModel   `json:"virtualTumorModel"`
	Simulations     []PatientSimulation `json:"simulations"`
	ActualOutcomes  []ActualOutcome     `json:"actualOutcomes"`
}

// Clone returns a deep copy so callers can never alias canonical store state.
func (p *Patient) Clone() *Patient {
	cp := *p
	cp.ClinicalHistory.Comorbidities = append([]string(nil), p.ClinicalHistory.Comorbidities...)
	cp.ClinicalHistory.PastTreatments = append([]string(nil), p.ClinicalHistory.PastTreatments...)
	cp.GenomicData.KeyMarkers = append([]Marker(nil), p.GenomicData.KeyMarkers...)
	cp.ImagingData.TumorCharacteristics = append([]Marker(nil), p.ImagingData.TumorCharacteristics...)
	cp.MicrobiomeData.KeySignatures = append([]Marker(nil), p.MicrobiomeData.KeySignatures...)
	cp.LabResults = append([]LabResult(nil), p.LabResults...)
	cp.ActualOutcomes = append([]ActualOutcome(nil), p.ActualOutcomes...)

	cp.Simulations = make([]PatientSimulation, len(p.Simulations))
	for i, sim := range p.Simulations {
		cp.Simulations[i] = sim.clone()
	}
	return &cp
}

func (s PatientSimulation) clone() PatientSimulation {
	cp := s
	cp.Scenario.Choices = append([]ScenarioChoice(nil), s.Scenario.Choices...)
	cp.Result.PotentialSideEffects = append([]PredictedSideEffect(nil), s.Result.PotentialSideEffects...)
	cp.Result.InterpretableAI.KeyPredictiveFactors = append([]string(nil), s.Result.InterpretableAI.KeyPredictiveFactors...)
	cp.Result.InterpretableAI.InfluenceData = append([]InfluenceEntry(nil), s.Result.InterpretableAI.InfluenceData...)
	if s.Result.Efficacy.TimeToProgressionMonths != nil {
		months := *s.Result.Efficacy.TimeToProgressionMonths
		cp.Result.Efficacy.TimeToProgressionMonths = &months
	}
	if s.Result.Efficacy.ConfidenceInterval != nil {
		ci := *s.Result.Efficacy.ConfidenceInterval
		cp.Result.Efficacy.ConfidenceInterval = &ci
	}
	return cp
}
