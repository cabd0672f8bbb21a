package simulation

import "github.com/oncotwin/oncotwin/internal/domain/patient"

// ScenarioOption is one selectable treatment approach.
type ScenarioOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ScenarioCategory groups options the way the treatment planner presents
// them. Multiple options may be combined across and within categories.
type ScenarioCategory struct {
	Title   string           `json:"title"`
	Options []ScenarioOption `json:"options"`
}

var scenarioCatalog = []ScenarioCategory{
	{
		Title: "Surgical Treatment",
		Options: []ScenarioOption{
			{ID: "curative-surgery", Label: "Curative Surgery", Description: "Primary resection for early to locally advanced disease"},
			{ID: "metastasectomy", Label: "Metastasectomy", Description: "Surgical resection of isolated metastases"},
			{ID: "palliative-surgery", Label: "Palliative Surgery", Description: "Symptom relief procedures (bypass, stenting)"},
		},
	},
	{
		Title: "Systemic Therapy Intent",
		Options: []ScenarioOption{
			{ID: "neoadjuvant", Label: "Neoadjuvant Treatment", Description: "Pre-operative therapy to downsize tumor"},
			{ID: "adjuvant", Label: "Adjuvant Treatment", Description: "Post-operative therapy to prevent recurrence"},
			{ID: "palliative-systemic", Label: "Palliative Treatment", Description: "Treatment for metastatic/advanced disease"},
		},
	},
	{
		Title: "Radiation Therapy",
		Options: []ScenarioOption{
			{ID: "preop-radiation", Label: "Preoperative Radiation", Description: "Neoadjuvant radiation with or without chemotherapy"},
			{ID: "postop-radiation", Label: "Postoperative Radiation", Description: "Adjuvant radiation for high-risk features"},
			{ID: "palliative-radiation", Label: "Palliative Radiation", Description: "Symptom control for metastases or local disease"},
			{ID: "sbrt", Label: "Stereotactic Radiation (SBRT)", Description: "Focused high-dose radiation for oligometastases"},
		},
	},
	{
		Title: "Treatment Line",
		Options: []ScenarioOption{
			{ID: "first-line", Label: "First-Line Treatment", Description: "Initial systemic therapy for metastatic disease"},
			{ID: "second-line", Label: "Second-Line Treatment", Description: "Treatment after first-line progression"},
			{ID: "later-line", Label: "Later-Line Treatment", Description: "Third-line and beyond salvage therapy"},
		},
	},
	{
		Title: "Supportive Care",
		Options: []ScenarioOption{
			{ID: "symptom-management", Label: "Symptom Management", Description: "Pain control, nausea, bowel management"},
			{ID: "microbiome-support", Label: "Microbiome Support", Description: "Probiotics, prebiotics, microbiome optimization"},
			{ID: "nutritional-support", Label: "Nutritional Support", Description: "Dietary counseling, supplementation"},
			{ID: "psychosocial-support", Label: "Psychosocial Support", Description: "Counseling, support groups, mental health"},
		},
	},
}

// Catalog returns the scenario categories in planner order.
func Catalog() []ScenarioCategory {
	out := make([]ScenarioCategory, len(scenarioCatalog))
	for i, cat := range scenarioCatalog {
		out[i] = cat
		out[i].Options = append([]ScenarioOption(nil), cat.Options...)
	}
	return out
}

// ResolveSelection maps selected option ids to scenario choices in catalog
// order. Unknown ids are ignored.
func ResolveSelection(ids []string) []patient.ScenarioChoice {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	var choices []patient.ScenarioChoice
	for _, cat := range scenarioCatalog {
		for _, opt := range cat.Options {
			if selected[opt.ID] {
				choices = append(choices, patient.ScenarioChoice{
					ID:       opt.ID,
					Label:    opt.Label,
					Category: cat.Title,
				})
			}
		}
	}
	return choices
}

// DefaultParameters mirrors the planner form's initial knob settings.
func DefaultParameters() patient.SimulationParameters {
	return patient.SimulationParameters{
		ChemoDosage:            "standard",
		RadiationDose:          "standard-preop",
		Schedule:               "weekly",
		Duration:               "3-months",
		HorizonMonths:          24,
		ComplianceRate:         85,
		ToxicityTolerance:      "low",
		MicrobiomeIntervention: "none",
		SupportiveCare:         "basic",
	}
}
