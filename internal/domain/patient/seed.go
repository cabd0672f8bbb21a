package patient

import (
	"context"
	"time"
)

// SeedPatients returns the demo cohort. Each call builds fresh structs, so
// the fixtures are safe to mutate after insertion.
func SeedPatients() []*Patient {
	return []*Patient{
		{
			ID:         "patient_001",
			Name:       "Johnathan M. Doe",
			CancerType: "Colorectal Cancer (CRC)",
			Status:     StatusAwaitingSimulation,
			Demographics: Demographics{
				PatientID: "P001",
				Age:       65,
				Sex:       SexMale,
			},
			ClinicalHistory: ClinicalHistory{
				DiagnosisDate:  "2023-05-15",
				Stage:          "IIIb",
				Location:       "Descending Colon",
				Comorbidities:  []string{"Hypertension", "Type 2 Diabetes"},
				PastTreatments: []string{"FOLFOX (6 cycles, adjuvant)"},
			},
			GenomicData: GenomicData{
				KeyMarkers: []Marker{
					{Name: "KRAS", Value: "Mutated (G12D)"},
					{Name: "BRAF", Value: "Wild Type"},
					{Name: "MSI", Value: "MSI-High"},
				},
				ReportUploaded: true,
			},
			ImagingData: ImagingData{
				TumorCharacteristics: []Marker{
					{Name: "Primary Tumor Size", Value: "4.5 cm"},
					{Name: "Lymph Node Involvement", Value: "N1 (2/15 nodes)"},
				},
				DICOMViewable: true,
			},
			MicrobiomeData: MicrobiomeData{
				KeySignatures: []Marker{
					{Name: "Fusobacterium nucleatum", Value: "High Abundance"},
					{Name: "Bacteroides fragilis", Value: "Moderate Abundance"},
				},
				StoolSampleReportUploaded: true,
				GutDiversityIndex:         0.75,
			},
			LabResults: []LabResult{
				{MarkerName: "CEA", Value: "12.5", Unit: "ng/mL"},
				{MarkerName: "ALT", Value: "35", Unit: "U/L"},
			},
			VirtualTumor: VirtualTumorModel{
				SimulatedGrowthRate:         "Moderate",
				PredictedImmuneInfiltration: "High",
				MicroenvironmentFactors:     "Hypoxic core, Angiogenic",
				LastUpdated:                 time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			ID:         "patient_002",
			Name:       "Alice B. Wonderland",
			CancerType: "Colorectal Cancer (CRC)",
			Status:     StatusNewDataAvailable,
			Demographics: Demographics{
				PatientID: "P002",
				Age:       58,
				Sex:       SexFemale,
			},
			ClinicalHistory: ClinicalHistory{
				DiagnosisDate:  "2024-01-20",
				Stage:          "IVa (liver mets)",
				Location:       "Rectum",
				Comorbidities:  []string{"None"},
				PastTreatments: []string{"Neoadjuvant Chemoradiation"},
			},
			GenomicData: GenomicData{
				KeyMarkers: []Marker{
					{Name: "KRAS", Value: "Wild Type"},
					{Name: "BRAF", Value: "V600E Mutated"},
					{Name: "MSI", Value: "MSS"},
				},
				ReportUploaded: false,
			},
			ImagingData: ImagingData{
				TumorCharacteristics: []Marker{
					{Name: "Primary Tumor Size", Value: "3.0 cm"},
					{Name: "Liver Metastases", Value: "2 lesions (<2cm)"},
				},
				DICOMViewable: false,
			},
			MicrobiomeData: MicrobiomeData{
				KeySignatures: []Marker{
					{Name: "Akkermansia muciniphila", Value: "Low Abundance"},
				},
				StoolSampleReportUploaded: true,
				GutDiversityIndex:         0.60,
			},
			LabResults: []LabResult{
				{MarkerName: "CEA", Value: "55.2", Unit: "ng/mL"},
			},
			VirtualTumor: VirtualTumorModel{
				SimulatedGrowthRate:         "Aggressive",
				PredictedImmuneInfiltration: "Low",
				MicroenvironmentFactors:     "Immune-desert phenotype",
				LastUpdated:                 time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

// Seed loads the demo cohort into repo. Fixtures are inserted in reverse so
// patient_001 ends up first in store order.
func Seed(ctx context.Context, repo Repository) error {
	fixtures := SeedPatients()
	for i := len(fixtures) - 1; i >= 0; i-- {
		if err := repo.Insert(ctx, fixtures[i]); err != nil {
			return err
		}
	}
	return nil
}
