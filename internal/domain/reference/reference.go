// Package reference serves the static glossary and FAQ content shown on the
// help screens.
package reference

type GlossaryTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var glossaryTerms = []GlossaryTerm{
	{
		Term:       "Digital Twin",
		Definition: "A virtual representation of a physical object or system, in this case, a patient's cancer, which is continuously updated with real-world data to simulate, predict, and optimize outcomes.",
	},
	{
		Term:       "Microbiome",
		Definition: "The collection of all microbes, such as bacteria, fungi, viruses, and their genes, that naturally live on our bodies and inside us. The gut microbiome plays a significant role in health and disease, including cancer development and treatment response.",
	},
	{
		Term:       "Interpretable AI",
		Definition: "Artificial intelligence models designed so that their decision-making processes are understandable by humans. This transparency helps clinicians trust and verify AI-driven insights and predictions.",
	},
	{
		Term:       "CRC",
		Definition: "Colorectal Cancer, a type of cancer that begins in the colon or the rectum.",
	},
	{
		Term:       "MSI-High",
		Definition: "Microsatellite Instability-High. A molecular phenotype in some cancers, including CRC, that often indicates a higher likelihood of response to immunotherapy.",
	},
	{
		Term:       "FMT",
		Definition: "Fecal Microbiota Transplant. A procedure to transfer fecal bacteria and other microbes from a healthy individual into another individual to restore a healthy gut microbiome.",
	},
}

var faqItems = []FAQItem{
	{
		Question: "What is OncoTwin?",
		Answer:   "OncoTwin is a digital twin platform designed to help oncologists make more informed, data-driven treatment decisions for cancer patients, initially focusing on Colorectal Cancer (CRC). It integrates multi-modal patient data to create a virtual tumor model for simulating treatment responses and predicting outcomes.",
	},
	{
		Question: "How does OncoTwin use patient data?",
		Answer:   "OncoTwin integrates various data types, including genomic data, medical imaging, microbiome profiles, lab results, and clinical history. This data feeds into a virtual tumor model that continuously learns and adapts.",
	},
	{
		Question: "Is the AI in OncoTwin a 'black box'?",
		Answer:   "No, OncoTwin emphasizes interpretable AI. The platform aims to provide insights into why a particular prediction is made, highlighting key influencing factors and offering simplified decision pathways.",
	},
	{
		Question: "Can I use OncoTwin for actual clinical decision-making?",
		Answer:   "This is a demonstration platform. OncoTwin is under development and is intended for research and informational purposes only. It should not be used for actual clinical decision-making without regulatory approval and further validation.",
	},
}

// Glossary returns all glossary terms in display order.
func Glossary() []GlossaryTerm {
	return append([]GlossaryTerm(nil), glossaryTerms...)
}

// FAQ returns all FAQ entries in display order.
func FAQ() []FAQItem {
	return append([]FAQItem(nil), faqItems...)
}
