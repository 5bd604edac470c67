package geneticsqa

// TopicCategory groups the subtopics of one genetics area. Categories keep
// their declared order so runs are reproducible.
type TopicCategory struct {
	Name      string
	Subtopics []string
}

// TopicSet is the static worklist configuration for one schema variant.
type TopicSet []TopicCategory

// LegacyTopics is the broad four-category list used by the 8-option variant.
var LegacyTopics = TopicSet{
	{
		Name: "molecular_genetics",
		Subtopics: []string{
			"DNA replication mechanisms and enzymes",
			"Transcription and RNA processing (splicing, capping, polyadenylation)",
			"Translation and protein synthesis",
			"cDNA synthesis and reverse transcription",
			"mRNA processing and post-transcriptional modifications",
			"Differences between prokaryotic and eukaryotic gene expression",
			"Introns, exons, and splicing mechanisms",
			"DNA repair mechanisms",
			"Telomeres and telomerase",
			"Chromatin structure and gene regulation",
		},
	},
	{
		Name: "classical_genetics",
		Subtopics: []string{
			"Mendelian inheritance patterns",
			"Punnett squares and probability calculations",
			"Incomplete dominance and codominance",
			"Multiple alleles and blood types",
			"Sex-linked inheritance",
			"Epistasis and gene interactions",
			"Pedigree analysis",
			"Test crosses and phenotype ratios",
			"Linked genes and recombination frequency",
			"Genetic mapping and chromosome maps",
		},
	},
	{
		Name: "population_genetics",
		Subtopics: []string{
			"Hardy-Weinberg equilibrium calculations",
			"Allele frequency changes",
			"Genetic drift and founder effect",
			"Natural selection and fitness",
			"Gene flow and migration",
			"Heterozygote advantage",
			"Inbreeding and its effects",
			"Effective population size",
			"Selection coefficients",
			"Mutation-selection balance",
		},
	},
	{
		Name: "mutations_and_variation",
		Subtopics: []string{
			"Point mutations (missense, nonsense, silent)",
			"Frameshift mutations",
			"Chromosomal mutations (deletions, duplications, inversions, translocations)",
			"Aneuploidy and polyploidy",
			"Trinucleotide repeat disorders",
			"Transposons and mobile genetic elements",
			"Mutation rates and mutagens",
			"Somatic vs germline mutations",
			"Effects of mutations on protein function",
			"Genetic diseases and inheritance patterns",
		},
	},
}

// CurrentTopics is the consolidated molecular genetics list used by the
// 10-option variant, rebalanced to avoid overlapping subtopics.
var CurrentTopics = TopicSet{
	{
		Name: "molecular_genetics",
		Subtopics: []string{
			"DNA replication fork dynamics and coordination of enzymes",
			"DNA damage recognition and repair pathway selection",
			"Telomere maintenance and consequences of telomerase dysfunction",
			"Regulation of gene expression from transcription through translation",
			"Ribosome assembly and translation quality control mechanisms",
			"Post-translational modifications and protein targeting",
			"Chromatin remodeling and epigenetic inheritance",
			"Transcription factor interactions and combinatorial gene regulation",
			"Prokaryotic vs eukaryotic gene expression control points",
			"Experimental techniques for studying gene expression (PCR, blotting, sequencing)",
		},
	},
}

// TopicsFor returns the topic table for a schema variant.
func TopicsFor(s Schema) TopicSet {
	if s.Name == LegacySchema.Name {
		return LegacyTopics
	}
	return CurrentTopics
}

// Worklist expands the topic set into per-question work items, perTopic
// questions per subtopic, in declaration order. When only is non-empty,
// other categories are skipped.
func (ts TopicSet) Worklist(perTopic int, only string) []WorkItem {
	var items []WorkItem
	for _, cat := range ts {
		if only != "" && cat.Name != only {
			continue
		}
		for _, topic := range cat.Subtopics {
			for i := 0; i < perTopic; i++ {
				items = append(items, WorkItem{Category: cat.Name, Topic: topic})
			}
		}
	}
	return items
}
