package buddy

import "strings"

// NoRelevantContent is returned when no knowledge base entry matches the query.
const NoRelevantContent = "Nenhuma informação relevante encontrada."

// Fixed knowledge base about AI in art and technology advances.
var knowledgeBase = []string{
	"A inteligência artificial tem revolucionado o mundo da arte generativa, permitindo a criação de obras únicas por meio de redes neurais.",
	"Realidade aumentada e IA têm sido combinadas em experiências culturais imersivas, como exposições interativas em museus.",
	"Avanços tecnológicos como computação quântica e IA simbólica estão moldando o futuro da criatividade artificial.",
	"IA criativa pode colaborar com artistas, oferecendo sugestões de composição, paletas de cor ou até mesmo criando música original.",
}

// RelevantContent keeps every knowledge base entry containing at least one
// whitespace-delimited token of the query (case-insensitive), joined by
// newlines in the knowledge base's own order. Deterministic, no ranking.
func RelevantContent(query string) string {
	words := strings.Fields(strings.ToLower(query))

	var matches []string
	for _, doc := range knowledgeBase {
		lower := strings.ToLower(doc)
		for _, word := range words {
			if strings.Contains(lower, word) {
				matches = append(matches, doc)
				break
			}
		}
	}

	if len(matches) == 0 {
		return NoRelevantContent
	}
	return strings.Join(matches, "\n")
}
