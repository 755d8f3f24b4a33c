package store

import "portal/models"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// DefaultProducts are the example entries inserted when the catalog starts empty.
var DefaultProducts = []models.Product{
	{
		Title:       "NeuroSync v3",
		Description: "Versão avançada do chip com interface neural, permite transferência de conhecimento em alta velocidade.",
		Category:    "Neurotecnologia",
		Price:       29999.90,
		Image:       strPtr("/static/image/chip.jpg"),
		Brand:       strPtr("SynthTech"),
		Model:       strPtr("NS-3000"),
		Year:        intPtr(2023),
	},
	{
		Title:       "HoloBuddy Pro",
		Description: "Companheiro holográfico com IA avançada, capaz de interagir com objetos físicos.",
		Category:    "Holografia",
		Price:       22999.90,
		Image:       strPtr("/static/image/buddy.jpg"),
		Brand:       strPtr("HoloSynth"),
		Model:       strPtr("HB-Pro"),
		Year:        intPtr(2023),
	},
	{
		Title:       "ThermoFit Elite",
		Description: "Roupa inteligente com controle térmico avançado e monitoramento de saúde em tempo real.",
		Category:    "Vestíveis",
		Price:       12999.90,
		Image:       strPtr("/static/image/roupa.jpg"),
		Brand:       strPtr("SynthWear"),
		Model:       strPtr("TF-Elite"),
		Year:        intPtr(2023),
	},
}

// Seed inserts the given products when the catalog is empty.
func (c *Catalog) Seed(products []models.Product) {
	if c.Len() > 0 {
		return
	}
	for _, p := range products {
		c.Create(p)
	}
}
