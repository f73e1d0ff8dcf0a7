package catalog

import "github.com/01moynul/aguadelivery-golang/internal/models"

// DefaultProducts is the storefront's seed catalog.
var DefaultProducts = []models.Product{
	{
		ID:          1,
		Name:        "Água Crystal 500ml",
		Volume:      "500ml",
		Price:       2.5,
		Image:       "https://images.unsplash.com/photo-1550547660-d9450f859349?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		Description: "Água mineral natural cristalina, pureza e qualidade garantidas.",
		Category:    "mineral",
		Brand:       "Crystal",
		InStock:     true,
	},
	{
		ID:          2,
		Name:        "Água São Lourenço 1.5L",
		Volume:      "1.5L",
		Price:       3.9,
		Image:       "https://images.unsplash.com/photo-1548839140-29a749e1cf4d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		Description: "Água mineral natural de São Lourenço, rica em minerais essenciais.",
		Category:    "mineral",
		Brand:       "São Lourenço",
		InStock:     true,
	},
	{
		ID:          3,
		Name:        "Água Bonafont 1L",
		Volume:      "1L",
		Price:       2.9,
		Image:       "https://images.unsplash.com/photo-1559827260-dc66d52bef19?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		Description: "Água purificada Bonafont, ideal para hidratação diária.",
		Category:    "purificada",
		Brand:       "Bonafont",
		InStock:     true,
	},
	{
		ID:          4,
		Name:        "Água Indaiá 510ml",
		Volume:      "510ml",
		Price:       2.2,
		Image:       "https://images.unsplash.com/photo-1523362628745-0c100150b504?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		Description: "Água mineral natural Indaiá, fonte de bem-estar e saúde.",
		Category:    "mineral",
		Brand:       "Indaiá",
		InStock:     true,
	},
	{
		ID:          5,
		Name:        "Água Perrier 330ml",
		Volume:      "330ml",
		Price:       6.5,
		Image:       "https://images.unsplash.com/photo-1571068316344-75bc76f77890?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		Description: "Água mineral com gás francesa Perrier, sofisticação em cada gole.",
		Category:    "com_gas",
		Brand:       "Perrier",
		InStock:     true,
	},
}
