package domain

// Category is a closed-set label classifying a transaction's spending type.
type Category string

const (
	CategoryFood      Category = "Alimentação"
	CategoryTransport Category = "Transporte"
	CategoryLeisure   Category = "Lazer"
	CategoryHousing   Category = "Moradia"
	CategoryShopping  Category = "Compras"
	CategoryHealth    Category = "Saúde"
	CategoryEducation Category = "Educação"
	CategoryServices  Category = "Serviços"
	CategoryOther     Category = "Outros"
)

// Categories lists the closed category set in declared order. The order is
// significant: the categorizer evaluates keyword rules following it, and UI
// pickers render it as-is.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryLeisure,
	CategoryHousing,
	CategoryShopping,
	CategoryHealth,
	CategoryEducation,
	CategoryServices,
	CategoryOther,
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
