// Package categorizer assigns spending categories to transactions by
// matching keyword substrings against the description. Rules are an ordered
// list, not a map: the first category whose first keyword matches wins, so
// classification is deterministic regardless of how the rules are iterated.
package categorizer

import (
	"strings"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
)

// Rule pairs a category with the keyword substrings that select it.
// Keywords match case-insensitively anywhere in the description.
type Rule struct {
	Category domain.Category
	Keywords []string
}

// Rules is the declared evaluation order. CategoryOther has no keywords; it
// is the fallback when nothing matches.
var Rules = []Rule{
	{Category: domain.CategoryFood, Keywords: []string{
		"supermercado", "mercado", "padaria", "restaurante", "lanchonete",
		"ifood", "uber eats", "rappi", "delivery", "comida", "alimento",
		"açougue", "peixaria", "hortifruti", "bebida", "café", "starbucks",
		"padoka", "barateira", "emporio", "bariloch",
	}},
	{Category: domain.CategoryTransport, Keywords: []string{
		"uber", "taxi", "99", "inDriver", "posto", "combustível", "gasolina",
		"estacionamento", "pedágio", "metro", "ônibus", "transporte",
		"auto peças", "oficina", "manutenção",
	}},
	{Category: domain.CategoryLeisure, Keywords: []string{
		"cinema", "teatro", "show", "festa", "bar", "balada", "viagem",
		"hotel", "pousada", "turismo", "parque", "jogo", "streaming",
		"netflix", "spotify", "amazon prime", "disney",
	}},
	{Category: domain.CategoryHousing, Keywords: []string{
		"aluguel", "condomínio", "luz", "água", "energia", "gás", "internet",
		"telefone", "iptu", "reforma", "construção", "material de construção",
		"decoração", "móveis", "eletrodoméstico",
	}},
	{Category: domain.CategoryShopping, Keywords: []string{
		"loja", "shopping", "amazon", "magazine luiza", "americanas",
		"casas bahia", "extra", "carrefour", "walmart", "compra",
		"e-commerce", "marketplace", "atelie", "atelier", "tudo 10",
	}},
	{Category: domain.CategoryHealth, Keywords: []string{
		"farmácia", "drogaria", "hospital", "clínica", "médico", "dentista",
		"laboratório", "exame", "plano de saúde", "unimed", "amil",
		"medicamento", "remédio", "raia",
	}},
	{Category: domain.CategoryEducation, Keywords: []string{
		"escola", "faculdade", "universidade", "curso", "livro", "material escolar",
		"mensalidade", "matrícula", "educação",
	}},
	{Category: domain.CategoryServices, Keywords: []string{
		"banco", "tarifa", "anuidade", "seguro", "consórcio", "financiamento",
		"serviço", "assinatura", "assinatura mensal", "pagamentos", "tuna",
	}},
}

// Categorize classifies a single transaction by its description. It is a
// pure function: same description, same category.
func Categorize(txn domain.Transaction) domain.Category {
	description := strings.ToLower(txn.Description)
	for _, rule := range Rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(description, strings.ToLower(keyword)) {
				return rule.Category
			}
		}
	}
	return domain.CategoryOther
}

// Apply fills txn.Category when it is empty. Existing categories are never
// overwritten, which also makes Apply idempotent.
func Apply(txn domain.Transaction) domain.Transaction {
	if strings.TrimSpace(string(txn.Category)) != "" {
		return txn
	}
	txn.Category = Categorize(txn)
	return txn
}

// ApplyAll categorizes a batch, filling gaps only.
func ApplyAll(txns []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(txns))
	for i, txn := range txns {
		out[i] = Apply(txn)
	}
	return out
}
