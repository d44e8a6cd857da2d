package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase passthrough", in: "valor", want: "valor"},
		{name: "trims and lowercases", in: "  Valor  ", want: "valor"},
		{name: "strips diacritics", in: "Descrição", want: "descricao"},
		{name: "strips diacritics and case", in: "HISTÓRICO", want: "historico"},
		{name: "strips BOM", in: "\uFEFFData Lancamento", want: "data lancamento"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.in))
		})
	}
}

func TestNormalizeStatement_StripsBannerAboveHeader(t *testing.T) {
	raw := "Extrato Conta Corrente\r\n" +
		"Período: 01/03/2024 a 31/03/2024\r\n" +
		"\r\n" +
		"Data Lancamento;Historico;Descricao;Valor;Saldo\r\n" +
		"15/03/2024;Pix;Ifood;-45,90;1.200,50\r\n"

	cleaned := NormalizeStatement(raw)

	assert.Equal(t,
		"Data Lancamento;Historico;Descricao;Valor;Saldo\n"+
			"15/03/2024;Pix;Ifood;-45,90;1.200,50\n",
		cleaned)
}

func TestNormalizeStatement_HeaderOnFirstLine(t *testing.T) {
	raw := "data lancamento,historico,descricao,valor,saldo\n01/01/2024,TED,Mercado,-10,00,100,00"
	assert.Equal(t, raw, NormalizeStatement(raw))
}

func TestNormalizeStatement_NoHeaderReturnsInputUnchanged(t *testing.T) {
	raw := "apenas texto livre\nsem cabecalho nenhum"
	assert.Equal(t, raw, NormalizeStatement(raw))
}

func TestNormalizeStatement_AccentedHeaderIsRecognized(t *testing.T) {
	raw := "lixo acima\nData Lançamento;Histórico;Descrição;Valor;Saldo\n01/02/2024;Pix;Padaria;-5,00;95,00"
	cleaned := NormalizeStatement(raw)
	assert.Equal(t, "Data Lançamento;Histórico;Descrição;Valor;Saldo\n01/02/2024;Pix;Padaria;-5,00;95,00", cleaned)
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, ';', DetectDelimiter("a;b;c\n1;2;3"))
	assert.Equal(t, ',', DetectDelimiter("a,b,c\n1,2,3"))
	// Semicolon wins when the first line carries both
	assert.Equal(t, ';', DetectDelimiter("a;b,c\n"))
}
