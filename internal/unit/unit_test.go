package unit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestConverter_CompraParaUso(t *testing.T) {
	cases := []struct {
		nome  string
		valor string
		de    string
		para  string
		quero string
	}{
		{"cm para metros", "150", "cm", "metros", "1.5"},
		{"metros para cm", "1.5", "metros", "cm", "150"},
		{"gramas para kg", "250", "gramas", "kg", "0.25"},
		{"kg para gramas", "0.25", "kg", "gramas", "250"},
		{"ml para litros", "330", "ml", "litros", "0.33"},
		{"litros para ml", "2", "l", "ml", "2000"},
		{"mesma unidade", "7.25", "metros", "metros", "7.25"},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			got := Converter(dec(tc.valor), tc.de, tc.para)
			assert.True(t, got.Equal(dec(tc.quero)), "quero %s, veio %s", tc.quero, got)
		})
	}
}

func TestConverter_Sinonimos(t *testing.T) {
	// Abbreviation and full word are the same row, case-insensitive
	assert.True(t, Converter(dec("100"), "CM", "Metros").Equal(dec("1")))
	assert.True(t, Converter(dec("1"), "Kg", "G").Equal(dec("1000")))
	assert.True(t, Converter(dec("500"), "Mililitros", "L").Equal(dec("0.5")))
}

func TestConverter_UnidadeDesconhecidaPassaDireto(t *testing.T) {
	// Count-like units (unidade, pacote, novelo…) are not in the table:
	// conversion is identity, never an error
	v := dec("12")
	assert.True(t, Converter(v, "unidade", "unidade").Equal(v))
	assert.True(t, Converter(v, "novelo", "metros").Equal(v))
	assert.True(t, Converter(v, "metros", "pacote").Equal(v))
}

func TestConverter_IdaEVoltaExata(t *testing.T) {
	// Power-of-ten scales keep decimal round-trips exact
	valores := []string{"1", "0.1", "150", "3.333", "0.0001", "99999.99"}
	pares := [][2]string{{"cm", "metros"}, {"gramas", "kg"}, {"ml", "litros"}}
	for _, v := range valores {
		for _, par := range pares {
			ida := Converter(dec(v), par[0], par[1])
			volta := Converter(ida, par[1], par[0])
			assert.True(t, volta.Equal(dec(v)), "%s %s→%s→%s veio %s", v, par[0], par[1], par[0], volta)
		}
	}
}

func TestDimensaoDe(t *testing.T) {
	assert.Equal(t, DimensaoComprimento, DimensaoDe("cm"))
	assert.Equal(t, DimensaoMassa, DimensaoDe("QUILOS"))
	assert.Equal(t, DimensaoVolume, DimensaoDe(" ml "))
	assert.Equal(t, DimensaoNenhuma, DimensaoDe("unidade"))
}

func TestCompativeis(t *testing.T) {
	assert.True(t, Compativeis("cm", "metros"))
	assert.True(t, Compativeis("kg", "gramas"))
	assert.False(t, Compativeis("metros", "kg"))
	assert.False(t, Compativeis("litros", "cm"))

	// Unknown units are compatible with everything
	assert.True(t, Compativeis("unidade", "metros"))
	assert.True(t, Compativeis("novelo", "pacote"))
}
