package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	cases := map[int]string{
		0:       "cero",
		5:       "cinco",
		16:      "dieciséis",
		21:      "veintiuno",
		31:      "treinta y uno",
		100:     "cien",
		101:     "ciento uno",
		500:     "quinientos",
		999:     "novecientos noventa y nueve",
		1000:    "mil",
		1001:    "mil uno",
		21000:   "veintiún mil",
		660000:  "seiscientos sesenta mil",
		1000000: "un millón",
		2660000: "dos millones seiscientos sesenta mil",
	}
	for num, want := range cases {
		assert.Equal(t, want, NumberToWords(num), "n=%d", num)
	}
}

func TestAmountToCurrencyWords(t *testing.T) {
	assert.Equal(t, "DOS MILLONES SEISCIENTOS SESENTA MIL PESOS M/CTE",
		AmountToCurrencyWords(2660000))
	assert.Equal(t, "CERO PESOS M/CTE", AmountToCurrencyWords(0))
	assert.Equal(t, "MIL PESOS CON CINCUENTA CENTAVOS M/CTE",
		AmountToCurrencyWords(1000.50))
}
