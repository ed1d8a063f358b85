package utils

import (
	"fmt"
	"math"
	"strings"
)

var unidades = []string{
	"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince",
	"dieciséis", "diecisiete", "dieciocho", "diecinueve",
	"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro",
	"veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var decenas = []string{
	"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa",
}

var centenas = []string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
	"seiscientos", "setecientos", "ochocientos", "novecientos",
}

// apocope shortens "uno" before mil/millón: "veintiuno mil" is wrong,
// "veintiún mil" is right.
func apocope(s string) string {
	if strings.HasSuffix(s, "veintiuno") {
		return strings.TrimSuffix(s, "veintiuno") + "veintiún"
	}
	if strings.HasSuffix(s, "uno") {
		return strings.TrimSuffix(s, "uno") + "un"
	}
	return s
}

// NumberToWords spells a non-negative integer in Spanish.
func NumberToWords(num int) string {
	switch {
	case num == 0:
		return "cero"
	case num < 30:
		return unidades[num]
	case num < 100:
		if num%10 == 0 {
			return decenas[num/10]
		}
		return decenas[num/10] + " y " + unidades[num%10]
	case num == 100:
		return "cien"
	case num < 1000:
		if num%100 == 0 {
			return centenas[num/100]
		}
		return centenas[num/100] + " " + NumberToWords(num%100)
	case num < 1000000:
		miles := num / 1000
		prefix := "mil"
		if miles > 1 {
			prefix = apocope(NumberToWords(miles)) + " mil"
		}
		if num%1000 == 0 {
			return prefix
		}
		return prefix + " " + NumberToWords(num%1000)
	default:
		millones := num / 1000000
		prefix := "un millón"
		if millones > 1 {
			prefix = apocope(NumberToWords(millones)) + " millones"
		}
		if num%1000000 == 0 {
			return prefix
		}
		return prefix + " " + NumberToWords(num%1000000)
	}
}

// AmountToCurrencyWords spells a peso amount the way Colombian quotes print
// it, uppercase with the M/CTE suffix.
func AmountToCurrencyWords(amount float64) string {
	pesos := int(math.Floor(amount))
	centavos := int(math.Round((amount - float64(pesos)) * 100))

	words := strings.ToUpper(NumberToWords(pesos)) + " PESOS"
	if centavos > 0 {
		words += fmt.Sprintf(" CON %s CENTAVOS", strings.ToUpper(NumberToWords(centavos)))
	}
	return words + " M/CTE"
}
