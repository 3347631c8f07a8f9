package utils

import "strings"

// apenasDigitos remove tudo que não for dígito
func apenasDigitos(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskCNPJ formata um CNPJ como NN.NNN.NNN/NNNN-NN. A máscara só é
// aplicada quando há exatamente 14 dígitos; caso contrário os dígitos
// são devolvidos sem agrupamento.
func MaskCNPJ(v *string) string {
	if v == nil {
		return ""
	}
	n := apenasDigitos(*v)
	if len(n) != 14 {
		return n
	}
	return n[0:2] + "." + n[2:5] + "." + n[5:8] + "/" + n[8:12] + "-" + n[12:14]
}

// MaskPhone formata um telefone brasileiro: 11 dígitos viram
// (NN) NNNNN-NNNN, 10 dígitos viram (NN) NNNN-NNNN, qualquer outro
// tamanho fica sem máscara.
func MaskPhone(v *string) string {
	if v == nil {
		return ""
	}
	n := apenasDigitos(*v)
	switch len(n) {
	case 11:
		return "(" + n[0:2] + ") " + n[2:7] + "-" + n[7:11]
	case 10:
		return "(" + n[0:2] + ") " + n[2:6] + "-" + n[6:10]
	default:
		return n
	}
}
