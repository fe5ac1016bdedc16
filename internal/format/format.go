// Package format concentra as máscaras de exibição usadas pela equipe de
// vendas: telefone, CEP e valores em real.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/avantivendas/visitas-api/internal/httperr"
)

var phonePattern = regexp.MustCompile(`^(\d{2})(\d{4,5})(\d{4})$`)

// ErrInvalidCEP: CEP precisa de exatamente 8 dígitos numéricos.
var ErrInvalidCEP = httperr.ErrBusiness("invalid_cep")

// MaskPhone aplica a máscara (DD) DDDDD-DDDD ou (DD) DDDD-DDDD quando a
// entrada tem 10 ou 11 dígitos. Qualquer outra entrada volta como veio:
// o time prefere guardar o que foi digitado a rejeitar o registro.
func MaskPhone(s string) string {
	m := phonePattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
}

// MaskCEP valida e normaliza um CEP para o formato NNNNN-NNN.
func MaskCEP(s string) (string, error) {
	if len(s) != 8 {
		return "", ErrInvalidCEP
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", ErrInvalidCEP
		}
	}
	return s[:5] + "-" + s[5:], nil
}

// Currency formata um número decimal no padrão brasileiro com prefixo
// "R$ " (1234.5 → "R$ 1.234,50"). Entrada que não parseia volta intacta;
// a formatação é só de exibição e nunca derruba a listagem.
func Currency(value string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return value
	}

	neg := v < 0
	if neg {
		v = -v
	}

	whole := fmt.Sprintf("%.2f", v)
	intPart := whole[:len(whole)-3]
	decPart := whole[len(whole)-2:]

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "R$ " + b.String() + "," + decPart
	if neg {
		out = "R$ -" + b.String() + "," + decPart
	}
	return out
}
