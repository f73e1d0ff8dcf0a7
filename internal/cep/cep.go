// Package cep resolves Brazilian postal codes from a fixed table.
package cep

import (
	"strings"

	"github.com/01moynul/aguadelivery-golang/internal/apperror"
	"github.com/01moynul/aguadelivery-golang/internal/models"
)

var table = map[string]models.CEPAddress{
	"60000000": {
		CEP:        "60000-000",
		Logradouro: "Centro",
		Bairro:     "Centro",
		Localidade: "Fortaleza",
		UF:         "CE",
	},
	"01310100": {
		CEP:        "01310-100",
		Logradouro: "Avenida Paulista",
		Bairro:     "Bela Vista",
		Localidade: "São Paulo",
		UF:         "SP",
	},
}

// Normalize strips everything but ASCII digits from code.
func Normalize(code string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, code)
}

// Lookup resolves code, which may be formatted ("60000-000").
func Lookup(code string) (models.CEPAddress, error) {
	digits := Normalize(code)
	if len(digits) != 8 {
		return models.CEPAddress{}, apperror.ValidationError("CEP inválido")
	}

	addr, ok := table[digits]
	if !ok {
		return models.CEPAddress{}, apperror.NotFoundError("CEP não encontrado")
	}
	return addr, nil
}
