package models

// CEPAddress is the address a postal code resolves to, in ViaCEP field names.
type CEPAddress struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
}
