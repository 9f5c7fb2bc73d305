package service

import "github.com/cadastra/backend/internal/validation"

// Rule tables and message sets for every validated write. Messages are the
// ones shown to API clients, hence Portuguese.

var registerSchema = validation.Schema{
	{Name: "username", Rules: []validation.Rule{
		validation.Required(), validation.Min(5), validation.Unique("users"),
	}},
	{Name: "email", Rules: []validation.Rule{
		validation.Required(), validation.Email(), validation.Unique("users"),
	}},
	{Name: "password", Rules: []validation.Rule{
		validation.Required(), validation.Min(6),
	}},
}

var registerMessages = validation.Messages{
	"username.required": "Campo obrigatório",
	"username.unique":   "Usuário indisponível",
	"username.min":      "O usuário deve ter 5 ou mais caracteres",
	"email.required":    "Campo obrigatório",
	"email.email":       "E-mail inválido",
	"email.unique":      "Email indisponível",
	"password.required": "Campo obrigatório",
	"password.min":      "A senha deve ter 6 ou mais caracteres",
}

var userInfoCreateSchema = validation.Schema{
	{Name: "name", Rules: []validation.Rule{validation.Required()}},
	{Name: "birth_date", Rules: []validation.Rule{validation.Required()}},
	{Name: "gender", Rules: []validation.Rule{
		validation.Required(), validation.In("Masculino", "Feminino", "Outro"),
	}},
	{Name: "cpf", Rules: []validation.Rule{
		validation.Required(), validation.Unique("user_infos"), validation.Min(11), validation.Max(11),
	}},
	{Name: "rg", Rules: []validation.Rule{
		validation.Required(), validation.Unique("user_infos"), validation.Min(7), validation.Max(10),
	}},
	{Name: "phone_number", Rules: []validation.Rule{validation.Required()}},
	{Name: "address", Rules: []validation.Rule{validation.Required()}},
	{Name: "zip_code", Rules: []validation.Rule{validation.Required()}},
	{Name: "city", Rules: []validation.Rule{validation.Required()}},
}

// Updates are partial: nothing is required, only submitted fields are
// checked.
var userInfoUpdateSchema = validation.Schema{
	{Name: "gender", Rules: []validation.Rule{
		validation.In("Masculino", "Feminino", "Outro"),
	}},
	{Name: "cpf", Rules: []validation.Rule{
		validation.Unique("user_infos"), validation.Min(11), validation.Max(11),
	}},
	{Name: "rg", Rules: []validation.Rule{
		validation.Unique("user_infos"), validation.Min(7), validation.Max(10),
	}},
}

var userInfoMessages = validation.Messages{
	"name.required":         "Campo obrigatório",
	"birth_date.required":   "Campo obrigatório",
	"gender.required":       "Campo obrigatório",
	"gender.in":             "Gênero inválido",
	"cpf.required":          "Campo obrigatório",
	"cpf.unique":            "CPF já cadastrado",
	"cpf.min":               "CPF deve ter 11 digitos válidos",
	"cpf.max":               "CPF deve ter 11 digitos válidos",
	"rg.required":           "Campo obrigatório",
	"rg.unique":             "RG já cadastrado",
	"rg.min":                "RG deve ter no mínimo 7 digitos válidos",
	"rg.max":                "RG deve ter no máximo 10 digitos válidos",
	"phone_number.required": "Campo obrigatório",
	"address.required":      "Campo obrigatório",
	"zip_code.required":     "Campo obrigatório",
	"city.required":         "Campo obrigatório",
}
