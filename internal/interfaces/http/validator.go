package http

import "github.com/go-playground/validator/v10"

// validate instancia compartida para validar DTOs de entrada (tags `validate`).
var validate = validator.New()
