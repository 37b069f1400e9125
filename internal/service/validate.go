package service

import (
	"github.com/go-playground/validator/v10"

	"catalog/internal/domain"
)

// Тексты ошибок валидации запроса
const (
	MsgInvalidName        = "Invalid product name provided, please request a product name again."
	MsgInvalidDescription = "Invalid product id provided, please request a product id again."
	MsgInvalidStatus      = "Invalid product status provided, status must be either 0 or 1."
	MsgInvalidPrice       = "Invalid product price provided, price must be greater than 0."
	MsgInvalidStock       = "Invalid product stock provided, stock must be 0 or more."
)

var fieldMessages = map[string]string{
	"Name":        MsgInvalidName,
	"Description": MsgInvalidDescription,
	"Status":      MsgInvalidStatus,
	"Price":       MsgInvalidPrice,
	"Stock":       MsgInvalidStock,
}

var validate = validator.New()

// ValidationError содержит нарушения правил по полям запроса
type ValidationError struct {
	Errors map[string][]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// validateRequest проверяет запрос и собирает нарушения в карту поле → сообщения.
// До хранилища невалидный запрос не доходит
func validateRequest(req domain.ProductRequest) *ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Errors: map[string][]string{"request": {err.Error()}}}
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		msg, known := fieldMessages[fe.Field()]
		if !known {
			msg = fe.Error()
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return &ValidationError{Errors: out}
}
