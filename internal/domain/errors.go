package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidStatus     = errors.New("estado inválido")
)

// Códigos de validación del formulario de pedido.
const (
	CodeNameRequired       = "NAME_REQUIRED"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidPhone       = "INVALID_PHONE"
	CodeAddressTooShort    = "ADDRESS_TOO_SHORT"
	CodeInvalidQuantity    = "INVALID_QUANTITY"
	CodeQuantityOutOfRange = "QUANTITY_OUT_OF_RANGE"
)

// FieldError una regla violada: campo, código estable y mensaje legible.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors agrupa todas las reglas violadas de una entrada (no se corta en la primera).
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return "validación: " + strings.Join(msgs, "; ")
}

// Messages devuelve solo los mensajes, en el orden en que se detectaron.
func (v ValidationErrors) Messages() []string {
	out := make([]string, 0, len(v))
	for _, e := range v {
		out = append(out, e.Message)
	}
	return out
}

// HasCode indica si alguna de las reglas violadas tiene el código dado.
func (v ValidationErrors) HasCode(code string) bool {
	for _, e := range v {
		if e.Code == code {
			return true
		}
	}
	return false
}

// AsValidation extrae ValidationErrors de err si lo contiene.
func AsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
