// Package order contiene las reglas de dominio del pedido: validación del formulario,
// numeración y estados permitidos. No depende de infraestructura.
package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
)

// Límites del formulario.
const (
	MinQuantity      = 1
	MaxQuantity      = 10
	MinPhoneLength   = 10
	MinAddressLength = 10
)

// Form campos crudos tal como llegan del formulario (cantidad en texto).
type Form struct {
	LastName  string
	FirstName string
	Address   string
	Phone     string
	Email     string
	Quantity  string
}

// Validate aplica todas las reglas en orden y acumula los errores (no corta en el primero).
// Devuelve la cantidad ya convertida cuando no hay errores.
func Validate(f Form) (int, error) {
	var errs domain.ValidationErrors

	if f.LastName == "" || f.FirstName == "" {
		errs = append(errs, domain.FieldError{Field: "nom", Code: domain.CodeNameRequired,
			Message: "El nombre y el apellido son obligatorios."})
	}
	if !strings.Contains(f.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Code: domain.CodeInvalidEmail,
			Message: "Email inválido."})
	}
	if !isDigits(f.Phone) || utf8.RuneCountInString(f.Phone) < MinPhoneLength {
		errs = append(errs, domain.FieldError{Field: "telephone", Code: domain.CodeInvalidPhone,
			Message: fmt.Sprintf("Teléfono inválido (%d dígitos mínimo).", MinPhoneLength)})
	}
	if utf8.RuneCountInString(f.Address) < MinAddressLength {
		errs = append(errs, domain.FieldError{Field: "adresse", Code: domain.CodeAddressTooShort,
			Message: "Dirección demasiado corta."})
	}

	qty, err := strconv.Atoi(strings.TrimSpace(f.Quantity))
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "quantite", Code: domain.CodeInvalidQuantity,
			Message: "Cantidad inválida."})
	} else if qty < MinQuantity || qty > MaxQuantity {
		errs = append(errs, domain.FieldError{Field: "quantite", Code: domain.CodeQuantityOutOfRange,
			Message: fmt.Sprintf("La cantidad debe estar entre %d y %d.", MinQuantity, MaxQuantity)})
	}

	if len(errs) > 0 {
		return 0, errs
	}
	return qty, nil
}

// isDigits true si s no está vacío y todas sus runas son dígitos.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// FormatNumber construye el número visible del pedido: CMD-<año>-<id a 4 dígitos>.
// Ids mayores a 9999 se escriben completos.
func FormatNumber(id int64, at time.Time) string {
	return fmt.Sprintf("CMD-%d-%04d", at.Year(), id)
}

// IsValidStatus indica si s es uno de los estados permitidos.
func IsValidStatus(s string) bool {
	switch s {
	case entity.OrderStatusPending, entity.OrderStatusShipped, entity.OrderStatusCancelled:
		return true
	}
	return false
}

// Statuses lista los estados permitidos en el orden en que se muestran en el panel.
func Statuses() []string {
	return []string{entity.OrderStatusPending, entity.OrderStatusShipped, entity.OrderStatusCancelled}
}
