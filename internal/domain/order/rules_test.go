package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/order"
)

func validForm() order.Form {
	return order.Form{
		LastName:  "Durand",
		FirstName: "Claire",
		Address:   "12 rue des Lilas, Lyon",
		Phone:     "0612345678",
		Email:     "claire@example.com",
		Quantity:  "2",
	}
}

func TestValidate_FormularioValido(t *testing.T) {
	qty, err := order.Validate(validForm())
	require.NoError(t, err)
	assert.Equal(t, 2, qty)
}

func TestValidate_CantidadFueraDeRango(t *testing.T) {
	for _, q := range []string{"0", "11", "-3"} {
		f := validForm()
		f.Quantity = q
		_, err := order.Validate(f)
		verrs, ok := domain.AsValidation(err)
		require.True(t, ok, "cantidad %q debe dar error de validación", q)
		assert.True(t, verrs.HasCode(domain.CodeQuantityOutOfRange), "cantidad %q", q)
		assert.False(t, verrs.HasCode(domain.CodeInvalidQuantity), "cantidad %q", q)
	}
}

func TestValidate_CantidadNoNumericaEsErrorDistinto(t *testing.T) {
	f := validForm()
	f.Quantity = "abc"
	_, err := order.Validate(f)
	verrs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.True(t, verrs.HasCode(domain.CodeInvalidQuantity))
	assert.False(t, verrs.HasCode(domain.CodeQuantityOutOfRange))
}

func TestValidate_CantidadConEspacios(t *testing.T) {
	f := validForm()
	f.Quantity = " 10 "
	qty, err := order.Validate(f)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)
}

func TestValidate_Telefono(t *testing.T) {
	f := validForm()
	f.Phone = "12345"
	_, err := order.Validate(f)
	verrs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.True(t, verrs.HasCode(domain.CodeInvalidPhone))

	f.Phone = "1234567890"
	_, err = order.Validate(f)
	assert.NoError(t, err)

	f.Phone = "06 12 34 56 78"
	_, err = order.Validate(f)
	assert.Error(t, err, "los espacios no son dígitos")
}

func TestValidate_AcumulaTodosLosErrores(t *testing.T) {
	_, err := order.Validate(order.Form{Quantity: "abc"})
	verrs, ok := domain.AsValidation(err)
	require.True(t, ok)

	codes := make([]string, 0, len(verrs))
	for _, e := range verrs {
		codes = append(codes, e.Code)
	}
	assert.Equal(t, []string{
		domain.CodeNameRequired,
		domain.CodeInvalidEmail,
		domain.CodeInvalidPhone,
		domain.CodeAddressTooShort,
		domain.CodeInvalidQuantity,
	}, codes)
	assert.Len(t, verrs.Messages(), 5)
}

func TestValidate_FaltaSoloElApellido(t *testing.T) {
	f := validForm()
	f.FirstName = ""
	_, err := order.Validate(f)
	verrs, ok := domain.AsValidation(err)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Equal(t, domain.CodeNameRequired, verrs[0].Code)
}

func TestFormatNumber(t *testing.T) {
	at := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "CMD-2024-0007", order.FormatNumber(7, at))
	assert.Equal(t, "CMD-2024-1234", order.FormatNumber(1234, at))
	assert.Equal(t, "CMD-2024-12345", order.FormatNumber(12345, at))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range order.Statuses() {
		assert.True(t, order.IsValidStatus(s), s)
	}
	assert.False(t, order.IsValidStatus("delivered"))
	assert.False(t, order.IsValidStatus(""))
	assert.False(t, order.IsValidStatus("PENDING"))
}
