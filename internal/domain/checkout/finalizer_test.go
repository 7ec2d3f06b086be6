package checkout

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoppy/backend/internal/domain/customer"
	"github.com/shoppy/backend/internal/domain/geography"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompleteCheckout(t *testing.T) *Checkout {
	t.Helper()

	c, err := NewCheckout(uuid.New())
	require.NoError(t, err)

	keyboard, err := NewItem(uuid.New(), "Keyboard", decimal.NewFromInt(49), 2)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(*keyboard))

	mouse, err := NewItem(uuid.New(), "Mouse", decimal.RequireFromString("19.99"), 1)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(*mouse))

	address, err := customer.NewAddress(
		geography.CountryDominicanRepublic,
		geography.CityLaRomana,
		geography.StateVillaHermosa,
		"22000",
		"Main Street 1",
		"Apt 2",
	)
	require.NoError(t, err)
	c.AssignAddress(address)

	paymentMethod, err := customer.NewPaymentMethod("4111111111111111", "John Doe", "12/30", "123")
	require.NoError(t, err)
	c.AssignPaymentMethod(paymentMethod)

	return c
}

func TestFinalizeSummaryFormat(t *testing.T) {
	c := newCompleteCheckout(t)

	order, err := Finalize(c)
	require.NoError(t, err)

	want := "Shoppy Application\n" +
		"Items: \n" +
		"Keyboard(2) $49\n" +
		"Mouse(1) $19.99\n" +
		"\n" +
		"Payment method: \n" +
		"Card holder: John Doe\n" +
		"Card starting numbers: 4111\n" +
		"\n" +
		"Delivery address: \n" +
		"Country: DOMINICAN_REPUBLIC\n" +
		"City: LA_ROMANA\n" +
		"State: VILLA_HERMOSA\n" +
		"ZipCode: 22000\n" +
		"Line 1: Main Street 1\n" +
		"Line 2: Apt 2\n" +
		"Thank you for your order"

	assert.Equal(t, want, order.Summary)
	assert.Equal(t, customer.DeliveryStatusSubmitted, order.DeliveryStatus)
}

func TestFinalizeIsDeterministic(t *testing.T) {
	c := newCompleteCheckout(t)

	first, err := Finalize(c)
	require.NoError(t, err)
	second, err := Finalize(c)
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
}

func TestFinalizeNeverLeaksFullCardNumber(t *testing.T) {
	c := newCompleteCheckout(t)

	order, err := Finalize(c)
	require.NoError(t, err)

	assert.NotContains(t, order.Summary, c.PaymentMethod.CardNumber)
	assert.Contains(t, order.Summary, "Card starting numbers: 4111\n")
	assert.False(t, strings.Contains(order.Summary, "41111"))
}

func TestFinalizeMissingPrerequisites(t *testing.T) {
	t.Run("missing address", func(t *testing.T) {
		c := newCompleteCheckout(t)
		c.AssignAddress(nil)

		_, err := Finalize(c)
		require.Error(t, err)
		assert.EqualError(t, err, "Address not provided")
	})

	t.Run("missing payment method", func(t *testing.T) {
		c := newCompleteCheckout(t)
		c.AssignPaymentMethod(nil)

		_, err := Finalize(c)
		require.Error(t, err)
		assert.EqualError(t, err, "Payment method not provided")
	})
}
