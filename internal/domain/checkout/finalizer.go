package checkout

import (
	"strconv"
	"strings"

	"github.com/shoppy/backend/internal/domain/customer"
	"github.com/shoppy/backend/internal/domain/shared"
)

// Finalize turns a completed checkout into a new order in the submitted
// state. It is a pure function over the checkout contents: the same
// checkout always renders the same summary text.
func Finalize(c *Checkout) (*customer.Order, error) {
	if c.Address == nil {
		return nil, shared.NewDomainError("BAD_REQUEST", "Address not provided")
	}
	if c.PaymentMethod == nil {
		return nil, shared.NewDomainError("BAD_REQUEST", "Payment method not provided")
	}

	return customer.NewOrder(renderSummary(c))
}

// renderSummary builds the human-readable order summary. Only the first
// four card digits ever appear in it.
func renderSummary(c *Checkout) string {
	var summary strings.Builder

	summary.WriteString("Shoppy Application\n")
	summary.WriteString("Items: \n")
	for _, item := range c.Items {
		summary.WriteString(item.ProductName)
		summary.WriteByte('(')
		summary.WriteString(strconv.Itoa(item.Quantity))
		summary.WriteString(") $")
		summary.WriteString(item.Price.String())
		summary.WriteByte('\n')
	}

	summary.WriteByte('\n')
	summary.WriteString("Payment method: \n")
	summary.WriteString("Card holder: ")
	summary.WriteString(c.PaymentMethod.CardHolder)
	summary.WriteByte('\n')
	summary.WriteString("Card starting numbers: ")
	summary.WriteString(c.PaymentMethod.StartingNumbers())
	summary.WriteByte('\n')

	summary.WriteByte('\n')
	summary.WriteString("Delivery address: \n")
	summary.WriteString("Country: ")
	summary.WriteString(c.Address.Country.String())
	summary.WriteByte('\n')
	summary.WriteString("City: ")
	summary.WriteString(c.Address.City.String())
	summary.WriteByte('\n')
	summary.WriteString("State: ")
	summary.WriteString(c.Address.State.String())
	summary.WriteByte('\n')
	summary.WriteString("ZipCode: ")
	summary.WriteString(c.Address.ZipCode)
	summary.WriteByte('\n')
	summary.WriteString("Line 1: ")
	summary.WriteString(c.Address.AddressLine1)
	summary.WriteByte('\n')
	summary.WriteString("Line 2: ")
	summary.WriteString(c.Address.AddressLine2)
	summary.WriteByte('\n')
	summary.WriteString("Thank you for your order")

	return summary.String()
}
