package paystack

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxReferenceLen = 50
	subunitsPerUnit = 100
)

// NewReference returns a unique transaction or transfer reference.
// It is prefix followed by 32 hex characters, with prefix cut so the result never exceeds 50 characters.
func NewReference(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if len(prefix) > maxReferenceLen-len(id) {
		prefix = prefix[:maxReferenceLen-len(id)]
	}
	return prefix + id
}

// ToSubunit converts a major-unit amount, such as naira, to the subunit the API expects, such as kobo
func ToSubunit(amount decimal.Decimal) (int64, error) {
	sub := amount.Mul(decimal.NewFromInt(subunitsPerUnit))
	if !sub.IsInteger() {
		return 0, fmt.Errorf("error converting %s to subunits, more than two decimal places", amount)
	}
	return sub.IntPart(), nil
}

// FromSubunit converts an API amount back to major units
func FromSubunit(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}
