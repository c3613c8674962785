package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// PaymentMethod is how a transaction was settled. Like Category it is a
// closed set with reject-on-unknown decoding.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentSwish PaymentMethod = "swish"
)

// ParsePaymentMethod decodes a stored payment-method value, rejecting
// unknown text.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard, PaymentSwish:
		return PaymentMethod(s), nil
	}
	return "", &UnknownValueError{Kind: "payment method", Value: s}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// Label returns the display name used on receipts and reports.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentCard:
		return "Card"
	case PaymentSwish:
		return "Swish"
	}
	return string(m)
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParsePaymentMethod(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case []byte:
		parsed, err := ParsePaymentMethod(string(v))
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into PaymentMethod", value)
}

// UnknownValueError reports an enumerated column whose stored text does
// not belong to the closed set. It carries the field kind so callers can
// tell which column of a row failed to decode.
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return "unknown " + e.Kind + " " + strconv.Quote(e.Value)
}
