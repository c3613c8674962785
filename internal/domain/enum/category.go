package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Category classifies a menu item. The set is closed: decoding an
// unrecognized value is an error, never a silent default, because a
// miscategorized row would flow straight into the sales report.
type Category string

const (
	CategoryAlcohol Category = "alcohol"
	CategoryDrink   Category = "drink"
	CategoryFood    Category = "food"
	CategoryOther   Category = "other"
)

// ParseCategory decodes a stored category value, rejecting unknown text.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryAlcohol, CategoryDrink, CategoryFood, CategoryOther:
		return Category(s), nil
	}
	return "", &UnknownValueError{Kind: "category", Value: s}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Category) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *Category) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParseCategory(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case []byte:
		parsed, err := ParseCategory(string(v))
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into Category", value)
}
