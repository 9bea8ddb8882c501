package graph

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Price is a float scalar that also coerces numeric text on input, so clients
// may send price as "25" or 25.
type Price float64

func (Price) ImplementsGraphQLType(name string) bool {
	return name == "Price"
}

func (p *Price) UnmarshalGraphQL(input interface{}) error {
	switch v := input.(type) {
	case float64:
		*p = Price(v)
	case int32:
		*p = Price(v)
	case int:
		*p = Price(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return fmt.Errorf("price is not numeric: %q", v)
		}
		*p = Price(f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("price is not numeric: %q", v)
		}
		*p = Price(f)
	default:
		return fmt.Errorf("wrong type for Price: %T", input)
	}
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// dateTimeLayouts are tried in order when coercing text input.
var dateTimeLayouts = []string{time.RFC3339, "2006-01-02"}

// DateTime is a point-in-time scalar. Input arrives as text and is parsed;
// output is an RFC 3339 string.
type DateTime struct {
	time.Time
}

func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

func (d *DateTime) UnmarshalGraphQL(input interface{}) error {
	switch v := input.(type) {
	case time.Time:
		d.Time = v
	case string:
		for _, layout := range dateTimeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				d.Time = t
				return nil
			}
		}
		return fmt.Errorf("not a valid date: %q", v)
	default:
		return fmt.Errorf("wrong type for DateTime: %T", input)
	}
	return nil
}
