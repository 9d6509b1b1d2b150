package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Sport is the closed set of sports a match can belong to. JSON carries the
// stable numeric code; the database column stores the name string.
type Sport int

const (
	SportFootball   Sport = 1
	SportBasketball Sport = 2
)

var sportNames = map[Sport]string{
	SportFootball:   "FOOTBALL",
	SportBasketball: "BASKETBALL",
}

var sportsByName = map[string]Sport{
	"FOOTBALL":   SportFootball,
	"BASKETBALL": SportBasketball,
}

func (s Sport) Valid() bool {
	_, ok := sportNames[s]
	return ok
}

func (s Sport) String() string {
	if name, ok := sportNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Sport(%d)", int(s))
}

func (s Sport) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid sport value: %d", int(s))
	}
	return json.Marshal(int(s))
}

func (s *Sport) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("invalid sport value: %s", string(data))
	}
	v := Sport(code)
	if !v.Valid() {
		return fmt.Errorf("invalid sport value: %d", code)
	}
	*s = v
	return nil
}

func (s Sport) Value() (driver.Value, error) {
	name, ok := sportNames[s]
	if !ok {
		return nil, fmt.Errorf("invalid sport value: %d", int(s))
	}
	return name, nil
}

func (s *Sport) Scan(value interface{}) error {
	var name string
	switch v := value.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	default:
		return fmt.Errorf("unsupported sport column type %T", value)
	}
	v, ok := sportsByName[name]
	if !ok {
		return fmt.Errorf("unknown sport name: %s", name)
	}
	*s = v
	return nil
}
