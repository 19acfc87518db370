package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is a list of free-form labels stored as a jsonb column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	return json.Marshal(t)
}

func (t *Tags) Scan(value any) error {
	if value == nil {
		*t = Tags{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}
}
