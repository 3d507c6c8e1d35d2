package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// NullableString represents a string that can be null
type NullableString struct {
	String string
	IsNull bool
}

// Value implements the driver.Valuer interface for database/sql
func (ns NullableString) Value() (driver.Value, error) {
	if ns.IsNull {
		return nil, nil
	}
	return ns.String, nil
}

// Scan implements the sql.Scanner interface for database/sql
func (ns *NullableString) Scan(value interface{}) error {
	if value == nil {
		ns.String = ""
		ns.IsNull = true
		return nil
	}

	switch v := value.(type) {
	case string:
		ns.String = v
		ns.IsNull = false
		return nil
	case []byte:
		ns.String = string(v)
		ns.IsNull = false
		return nil
	default:
		return fmt.Errorf("cannot scan %T into NullableString", value)
	}
}

// MarshalJSON implements json.Marshaler
func (ns NullableString) MarshalJSON() ([]byte, error) {
	if ns.IsNull {
		return []byte("null"), nil
	}
	return json.Marshal(ns.String)
}

// UnmarshalJSON implements json.Unmarshaler
func (ns *NullableString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		ns.String = ""
		ns.IsNull = true
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	ns.String = str
	ns.IsNull = false
	return nil
}

// NullableTime represents a time.Time that can be null
type NullableTime struct {
	Time   time.Time
	IsNull bool
}

// Value implements the driver.Valuer interface for database/sql
func (nt NullableTime) Value() (driver.Value, error) {
	if nt.IsNull {
		return nil, nil
	}
	return nt.Time, nil
}

// Scan implements the sql.Scanner interface for database/sql
func (nt *NullableTime) Scan(value interface{}) error {
	if value == nil {
		nt.Time = time.Time{}
		nt.IsNull = true
		return nil
	}

	t, ok := value.(time.Time)
	if !ok {
		return fmt.Errorf("cannot scan %T into NullableTime", value)
	}
	nt.Time = t
	nt.IsNull = false
	return nil
}

// MarshalJSON implements json.Marshaler
func (nt NullableTime) MarshalJSON() ([]byte, error) {
	if nt.IsNull {
		return []byte("null"), nil
	}
	return json.Marshal(nt.Time)
}

// UnmarshalJSON implements json.Unmarshaler
func (nt *NullableTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		nt.Time = time.Time{}
		nt.IsNull = true
		return nil
	}

	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	nt.Time = t
	nt.IsNull = false
	return nil
}
