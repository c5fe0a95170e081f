package hexfmt

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Blob is a byte slice that travels as hex text in JSON and as raw bytes in
// SQL databases. Encoding uses the default format; decoding accepts either
// digit case.
type Blob []byte

// String returns the blob in the default lowercase format.
func (b Blob) String() string {
	s, err := Default.FormatBytes(b)
	if err != nil {
		// Only reachable when the slice itself is too large to format.
		panic(err)
	}
	return s
}

// MarshalJSON implements the json.Marshaler interface, encoding the blob as
// a hex string.
func (b Blob) MarshalJSON() ([]byte, error) {
	s, err := Default.FormatBytes(b)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements the json.Unmarshaler interface. Accepts a hex
// string in either case.
func (b *Blob) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal Blob: expected a hex string")
	}
	parsed, err := Default.ParseBytes(s)
	if err != nil {
		return fmt.Errorf("failed to parse hex string: %w", err)
	}
	*b = parsed
	return nil
}

// Value implements the driver.Valuer interface for SQL database support.
// Returns the raw bytes for storage as a BLOB/BYTEA column.
func (b Blob) Value() (driver.Value, error) {
	return []byte(b), nil
}

// Scan implements the sql.Scanner interface for SQL database support.
// Accepts raw bytes or a hex string.
func (b *Blob) Scan(value interface{}) error {
	if value == nil {
		*b = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		*b = out
		return nil
	case string:
		parsed, err := Default.ParseBytes(v)
		if err != nil {
			return fmt.Errorf("failed to scan hex string: %w", err)
		}
		*b = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into Blob", value)
	}
}
