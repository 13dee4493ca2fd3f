package fault

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a failure. The set of kinds is closed: new kinds are added
// here and nowhere else.
type Kind uint8

const (
	// Database covers every persistence-layer failure, including identifiers
	// that cannot be converted to the database's identifier format.
	// Database failures are transient and may be retried.
	Database Kind = iota

	// SourceFormat indicates a source record failed shape validation.
	SourceFormat

	// TargetFormat indicates a target record failed shape validation.
	TargetFormat

	// ResponseFormat indicates a response record failed shape validation.
	ResponseFormat

	// MappingFormat indicates a mapping template or its payload could not be
	// rendered.
	MappingFormat

	kindCount
)

var kindNames = [kindCount]string{
	Database:       "DATABASE",
	SourceFormat:   "SOURCE_FORMAT",
	TargetFormat:   "TARGET_FORMAT",
	ResponseFormat: "RESPONSE_FORMAT",
	MappingFormat:  "MAPPING_FORMAT",
}

// Kinds returns every recognized kind.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the stable name of the kind, e.g. "DATABASE".
func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
	return kindNames[k]
}

// IsValid checks if the kind belongs to the recognized set.
func (k Kind) IsValid() bool {
	return k < kindCount
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("invalid error kind: %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("invalid error kind: %q", string(text))
	}
	*k = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (k Kind) MarshalJSON() ([]byte, error) {
	text, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}
