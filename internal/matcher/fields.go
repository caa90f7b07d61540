package matcher

import "fmt"

// SearchField names one of the textual representations a candidate
// key offers for keyword search.
type SearchField int

const (
	FieldPrivateKey SearchField = iota
	FieldPublicKey
	FieldSha1Fingerprint
	FieldSha256Fingerprint
	FieldSha384Fingerprint
	FieldSha512Fingerprint
)

var fieldNames = map[SearchField]string{
	FieldPrivateKey:        "PrivateKey",
	FieldPublicKey:         "PublicKey",
	FieldSha1Fingerprint:   "Sha1Fingerprint",
	FieldSha256Fingerprint: "Sha256Fingerprint",
	FieldSha384Fingerprint: "Sha384Fingerprint",
	FieldSha512Fingerprint: "Sha512Fingerprint",
}

var fieldsByName = func() map[string]SearchField {
	m := make(map[string]SearchField, len(fieldNames))
	for field, name := range fieldNames {
		m[name] = field
	}
	return m
}()

// String renders the field the way the config file names it.
func (f SearchField) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("SearchField(%d)", int(f))
}

// ParseSearchField resolves one of the config file's field names.
func ParseSearchField(name string) (SearchField, error) {
	if field, ok := fieldsByName[name]; ok {
		return field, nil
	}
	return 0, fmt.Errorf("matcher: unknown search field %q", name)
}

// UnmarshalYAML implements yaml.Unmarshaler so SearchField decodes
// directly from the config file's field names.
func (f *SearchField) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	field, err := ParseSearchField(name)
	if err != nil {
		return err
	}
	*f = field
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f SearchField) MarshalYAML() (any, error) {
	return f.String(), nil
}
