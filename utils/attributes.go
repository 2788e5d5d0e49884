package utils

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// AttributeMap is a loosely typed set of attributes, typically decoded from JSON.
type AttributeMap map[string]interface{}

// Has returns whether the attribute is set.
func (am AttributeMap) Has(name string) bool {
	_, has := am[name]
	return has
}

// String returns the named string attribute, or "" if it is not set.
func (am AttributeMap) String(name string) (string, error) {
	x, has := am[name]
	if !has || x == nil {
		return "", nil
	}
	s, err := AssertType[string](x)
	if err != nil {
		return "", errors.Wrapf(err, "attribute %q", name)
	}
	return s, nil
}

// Decode decodes the attributes into out by json tag. Embedded structs are squashed and
// numeric strings are accepted for numeric fields. Unknown attributes are an error.
func (am AttributeMap) Decode(out interface{}) error {
	if len(am) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		Squash:           true,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return errors.Wrap(decoder.Decode(map[string]interface{}(am)), "cannot decode attributes")
}
