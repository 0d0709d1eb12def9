package cf

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// periodicDoc is the YAML mapping form of a periodic value.
type periodicDoc struct {
	Prefix []int64 `yaml:"prefix,omitempty,flow"`
	Period []int64 `yaml:"period,flow"`
}

// MarshalYAML implements yaml.Marshaler.
//
// A finite value is written as its text form. A periodic value is written as
// a mapping with prefix and period sequences, which UnmarshalYAML reads back
// exactly, unlike the text form.
func (c *ContinuedFraction) MarshalYAML() (interface{}, error) {
	if c.IsFinite() {
		return c.String(), nil
	}

	return periodicDoc{Prefix: c.prefix, Period: c.period}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Accepted forms:
//
//	x: 7                          # an integer
//	x: "[3; 7; 16]"               # the text form
//	x: [3, 7, 16]                 # a term sequence
//	x: {prefix: [1], period: [2]} # a periodic value
//
// On error c is unchanged.
func (c *ContinuedFraction) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if v, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
			c.SetTerms(v)
			return nil
		}
		_, err := c.SetString(node.Value)

		return err

	case yaml.SequenceNode:
		var terms []int64
		if err := node.Decode(&terms); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidFormat, node.Line, err)
		}
		c.SetTerms(terms...)

		return nil

	case yaml.MappingNode:
		var doc periodicDoc
		if err := node.Decode(&doc); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidFormat, node.Line, err)
		}
		c.assign(doc.Prefix, doc.Period)

		return nil

	default:
		return fmt.Errorf("%w: line %d: unsupported YAML node", ErrInvalidFormat, node.Line)
	}
}
