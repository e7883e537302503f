package config

import (
	"fmt"
	"io"
	"strings"
)

// Encode the record as canonical 'key = value' lines in schema order.
// Re-parsing the output yields a record identical to this one.
func (c *TrainingConfig) Encode(w io.Writer) error {
	for _, field := range c.Fields() {
		if _, err := fmt.Fprintf(w, "%s = %s\n", field.Key, field.Value); err != nil {
			return err
		}
	}
	return nil
}

func (c *TrainingConfig) String() string {
	var sb strings.Builder
	c.Encode(&sb)
	return sb.String()
}
