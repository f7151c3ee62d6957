package decode

import (
	"fmt"
)

type OptionError struct {
	Option  string
	Section string
	Value   string
}

func (e OptionError) Error() string {
	return fmt.Sprintf("value %s not recognized for option %s in section %s", e.Value, e.Option, e.Section)
}

type DecodeError struct {
	Message string
	File    string
}

func (e DecodeError) Error() string {
	return e.Message
}
