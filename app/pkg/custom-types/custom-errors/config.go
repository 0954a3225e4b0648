package customerrors

import (
	"fmt"
)

type ConfigError struct {
	field string
	msg   string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("Config Error: %s - %s", e.field, e.msg)
}

func (e ConfigError) Field() string {
	return e.field
}

func MakeConfigError(field, msg string) error {
	return ConfigError{field, msg}
}
