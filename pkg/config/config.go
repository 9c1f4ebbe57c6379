package config

import "fmt"

// Shared holds the settings of the listen server built on pkg/socket.
type Shared struct {
	Port    int
	Backlog int
	SSL     bool
	Key     string
	Verbose bool
}

var KeySalt = "x1PqTbdZ8mRj3hyLw0vcg57NOeukAF2s" // overwrite with custom value during release build

// Validate returns all argument errors at once so users can fix them
// in one pass.
func (c *Shared) Validate() []error {
	var errors []error

	if !c.SSL && c.Key != "" {
		errors = append(errors, fmt.Errorf("You must use '--ssl' to use '--key'"))
	}

	if c.Port < 0 || c.Port > 65535 {
		errors = append(errors, fmt.Errorf("'--port' must be in [0, 65535], 0 for an ephemeral port"))
	}

	if c.Backlog < 1 {
		errors = append(errors, fmt.Errorf("'--backlog' must be positive"))
	}

	return errors
}

// GetKey returns the salted shared key, or "" when no key is set.
func (c *Shared) GetKey() string {
	if c.Key == "" {
		return ""
	}

	return KeySalt + c.Key
}
