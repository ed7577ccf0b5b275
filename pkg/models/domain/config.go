package domain

import "fmt"

// ConfigProfile names one workspace from the profile registry: where its
// report database lives and where exported files are written.
type ConfigProfile struct {
	Name      string
	StorePath string
	OutputDir string
}

func (c ConfigProfile) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.StorePath)
}
