package entities

import (
	"encoding/json"
	"fmt"
)

// Configuration is a product configuration managed by the quotation platform.
//
// The platform owns and mutates these records; this service only reads them.
// Payload keeps the full configurator document because the render service
// expects it verbatim inside the job request.

type Configuration struct {
	ID                   string          `json:"id"`
	ConfigurationModelID string          `json:"configurationModelId"`
	Code                 string          `json:"code"`
	Payload              json.RawMessage `json:"-"`
}

// DrawingFileName is the deterministic name of the generated drawing for this
// configuration. Reconciliation searches for exactly this name, so the
// callback side must store its output under the same derivation.
func (c Configuration) DrawingFileName() string {
	return fmt.Sprintf("%s.pdf", c.Code)
}
