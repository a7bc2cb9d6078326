package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var exemptionsData []byte

// Endpoint marks a route that may be called without the sharer header.
type Endpoint struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Skip   bool   `json:"skip"`
}

type ExemptionData struct {
	Endpoints []Endpoint `json:"endpoints"`
	Skip      bool       `json:"skip"`
}

func (r *ExemptionData) FindExemption(path, method string) Endpoint {
	idx := slices.IndexFunc(r.Endpoints, func(rp Endpoint) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Endpoint{}
	}

	return r.Endpoints[idx]
}

func Get() *ExemptionData {
	var exemptions ExemptionData

	err := json.Unmarshal(exemptionsData, &exemptions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded identity exemptions")

		return nil
	}

	log.Info().Int("endpoints", len(exemptions.Endpoints)).Msg("Successfully loaded embedded identity exemptions")

	return &exemptions
}
