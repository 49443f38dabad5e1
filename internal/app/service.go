package app

import (
	"cratescope/internal/adapters"
	"cratescope/internal/ports"
)

// Service wires the domain core to its external collaborators.
type Service struct {
	Metadata   ports.MetadataPort
	RuleLoader adapters.RulesFileAdapter
}

func NewService() Service {
	return Service{
		Metadata:   adapters.NewCargoMetadataAdapter(),
		RuleLoader: adapters.NewRulesFileAdapter(),
	}
}
