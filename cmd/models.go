package cmd

import (
	bommodels "team-inventory/feature/bom/models"
	invmodels "team-inventory/feature/inventory/models"
	teammodels "team-inventory/feature/team/models"
)

// Models lists every persisted model, in migration order.
func Models() []any {
	return []any{
		&teammodels.Team{},
		&teammodels.Member{},
		&invmodels.Part{},
		&bommodels.Build{},
		&bommodels.BuildPart{},
	}
}
