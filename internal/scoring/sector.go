package scoring

import (
	"strings"

	"github.com/prasetyo/idxquant/internal/contracts"
)

// infraMarkers are name fragments that flag infrastructure plays on the
// IDX even when the provider sector field is unhelpful.
var infraMarkers = []string{
	"infra", "tol", "jalan", "konstruksi", "construction",
	"menara", "tower", "semen", "pelabuhan", "energi", "power",
}

// infraSectors are provider sector/industry values mapped to the
// infrastructure branch.
var infraSectors = []string{
	"utilities", "real estate", "industrials", "construction",
	"infrastructure", "basic materials",
}

// ClassifySector assigns a stock to exactly one scoring branch. Bank wins
// over infrastructure; everything unmatched is general.
func ClassifySector(info contracts.FundamentalInfo) contracts.SectorClass {
	sector := strings.ToLower(info.Sector)
	industry := strings.ToLower(info.Industry)
	name := strings.ToLower(info.Name)

	if strings.Contains(industry, "bank") ||
		strings.Contains(sector, "bank") ||
		strings.Contains(name, "bank") ||
		sector == "financial services" {
		return contracts.SectorBank
	}

	for _, s := range infraSectors {
		if strings.Contains(sector, s) || strings.Contains(industry, s) {
			return contracts.SectorInfra
		}
	}
	for _, m := range infraMarkers {
		if strings.Contains(name, m) {
			return contracts.SectorInfra
		}
	}

	return contracts.SectorGeneral
}
