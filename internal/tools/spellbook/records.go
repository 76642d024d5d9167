package spellbook

import (
	"time"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/storage"
)

// toStorageCatalog flattens a report into storage records. Unit positions
// follow unit sheet order and spell positions follow declaration order.
func toStorageCatalog(report Report, now time.Time) storage.Catalog {
	catalog := storage.Catalog{GeneratedAt: now}
	for i, u := range report.Units {
		catalog.Units = append(catalog.Units, storage.UnitRecord{
			Name:        u.Name,
			Position:    i,
			Tier:        u.Tier,
			Multiplier:  u.Multiplier,
			Modes:       u.Modes,
			Used:        u.Used,
			UnusedModes: u.UnusedModes,
			InputUses:   u.InputUses,
			OutputUses:  u.OutputUses,
		})
	}

	position := 0
	for setIndex, set := range report.Sets {
		for _, s := range set.Spells {
			catalog.Spells = append(catalog.Spells, storage.SpellRecord{
				Position:    position,
				Name:        s.Name,
				SetName:     set.Name,
				SetIndex:    setIndex,
				Tier:        s.Tier,
				PowerBoost:  s.PowerBoost,
				Flavor:      s.Flavor,
				InputUnit:   s.InputUnit,
				InputMode:   s.InputMode,
				InputCount:  s.InputCount,
				InputText:   s.InputText,
				OutputUnit:  s.OutputUnit,
				OutputMode:  s.OutputMode,
				OutputCount: s.OutputCount,
				OutputText:  s.OutputText,
				Ratio:       s.Ratio,
			})
			position++
		}
	}
	return catalog
}
