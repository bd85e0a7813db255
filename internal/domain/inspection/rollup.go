package inspection

// Acceptance records whether the client takes the optional tiers. Required
// services are always included.
type Acceptance struct {
	Recommended  bool
	Preventative bool
}

func AcceptAll() Acceptance {
	return Acceptance{Recommended: true, Preventative: true}
}

type Totals struct {
	RequiredCents     int64
	RecommendedCents  int64
	PreventativeCents int64
	// GrandCents is the sum over every service regardless of acceptance.
	GrandCents int64
	// FinalCents is what the client pays given the acceptance toggles.
	FinalCents int64
}

func SumCents(services []Service) int64 {
	var total int64
	for _, s := range services {
		total += s.LineTotalCents()
	}
	return total
}

func (t *Table) Rollup(services []Service, acc Acceptance) Totals {
	return RollupGrouped(t.Group(services), acc)
}

func RollupGrouped(g Grouped, acc Acceptance) Totals {
	tot := Totals{
		RequiredCents:     SumCents(g.Required),
		RecommendedCents:  SumCents(g.Recommended),
		PreventativeCents: SumCents(g.Preventative),
	}
	tot.GrandCents = tot.RequiredCents + tot.RecommendedCents + tot.PreventativeCents

	tot.FinalCents = tot.RequiredCents
	if acc.Recommended {
		tot.FinalCents += tot.RecommendedCents
	}
	if acc.Preventative {
		tot.FinalCents += tot.PreventativeCents
	}
	return tot
}
