//go:build unit

package inspection_test

import (
	"math/rand"
	"testing"

	"rugboost-api/internal/domain/inspection"
	"rugboost-api/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustService(t *testing.T, name string, qty, price float64) inspection.Service {
	t.Helper()
	s, err := inspection.NewService(name, name, qty, price, "")
	require.NoError(t, err)
	return s
}

func TestCategorize(t *testing.T) {
	table := inspection.DefaultTable()

	cases := []struct {
		name string
		want inspection.Category
	}{
		{name: "Deep Cleaning", want: inspection.CategoryRequired},
		{name: "Full Immersion Wash", want: inspection.CategoryRequired},
		{name: "Urine Decontamination", want: inspection.CategoryRequired},
		{name: "Spot STAIN Removal", want: inspection.CategoryRequired},
		{name: "Fringe Repair", want: inspection.CategoryRecommended},
		{name: "Binding Repair", want: inspection.CategoryRecommended},
		{name: "Fringe Cleaning", want: inspection.CategoryRequired},
		{name: "Scotchgard Protection", want: inspection.CategoryPreventative},
		{name: "Stain Protection", want: inspection.CategoryPreventative},
		{name: "Moth Treatment", want: inspection.CategoryPreventative},
		{name: "Rug Pad", want: inspection.CategoryPreventative},
		{name: "Pickup & Delivery", want: inspection.CategoryRecommended},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, table.Categorize(tc.name))
		})
	}

	assert.False(t, table.Matched("Pickup & Delivery"))
	assert.True(t, table.Matched("Deep Cleaning"))
}

func TestLoadTable(t *testing.T) {
	t.Run("custom default category", func(t *testing.T) {
		table, err := inspection.LoadTable([]byte(`
default: required
categories:
  - name: preventative
    keywords: [guard]
`))
		require.NoError(t, err)
		assert.Equal(t, inspection.CategoryPreventative, table.Categorize("Fiber Guard"))
		assert.Equal(t, inspection.CategoryRequired, table.Categorize("Anything Else"))
	})

	t.Run("invalid documents", func(t *testing.T) {
		docs := map[string]string{
			"bad yaml":         "default: [",
			"unknown default":  "default: optional\ncategories:\n  - name: required\n    keywords: [x]\n",
			"unknown category": "default: required\ncategories:\n  - name: luxury\n    keywords: [x]\n",
			"no categories":    "default: required\n",
		}
		for name, doc := range docs {
			t.Run(name, func(t *testing.T) {
				_, err := inspection.LoadTable([]byte(doc))
				assert.Error(t, err)
			})
		}
	})
}

func TestRollupExample(t *testing.T) {
	table := inspection.DefaultTable()
	services := []inspection.Service{
		mustService(t, "Deep Cleaning", 1, 640),
		mustService(t, "Fringe Repair", 1, 180),
		mustService(t, "Scotchgard Protection", 1, 230),
	}

	t.Run("all tiers accepted", func(t *testing.T) {
		got := table.Rollup(services, inspection.AcceptAll())
		want := inspection.Totals{
			RequiredCents:     64000,
			RecommendedCents:  18000,
			PreventativeCents: 23000,
			GrandCents:        105000,
			FinalCents:        105000,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Totals mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "$640.00", inspection.FormatCents(got.RequiredCents))
		assert.Equal(t, "$1,050.00", inspection.FormatCents(got.FinalCents))
	})

	t.Run("toggles exclude optional tiers independently", func(t *testing.T) {
		cases := []struct {
			name string
			acc  inspection.Acceptance
			want int64
		}{
			{name: "none", acc: inspection.Acceptance{}, want: 64000},
			{name: "recommended only", acc: inspection.Acceptance{Recommended: true}, want: 82000},
			{name: "preventative only", acc: inspection.Acceptance{Preventative: true}, want: 87000},
			{name: "both", acc: inspection.AcceptAll(), want: 105000},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got := table.Rollup(services, tc.acc)
				assert.Equal(t, tc.want, got.FinalCents)
				assert.Equal(t, int64(105000), got.GrandCents)
			})
		}
	})
}

func TestRollupIsTotalPreserving(t *testing.T) {
	table := inspection.DefaultTable()
	names := []string{
		"Deep Cleaning", "Fringe Repair", "Scotchgard Protection", "Odor Treatment",
		"Moth Proofing", "Delivery", "Binding Repair", "Rug Pad", "Hand Wash",
	}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := rng.Intn(12)
		services := make([]inspection.Service, 0, n)
		for j := 0; j < n; j++ {
			qty := float64(rng.Intn(40)) / 4
			price := float64(rng.Intn(100000)) / 100
			services = append(services, mustService(t, names[rng.Intn(len(names))], qty, price))
		}

		got := table.Rollup(services, inspection.AcceptAll())
		require.Equal(t, inspection.SumCents(services), got.RequiredCents+got.RecommendedCents+got.PreventativeCents)
		require.Equal(t, got.GrandCents, got.FinalCents)
	}
}

func TestNewService(t *testing.T) {
	s, err := inspection.NewService("s1", "  Hand Wash ", 2.5, 19.99, "high")
	require.NoError(t, err)
	assert.Equal(t, "Hand Wash", s.Name)
	assert.Equal(t, int64(1999), s.UnitPriceCents)
	assert.Equal(t, int64(4998), s.LineTotalCents())

	_, err = inspection.NewService("s2", "", 1, 1, "")
	assert.ErrorIs(t, err, inspection.ErrInvalidService)
	_, err = inspection.NewService("s3", "Wash", -1, 1, "")
	assert.ErrorIs(t, err, inspection.ErrInvalidService)
	_, err = inspection.NewService("s4", "Wash", 1, -0.01, "")
	assert.ErrorIs(t, err, inspection.ErrInvalidService)
}

func TestConditionSummary(t *testing.T) {
	cases := []struct {
		name     string
		services []string
		want     string
	}{
		{
			name:     "no findings",
			services: []string{"Deep Cleaning"},
			want:     "Standard cleaning and care recommended based on material type and general condition.",
		},
		{
			name:     "all findings in fixed order",
			services: []string{"Scotchgard Protection", "Fringe Repair", "Urine Treatment", "Stain Removal"},
			want:     "Assessment indicates visible staining, odor contamination, structural concerns, fiber vulnerability. Services outlined below address identified conditions.",
		},
		{
			name:     "fringe counts as structural",
			services: []string{"Fringe Cleaning"},
			want:     "Assessment indicates structural concerns. Services outlined below address identified conditions.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var services []inspection.Service
			for _, n := range tc.services {
				services = append(services, mustService(t, n, 1, 1))
			}
			assert.Equal(t, tc.want, inspection.ConditionSummary(services))
		})
	}
}

func TestBuildReport(t *testing.T) {
	table := inspection.DefaultTable()
	rugA := inspection.Rug{
		ID:        "rug-a",
		RugNumber: "R-001",
		RugType:   "Persian",
		Length:    ptr.Of(8.0),
		Width:     ptr.Of(10.5),
		PhotoURLs: []string{"a/1.jpg", "a/2.jpg", "a/3.jpg", "a/4.jpg", "a/5.jpg", "a/6.jpg"},
		Services: []inspection.Service{
			mustService(t, "Deep Cleaning", 1, 640),
			mustService(t, "Fringe Repair", 1, 180),
		},
	}
	rugB := inspection.Rug{
		ID:        "rug-b",
		RugNumber: "R-002",
		RugType:   "Kilim",
		Services: []inspection.Service{
			mustService(t, "Scotchgard Protection", 1, 230),
		},
	}

	rep := table.BuildReport(inspection.ReportInput{
		JobNumber:  "J-100",
		ClientName: "Dana",
		Rugs:       []inspection.Rug{rugA, rugB},
		Acceptance: inspection.Acceptance{Recommended: true},
	})

	assert.Equal(t, "Professional Rug Care", rep.Header.BusinessName)
	assert.Contains(t, rep.Header.Introduction, "your 2 rugs.")
	require.Len(t, rep.Rugs, 2)

	a := rep.Rugs[0]
	assert.Equal(t, "8' × 10.5'", a.Dimensions)
	assert.Len(t, a.PhotoPreview, 4)
	assert.Equal(t, 2, a.ExtraPhotoCount)
	assert.Equal(t, int64(64000), a.Totals.RequiredCents)
	assert.Len(t, a.Services.Recommended, 1)

	b := rep.Rugs[1]
	assert.Equal(t, "Dimensions TBD", b.Dimensions)
	assert.Equal(t, 0, b.ExtraPhotoCount)

	assert.Equal(t, int64(105000), rep.Totals.GrandCents)
	assert.Equal(t, int64(82000), rep.Totals.FinalCents)

	assert.Empty(t, a.Uncategorized)

	flagged := table.BuildReport(inspection.ReportInput{Rugs: []inspection.Rug{{
		RugNumber: "R-003",
		Services: []inspection.Service{
			mustService(t, "Deep Cleaning", 1, 100),
			mustService(t, "Pickup & Delivery", 1, 50),
		},
	}}})
	assert.Equal(t, []string{"Pickup & Delivery"}, flagged.Rugs[0].Uncategorized)
	assert.Equal(t, int64(5000), flagged.Rugs[0].Totals.RecommendedCents)

	single := table.BuildReport(inspection.ReportInput{BusinessName: "Oriental Care", Rugs: []inspection.Rug{rugB}})
	assert.Equal(t, "Oriental Care", single.Header.BusinessName)
	assert.Contains(t, single.Header.Introduction, "your rug.")
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.00", inspection.FormatCents(0))
	assert.Equal(t, "$0.05", inspection.FormatCents(5))
	assert.Equal(t, "$12,345.67", inspection.FormatCents(1234567))
	assert.Equal(t, "-$1.50", inspection.FormatCents(-150))
}
