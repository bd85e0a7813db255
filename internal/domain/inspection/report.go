package inspection

import (
	"fmt"
	"strconv"
)

const (
	// DefaultBusinessName brands reports for businesses without a profile name.
	DefaultBusinessName = "Professional Rug Care"
	photoPreviewLimit   = 4
)

type ReportInput struct {
	JobNumber    string
	ClientName   string
	BusinessName string
	Rugs         []Rug
	Acceptance   Acceptance
}

type ReportHeader struct {
	BusinessName string
	JobNumber    string
	ClientName   string
	Introduction string
}

type RugAssessment struct {
	Rug              Rug
	Dimensions       string
	ConditionSummary string
	Services         Grouped
	// Uncategorized names the services no keyword matched. They were placed
	// in the table's default category and may need a staff review.
	Uncategorized    []string
	Totals           Totals
	PhotoPreview     []string
	ExtraPhotoCount  int
}

type Report struct {
	Header ReportHeader
	Rugs   []RugAssessment
	// Totals aggregate every service across all rugs.
	Totals     Totals
	Acceptance Acceptance
}

// BuildReport assembles the client-facing inspection report.
func (t *Table) BuildReport(in ReportInput) Report {
	business := in.BusinessName
	if business == "" {
		business = DefaultBusinessName
	}

	rep := Report{
		Header: ReportHeader{
			BusinessName: business,
			JobNumber:    in.JobNumber,
			ClientName:   in.ClientName,
			Introduction: introduction(len(in.Rugs)),
		},
		Rugs:       make([]RugAssessment, 0, len(in.Rugs)),
		Acceptance: in.Acceptance,
	}

	var all []Service
	for _, rug := range in.Rugs {
		grouped := t.Group(rug.Services)
		preview, extra := photoPreview(rug.PhotoURLs)
		rep.Rugs = append(rep.Rugs, RugAssessment{
			Rug:              rug,
			Dimensions:       Dimensions(rug.Length, rug.Width),
			ConditionSummary: ConditionSummary(rug.Services),
			Services:         grouped,
			Uncategorized:    t.uncategorized(rug.Services),
			Totals:           RollupGrouped(grouped, in.Acceptance),
			PhotoPreview:     preview,
			ExtraPhotoCount:  extra,
		})
		all = append(all, rug.Services...)
	}
	rep.Totals = t.Rollup(all, in.Acceptance)
	return rep
}

// Dimensions renders "L' × W'" or "Dimensions TBD" when either side is unknown.
func Dimensions(length, width *float64) string {
	if length == nil || width == nil || *length == 0 || *width == 0 {
		return "Dimensions TBD"
	}
	return fmt.Sprintf("%s' × %s'", formatFeet(*length), formatFeet(*width))
}

func formatFeet(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func introduction(rugCount int) string {
	subject := "rug"
	if rugCount != 1 {
		subject = fmt.Sprintf("%d rugs", rugCount)
	}
	return fmt.Sprintf(
		"This report outlines the services required to safely clean and preserve your %s. "+
			"All recommendations are based on observed condition, material characteristics, and established industry protocols.",
		subject,
	)
}

func (t *Table) uncategorized(services []Service) []string {
	var names []string
	for _, s := range services {
		if !t.Matched(s.Name) {
			names = append(names, s.Name)
		}
	}
	return names
}

func photoPreview(urls []string) ([]string, int) {
	if len(urls) <= photoPreviewLimit {
		return urls, 0
	}
	return urls[:photoPreviewLimit], len(urls) - photoPreviewLimit
}
