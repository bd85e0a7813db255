package response

import (
	"rugboost-api/internal/domain/inspection"
)

type MoneyResponse struct {
	Cents     int64  `json:"cents"`
	Formatted string `json:"formatted"`
}

func money(cents int64) MoneyResponse {
	return MoneyResponse{Cents: cents, Formatted: inspection.FormatCents(cents)}
}

type TotalsResponse struct {
	Required     MoneyResponse `json:"required"`
	Recommended  MoneyResponse `json:"recommended"`
	Preventative MoneyResponse `json:"preventative"`
	Grand        MoneyResponse `json:"grand"`
	Final        MoneyResponse `json:"final"`
}

func fromTotals(t inspection.Totals) TotalsResponse {
	return TotalsResponse{
		Required:     money(t.RequiredCents),
		Recommended:  money(t.RecommendedCents),
		Preventative: money(t.PreventativeCents),
		Grand:        money(t.GrandCents),
		Final:        money(t.FinalCents),
	}
}

type ServiceLineResponse struct {
	ID        string        `json:"id,omitempty"`
	Name      string        `json:"name"`
	Quantity  float64       `json:"quantity"`
	UnitPrice MoneyResponse `json:"unitPrice"`
	LineTotal MoneyResponse `json:"lineTotal"`
	Priority  string        `json:"priority,omitempty"`
}

type GroupedServicesResponse struct {
	Required     []ServiceLineResponse `json:"required"`
	Recommended  []ServiceLineResponse `json:"recommended"`
	Preventative []ServiceLineResponse `json:"preventative"`
}

func fromServices(services []inspection.Service) []ServiceLineResponse {
	res := make([]ServiceLineResponse, len(services))
	for i, s := range services {
		res[i] = ServiceLineResponse{
			ID:        s.ID,
			Name:      s.Name,
			Quantity:  s.Quantity,
			UnitPrice: money(s.UnitPriceCents),
			LineTotal: money(s.LineTotalCents()),
			Priority:  s.Priority,
		}
	}
	return res
}

type RugAssessmentResponse struct {
	ID               string                  `json:"id,omitempty"`
	RugNumber        string                  `json:"rugNumber"`
	RugType          string                  `json:"rugType"`
	Dimensions       string                  `json:"dimensions"`
	ConditionSummary string                  `json:"conditionSummary"`
	AnalysisReport   *string                 `json:"analysisReport,omitempty"`
	Services         GroupedServicesResponse `json:"services"`
	Uncategorized    []string                `json:"uncategorizedServices"`
	Totals           TotalsResponse          `json:"totals"`
	PhotoPreview     []string                `json:"photoPreview"`
	ExtraPhotoCount  int                     `json:"extraPhotoCount"`
}

type InspectionReportResponse struct {
	BusinessName       string                  `json:"businessName"`
	JobNumber          string                  `json:"jobNumber"`
	ClientName         string                  `json:"clientName"`
	Introduction       string                  `json:"introduction"`
	Rugs               []RugAssessmentResponse `json:"rugs"`
	Totals             TotalsResponse          `json:"totals"`
	AcceptRecommended  bool                    `json:"acceptRecommended"`
	AcceptPreventative bool                    `json:"acceptPreventative"`
}

func FromInspectionReport(r *inspection.Report) *InspectionReportResponse {
	rugs := make([]RugAssessmentResponse, len(r.Rugs))
	for i, a := range r.Rugs {
		preview := a.PhotoPreview
		if preview == nil {
			preview = []string{}
		}
		uncategorized := a.Uncategorized
		if uncategorized == nil {
			uncategorized = []string{}
		}
		rugs[i] = RugAssessmentResponse{
			ID:               a.Rug.ID,
			RugNumber:        a.Rug.RugNumber,
			RugType:          a.Rug.RugType,
			Dimensions:       a.Dimensions,
			ConditionSummary: a.ConditionSummary,
			AnalysisReport:   a.Rug.AnalysisReport,
			Services: GroupedServicesResponse{
				Required:     fromServices(a.Services.Required),
				Recommended:  fromServices(a.Services.Recommended),
				Preventative: fromServices(a.Services.Preventative),
			},
			Uncategorized:   uncategorized,
			Totals:          fromTotals(a.Totals),
			PhotoPreview:    preview,
			ExtraPhotoCount: a.ExtraPhotoCount,
		}
	}
	return &InspectionReportResponse{
		BusinessName:       r.Header.BusinessName,
		JobNumber:          r.Header.JobNumber,
		ClientName:         r.Header.ClientName,
		Introduction:       r.Header.Introduction,
		Rugs:               rugs,
		Totals:             fromTotals(r.Totals),
		AcceptRecommended:  r.Acceptance.Recommended,
		AcceptPreventative: r.Acceptance.Preventative,
	}
}
