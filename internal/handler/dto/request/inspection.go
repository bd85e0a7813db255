package request

import (
	"math"

	"rugboost-api/internal/domain/inspection"
	"rugboost-api/internal/pkg/errs"
	"rugboost-api/internal/pkg/ptr"
	"rugboost-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type ServiceRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"gte=0"`
	UnitPrice float64 `json:"unitPrice" binding:"gte=0"`
	Priority  string  `json:"priority"`
}

type RugRequest struct {
	ID             string           `json:"id"`
	RugNumber      string           `json:"rugNumber" binding:"required"`
	RugType        string           `json:"rugType"`
	Length         *float64         `json:"length" binding:"omitempty,gt=0"`
	Width          *float64         `json:"width" binding:"omitempty,gt=0"`
	PhotoURLs      []string         `json:"photoUrls"`
	AnalysisReport *string          `json:"analysisReport"`
	Services       []ServiceRequest `json:"services" binding:"dive"`
}

type InspectionReportRequest struct {
	JobNumber    string       `json:"jobNumber" binding:"required"`
	ClientName   string       `json:"clientName"`
	BusinessName string       `json:"businessName"`
	Rugs         []RugRequest `json:"rugs" binding:"required,min=1,dive"`
	// Both tiers are accepted unless the client opts out.
	AcceptRecommended  *bool `json:"acceptRecommended"`
	AcceptPreventative *bool `json:"acceptPreventative"`
}

func (r *InspectionReportRequest) ToDomain() (inspection.ReportInput, error) {
	rugs := make([]inspection.Rug, len(r.Rugs))
	for i, rr := range r.Rugs {
		services := make([]inspection.Service, len(rr.Services))
		for j, sr := range rr.Services {
			svc, err := inspection.NewService(sr.ID, sr.Name, sr.Quantity, sr.UnitPrice, sr.Priority)
			if err != nil {
				return inspection.ReportInput{}, errs.Wrapf(err, "rug %d service %d", i, j)
			}
			services[j] = svc
		}
		rugs[i] = inspection.Rug{
			ID:             rr.ID,
			RugNumber:      rr.RugNumber,
			RugType:        rr.RugType,
			Length:         rr.Length,
			Width:          rr.Width,
			PhotoURLs:      rr.PhotoURLs,
			AnalysisReport: rr.AnalysisReport,
			Services:       services,
		}
	}

	return inspection.ReportInput{
		JobNumber:    r.JobNumber,
		ClientName:   r.ClientName,
		BusinessName: r.BusinessName,
		Rugs:         rugs,
		Acceptance: inspection.Acceptance{
			Recommended:  ptr.Deref(r.AcceptRecommended, true),
			Preventative: ptr.Deref(r.AcceptPreventative, true),
		},
	}, nil
}

type NotifyClientRequest struct {
	ClientEmail string  `json:"clientEmail" binding:"required"`
	ClientName  string  `json:"clientName"`
	JobNumber   string  `json:"jobNumber" binding:"required"`
	PortalURL   string  `json:"portalUrl" binding:"required,url"`
	RugCount    int     `json:"rugCount" binding:"gte=0"`
	TotalAmount float64 `json:"totalAmount" binding:"gte=0"`
}

func (r *NotifyClientRequest) ToDomain(jobID uuid.UUID) commands.InspectionReadyRequest {
	return commands.InspectionReadyRequest{
		JobID:            jobID,
		ClientEmail:      r.ClientEmail,
		ClientName:       r.ClientName,
		JobNumber:        r.JobNumber,
		PortalURL:        r.PortalURL,
		RugCount:         r.RugCount,
		TotalAmountCents: int64(math.Round(r.TotalAmount * 100)),
	}
}
