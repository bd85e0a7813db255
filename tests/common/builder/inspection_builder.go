//go:build unit || e2e

package builder

import (
	reqdto "rugboost-api/internal/handler/dto/request"
)

type InspectionBuilder struct {
	JobNumber    string
	ClientName   string
	BusinessName string
	Rugs         []reqdto.RugRequest
}

func NewInspectionBuilder() *InspectionBuilder {
	length, width := 8.0, 5.0
	return &InspectionBuilder{
		JobNumber:  "JOB-1001",
		ClientName: "Jane Doe",
		Rugs: []reqdto.RugRequest{
			{
				RugNumber: "R1",
				RugType:   "Persian",
				Length:    &length,
				Width:     &width,
				Services: []reqdto.ServiceRequest{
					{Name: "Standard Wash", Quantity: 1, UnitPrice: 120},
					{Name: "Fringe Repair", Quantity: 1, UnitPrice: 85.5},
					{Name: "Moth Treatment", Quantity: 1, UnitPrice: 40},
				},
			},
		},
	}
}

func (i *InspectionBuilder) With(mutate func(*InspectionBuilder)) *InspectionBuilder {
	mutate(i)
	return i
}

func (i *InspectionBuilder) BuildRequest() reqdto.InspectionReportRequest {
	return reqdto.InspectionReportRequest{
		JobNumber:    i.JobNumber,
		ClientName:   i.ClientName,
		BusinessName: i.BusinessName,
		Rugs:         i.Rugs,
	}
}
