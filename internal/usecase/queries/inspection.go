package queries

import (
	"context"
	"strings"

	"rugboost-api/internal/domain/inspection"
	"rugboost-api/internal/infra"
	"rugboost-api/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=inspection.go -destination=../../../tests/mock/queries/inspection_mock.go -package=queriesmock

type InspectionQueries interface {
	// BuildReport falls back to the requester's profile business name when
	// the input does not carry one.
	BuildReport(ctx context.Context, requesterID uuid.UUID, in inspection.ReportInput) (*inspection.Report, error)
}

type inspectionQueriesImpl struct {
	uow   shared.UnitOfWork
	table *inspection.Table
}

func NewInspectionQueries(uow shared.UnitOfWork, table *inspection.Table) InspectionQueries {
	return &inspectionQueriesImpl{uow: uow, table: table}
}

func (q *inspectionQueriesImpl) BuildReport(ctx context.Context, requesterID uuid.UUID, in inspection.ReportInput) (*inspection.Report, error) {
	if strings.TrimSpace(in.BusinessName) == "" {
		err := q.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
			p, err := tx.Profiles().FindByUserID(ctx, requesterID)
			if err != nil {
				return err
			}
			in.BusinessName = p.DisplayBusinessName()
			return nil
		})
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
	}

	report := q.table.BuildReport(in)
	return &report, nil
}
