/*
Package closingperiod Application Layer - Closing period use cases
*/
package closingperiod

import (
	"context"

	"bakery/application"
	"bakery/domain/closingperiod"
	"bakery/domain/shared"
	"bakery/domain/user"
	"bakery/pkg/logger"

	"go.uber.org/zap"
)

// ClosingPeriodRequest 日期格式为 YYYY-MM-DD
type ClosingPeriodRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ClosingPeriodResponse 关闭期间返回模型
type ClosingPeriodResponse struct {
	ID        int64  `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ApplicationService Closing period application service
type ApplicationService struct {
	closingPeriodRepo closingperiod.Repository
}

// NewApplicationService Create closing period application service
func NewApplicationService(closingPeriodRepo closingperiod.Repository) *ApplicationService {
	return &ApplicationService{closingPeriodRepo: closingPeriodRepo}
}

func toCommand(req ClosingPeriodRequest) (closingperiod.Command, error) {
	var cmd closingperiod.Command
	var err error
	if req.StartDate != "" {
		if cmd.StartDate, err = shared.ParseDateWithTimeAtNoonUTC(req.StartDate); err != nil {
			return cmd, closingperiod.NewInvalidClosingPeriodError("startDate", "Date "+req.StartDate+" is invalid")
		}
	}
	if req.EndDate != "" {
		if cmd.EndDate, err = shared.ParseDateWithTimeAtNoonUTC(req.EndDate); err != nil {
			return cmd, closingperiod.NewInvalidClosingPeriodError("endDate", "Date "+req.EndDate+" is invalid")
		}
	}
	return cmd, nil
}

// AddNewClosingPeriod validates and stores a closing period, returns its id.
func (s *ApplicationService) AddNewClosingPeriod(ctx context.Context, u *user.User, req ClosingPeriodRequest) (int64, error) {
	if err := application.RequireAdmin(ctx, u, "AddNewClosingPeriod"); err != nil {
		return 0, err
	}

	cmd, err := toCommand(req)
	if err != nil {
		return 0, err
	}
	c, err := closingperiod.New(cmd)
	if err != nil {
		return 0, err
	}
	id, err := s.closingPeriodRepo.Save(ctx, c)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info("Closing period created",
		zap.Int64("closing_period_id", id),
		zap.String("start_date", shared.DateAsISOStringWithoutTime(c.StartDate())),
		zap.String("end_date", shared.DateAsISOStringWithoutTime(c.EndDate())))
	return id, nil
}

// DeleteClosingPeriod removes the closing period.
func (s *ApplicationService) DeleteClosingPeriod(ctx context.Context, u *user.User, id int64) error {
	if err := application.RequireAdmin(ctx, u, "DeleteClosingPeriod"); err != nil {
		return err
	}

	existing, err := s.closingPeriodRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.closingPeriodRepo.Delete(ctx, existing); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Closing period deleted", zap.Int64("closing_period_id", id))
	return nil
}

// GetClosingPeriods is public: the order form needs it.
func (s *ApplicationService) GetClosingPeriods(ctx context.Context) ([]*ClosingPeriodResponse, error) {
	periods, err := s.closingPeriodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*ClosingPeriodResponse, len(periods))
	for i, c := range periods {
		responses[i] = &ClosingPeriodResponse{
			ID:        c.ID(),
			StartDate: shared.DateAsISOStringWithoutTime(c.StartDate()),
			EndDate:   shared.DateAsISOStringWithoutTime(c.EndDate()),
		}
	}
	return responses, nil
}
