package services

import (
	"context"

	"github.com/xshsama/learntrack/internal/client/models"
)

// ReportService fetches server-computed activity summaries.
type ReportService struct {
	caller Caller
}

func NewReportService(caller Caller) *ReportService {
	return &ReportService{caller: caller}
}

func (r *ReportService) Weekly(ctx context.Context) (*models.WeeklyReport, error) {
	var report models.WeeklyReport
	if err := r.caller.Get(ctx, "/api/reports/weekly", &report); err != nil {
		return nil, err
	}
	return &report, nil
}
