package services

import (
	"io"
	"log/slog"

	"municipal-budget/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// permissiveMetrics accepts any metric call. Tests that care about a specific
// metric add their own expectation before this one.
func permissiveMetrics(ctrl *gomock.Controller) *service_mocks.MockMetricsRecorderInterface {
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().AddCounter(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return metrics
}
