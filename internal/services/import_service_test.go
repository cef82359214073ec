package services

import (
	"context"
	"errors"
	"testing"

	"municipal-budget/internal/models"
	"municipal-budget/internal/repositories/repository_mocks"
	"municipal-budget/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ImportServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *repository_mocks.MockBudgetRepositoryInterface
	notifier *service_mocks.MockImportNotifierInterface
	metrics  *service_mocks.MockMetricsRecorderInterface
	service  ImportServiceInterface
}

func TestImportServiceSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}

func (s *ImportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.notifier = service_mocks.NewMockImportNotifierInterface(s.ctrl)
	s.metrics = permissiveMetrics(s.ctrl)
	s.service = NewImportService(s.repo, s.notifier, s.metrics, discardLogger())
}

func (s *ImportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ImportServiceTestSuite) TestImportCSV_WritesAcceptedRowsOnce() {
	content := "Ward,Year,Category,Amount\nZONE 2,2024,Roads,$1,200\nZONE 1,2024,Lights,300\nZONE 1,2024,Roads,bad\n"

	var written []models.BudgetRecord
	s.repo.EXPECT().
		CreateBatch(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, records []models.BudgetRecord) error {
			written = records
			return nil
		}).
		Times(1)
	s.notifier.EXPECT().
		PublishBudgetImported(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.BudgetImportedEvent) error {
			s.Equal(2, event.Imported)
			s.Equal([]string{"ZONE 1", "ZONE 2"}, event.Accounts)
			s.False(event.ImportedAt.IsZero())
			return nil
		})

	imported, err := s.service.ImportCSV(context.Background(), content)

	s.Require().NoError(err)
	s.Equal(2, imported)
	s.Require().Len(written, 2)
	s.Equal("ZONE 2", written[0].Account)
	s.True(decimal.NewFromInt(1200).Equal(written[0].UsedAmount))
	s.Equal("Lights", written[1].CategoryLabel)
}

func (s *ImportServiceTestSuite) TestImportCSV_NoValidRows() {
	s.repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Times(0)
	s.notifier.EXPECT().PublishBudgetImported(gomock.Any(), gomock.Any()).Times(0)

	imported, err := s.service.ImportCSV(context.Background(), "ward,year,category,amount\nZONE 1,2024,Roads,abc\n")

	s.ErrorIs(err, ErrEmptyImport)
	s.Zero(imported)
}

func (s *ImportServiceTestSuite) TestImportCSV_EmptyContent() {
	s.repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.ImportCSV(context.Background(), "")

	s.ErrorIs(err, ErrEmptyImport)
}

func (s *ImportServiceTestSuite) TestImportCSV_StoreRejectsWrite() {
	pgErr := &pgconn.PgError{
		Code:    "42P01",
		Message: `relation "municipal_budget" does not exist`,
	}
	s.repo.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		Return(errors.Join(errors.New("failed to create budget records"), pgErr))
	s.notifier.EXPECT().PublishBudgetImported(gomock.Any(), gomock.Any()).Times(0)

	imported, err := s.service.ImportCSV(context.Background(), "ward,year,category,amount\nZONE 1,2024,Roads,10\n")

	s.Zero(imported)
	var writeErr *StoreWriteError
	s.Require().ErrorAs(err, &writeErr)
	s.Equal(`relation "municipal_budget" does not exist (SQLSTATE 42P01)`, writeErr.Detail)
	s.ErrorIs(err, pgErr)
}

func (s *ImportServiceTestSuite) TestImportCSV_NotifierFailureDoesNotFailImport() {
	s.repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().
		PublishBudgetImported(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	imported, err := s.service.ImportCSV(context.Background(), "ward,year,category,amount\nZONE 1,2024,Roads,10\n")

	s.NoError(err)
	s.Equal(1, imported)
}

func (s *ImportServiceTestSuite) TestImportCSV_RecordsRowOutcomes() {
	ctrl := gomock.NewController(s.T())
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().AddCounter("import_rows", float64(1), map[string]string{"outcome": "accepted"})
	metrics.EXPECT().AddCounter("import_rows", float64(2), map[string]string{"outcome": "rejected"})
	metrics.EXPECT().IncrementCounter("import_requests", map[string]string{"status": "success"})
	metrics.EXPECT().IncrementCounter("import_events", map[string]string{"status": "published"})
	metrics.EXPECT().RecordProcessingTime("import", gomock.Any())

	s.repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	service := NewImportService(s.repo, nil, metrics, discardLogger())

	imported, err := service.ImportCSV(context.Background(),
		"ward,year,category,amount\nZONE 1,2024,Roads,10\nZONE 1,2024,Roads\nZONE 1,,Roads,5\n")

	s.NoError(err)
	s.Equal(1, imported)
}

func (s *ImportServiceTestSuite) TestDistinctAccounts() {
	records := []models.BudgetRecord{
		{Account: "ZONE 3"},
		{Account: "FIRE"},
		{Account: "ZONE 3"},
	}

	s.Equal([]string{"FIRE", "ZONE 3"}, distinctAccounts(records))
	s.Empty(distinctAccounts(nil))
}
