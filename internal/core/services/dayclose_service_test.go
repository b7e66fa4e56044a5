package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DayCloseServiceTestSuite struct {
	suite.Suite
	repo  *MockDayCloseRepository
	svc   portssvc.DayCloseSvc
	tx    *fakeTx
	ctx   context.Context
	now   time.Time
	day   time.Time
	start time.Time
	end   time.Time
}

func (s *DayCloseServiceTestSuite) SetupTest() {
	s.repo = new(MockDayCloseRepository)
	s.tx = &fakeTx{}
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 5, 16, 0, 0, 0, time.UTC) // 21:30 in the shop
	s.day = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	s.start = time.Date(2024, 3, 5, 0, 0, 0, 0, ist)
	s.end = time.Date(2024, 3, 6, 0, 0, 0, 0, ist)
	s.svc = services.NewDayCloseService(s.repo, ist, services.WithDayCloseClock(func() time.Time { return s.now }))
}

func openDay() *domain.DaySummary {
	return &domain.DaySummary{
		CashTotal:    d("1000"),
		UPITotal:     d("500"),
		CardTotal:    d("250"),
		CreditTotal:  d("250"),
		GrandTotal:   d("2000"),
		InvoiceCount: 3,
		CGSTTotal:    d("40"),
		SGSTTotal:    d("40"),
	}
}

func (s *DayCloseServiceTestSuite) TestSummarizeDay_ComputesAverage() {
	s.repo.On("SummarizeDay", mock.Anything, s.start, s.start, s.end).Return(openDay(), nil).Once()

	summary, err := s.svc.SummarizeDay(s.ctx, s.day)

	s.Require().NoError(err)
	s.True(summary.AvgBill.Equal(d("666.67")))
	s.Equal(s.start, summary.Date)
	s.False(summary.AlreadyClosed)
	s.repo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *DayCloseServiceTestSuite) TestSummarizeDay_NoInvoices() {
	s.repo.On("SummarizeDay", mock.Anything, s.start, s.start, s.end).Return(&domain.DaySummary{}, nil).Once()

	summary, err := s.svc.SummarizeDay(s.ctx, s.day)

	s.Require().NoError(err)
	s.True(summary.AvgBill.IsZero())
}

func (s *DayCloseServiceTestSuite) TestCloseDay_TwiceOnlyFirstSucceeds() {
	s.repo.On("Begin", mock.Anything).Return(s.tx, nil).Twice()
	s.repo.On("Rollback", mock.Anything, s.tx).Return(nil).Twice()
	s.repo.On("LockDayInTx", mock.Anything, s.tx, s.start).Return(nil).Twice()

	closed := openDay()
	closed.AlreadyClosed = true
	s.repo.On("SummarizeDayInTx", mock.Anything, s.tx, s.start, s.start, s.end).Return(openDay(), nil).Once()
	s.repo.On("SummarizeDayInTx", mock.Anything, s.tx, s.start, s.start, s.end).Return(closed, nil).Once()
	s.repo.On("CloseInvoicesInTx", mock.Anything, s.tx, s.start, s.end, s.now).Return(openDay(), nil).Once()
	s.repo.On("SaveDayCloseLogInTx", mock.Anything, s.tx, mock.MatchedBy(func(l domain.DayCloseLog) bool {
		return l.CloseDate.Equal(s.start) && l.GrandTotal.Equal(d("2000")) && l.InvoiceCount == 3 && l.UserID == "manager-1"
	})).Return(nil).Once()
	s.repo.On("Commit", mock.Anything, s.tx).Return(nil).Once()

	first, err := s.svc.CloseDay(s.ctx, s.day, "manager-1")
	s.Require().NoError(err)
	s.True(first.CashTotal.Equal(d("1000")))

	_, err = s.svc.CloseDay(s.ctx, s.day, "manager-1")
	s.ErrorIs(err, apperrors.ErrAlreadySatisfied)

	s.repo.AssertNumberOfCalls(s.T(), "SaveDayCloseLogInTx", 1)
	s.repo.AssertNumberOfCalls(s.T(), "CloseInvoicesInTx", 1)
	s.repo.AssertNumberOfCalls(s.T(), "Commit", 1)
}

func (s *DayCloseServiceTestSuite) TestCloseDay_UniqueDateRaceIsAlreadySatisfied() {
	s.repo.On("Begin", mock.Anything).Return(s.tx, nil).Once()
	s.repo.On("Rollback", mock.Anything, s.tx).Return(nil).Once()
	s.repo.On("LockDayInTx", mock.Anything, s.tx, s.start).Return(nil).Once()
	s.repo.On("SummarizeDayInTx", mock.Anything, s.tx, s.start, s.start, s.end).Return(openDay(), nil).Once()
	s.repo.On("CloseInvoicesInTx", mock.Anything, s.tx, s.start, s.end, s.now).Return(openDay(), nil).Once()
	s.repo.On("SaveDayCloseLogInTx", mock.Anything, s.tx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := s.svc.CloseDay(s.ctx, s.day, "manager-1")

	s.ErrorIs(err, apperrors.ErrAlreadySatisfied)
	s.repo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *DayCloseServiceTestSuite) TestCloseDay_FutureDate() {
	_, err := s.svc.CloseDay(s.ctx, s.day.AddDate(0, 0, 1), "manager-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.repo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *DayCloseServiceTestSuite) TestCloseDay_MarkFailureRollsBack() {
	s.repo.On("Begin", mock.Anything).Return(s.tx, nil).Once()
	s.repo.On("Rollback", mock.Anything, s.tx).Return(nil).Once()
	s.repo.On("LockDayInTx", mock.Anything, s.tx, s.start).Return(nil).Once()
	s.repo.On("SummarizeDayInTx", mock.Anything, s.tx, s.start, s.start, s.end).Return(openDay(), nil).Once()
	s.repo.On("CloseInvoicesInTx", mock.Anything, s.tx, s.start, s.end, s.now).Return(nil, context.DeadlineExceeded).Once()

	_, err := s.svc.CloseDay(s.ctx, s.day, "manager-1")

	s.ErrorIs(err, context.DeadlineExceeded)
	s.repo.AssertNotCalled(s.T(), "SaveDayCloseLogInTx", mock.Anything, mock.Anything, mock.Anything)
	s.repo.AssertCalled(s.T(), "Rollback", mock.Anything, s.tx)
}

func (s *DayCloseServiceTestSuite) TestCloseDay_SnapshotMatchesFlaggedInvoices() {
	s.repo.On("Begin", mock.Anything).Return(s.tx, nil).Once()
	s.repo.On("Rollback", mock.Anything, s.tx).Return(nil).Once()
	s.repo.On("LockDayInTx", mock.Anything, s.tx, s.start).Return(nil).Once()
	s.repo.On("SummarizeDayInTx", mock.Anything, s.tx, s.start, s.start, s.end).Return(openDay(), nil).Once()

	// A cash sale of 300 committed between the check and the flagging.
	flagged := openDay()
	flagged.CashTotal = d("1300")
	flagged.GrandTotal = d("2300")
	flagged.InvoiceCount = 4
	s.repo.On("CloseInvoicesInTx", mock.Anything, s.tx, s.start, s.end, s.now).Return(flagged, nil).Once()
	s.repo.On("SaveDayCloseLogInTx", mock.Anything, s.tx, mock.Anything).Return(nil).Once()
	s.repo.On("Commit", mock.Anything, s.tx).Return(nil).Once()

	closeLog, err := s.svc.CloseDay(s.ctx, s.day, "manager-1")

	s.Require().NoError(err)
	s.Equal(4, closeLog.InvoiceCount)
	s.True(closeLog.CashTotal.Equal(d("1300")))
	s.True(closeLog.GrandTotal.Equal(d("2300")))
	s.repo.AssertExpectations(s.T())
}

func TestDayCloseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DayCloseServiceTestSuite))
}
