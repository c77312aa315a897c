package get_revenue

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osteosalud/booking-service/internal/domain"
)

func priced(date string, price float64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:     "b-" + date,
		Date:   date,
		Time:   "10:00",
		Price:  price,
		Status: status,
	}
}

func TestBuildReport_MonthlyBuckets(t *testing.T) {
	bookings := []*domain.Booking{
		priced("2025-06-05", 60, domain.StatusConfirmed),
		priced("2025-06-20", 50, domain.StatusConfirmed),
		priced("2025-07-01", 65, domain.StatusConfirmed),
	}

	report, skipped := BuildReport(bookings)

	assert.Zero(t, skipped)
	assert.Equal(t, map[string]float64{"2025-06": 110, "2025-07": 65}, report.Monthly)
	assert.Equal(t, 175.0, report.Total)
}

func TestBuildReport_CancelledExcluded(t *testing.T) {
	bookings := []*domain.Booking{
		priced("2025-06-05", 60, domain.StatusConfirmed),
		priced("2025-06-06", 500, domain.StatusCancelled),
	}

	report, _ := BuildReport(bookings)
	assert.Equal(t, 60.0, report.Total)
	assert.Equal(t, 60.0, report.Monthly["2025-06"])
}

func TestBuildReport_BadPricesCountAsZero(t *testing.T) {
	bookings := []*domain.Booking{
		priced("2025-06-05", -10, domain.StatusConfirmed),
		priced("2025-06-06", math.NaN(), domain.StatusConfirmed),
		priced("2025-06-07", 40, domain.StatusConfirmed),
	}

	report, skipped := BuildReport(bookings)

	// Запись с плохой ценой остается в корзине с нулевым вкладом
	assert.Zero(t, skipped)
	assert.Equal(t, 40.0, report.Total)
	assert.Equal(t, 40.0, report.Monthly["2025-06"])
}

func TestBuildReport_UnreadableDateSkipped(t *testing.T) {
	bookings := []*domain.Booking{
		priced("2025-06-05", 60, domain.StatusConfirmed),
		priced("junk", 60, domain.StatusConfirmed),
	}

	report, skipped := BuildReport(bookings)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 60.0, report.Total)
}

func TestBuildReport_BucketsSumEqualsTotal(t *testing.T) {
	bookings := []*domain.Booking{
		priced("2025-05-01", 55, domain.StatusConfirmed),
		priced("2025-06-05", 60, domain.StatusConfirmed),
		priced("2025-06-20", 50, domain.StatusConfirmed),
		priced("2025-07-01", 65, domain.StatusConfirmed),
	}

	report, _ := BuildReport(bookings)

	sum := 0.0
	for _, v := range report.Monthly {
		sum += v
	}
	assert.InDelta(t, report.Total, sum, 1e-9)
}

func TestMaxMonthly(t *testing.T) {
	assert.Equal(t, 110.0, MaxMonthly(map[string]float64{"2025-06": 110, "2025-07": 65}))

	// Пустой отчет и нулевая выручка дают знаменатель 1
	assert.Equal(t, 1.0, MaxMonthly(nil))
	assert.Equal(t, 1.0, MaxMonthly(map[string]float64{"2025-06": 0}))
	assert.Equal(t, 1.0, MaxMonthly(map[string]float64{"2025-06": 0.5}))
}

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	err       error
	gotFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		priced("2025-06-05", 60, domain.StatusConfirmed),
		priced("2025-06-20", 50, domain.StatusConfirmed),
		priced("2025-07-01", 65, domain.StatusConfirmed),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.False(t, repo.gotFilter.IncludeCancelled)
	assert.Equal(t, 175.0, resp.Total)
	assert.Equal(t, 110.0, resp.MaxMonthly)
	assert.Equal(t, map[string]float64{"2025-06": 110, "2025-07": 65}, resp.Monthly)
}

func TestUseCase_Execute_Period(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FromDate: "2025-06-01", ToDate: "2025-06-30"})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.FromDate)
	require.NotNil(t, repo.gotFilter.ToDate)
	assert.Equal(t, "2025-06-01", *repo.gotFilter.FromDate)
	assert.Equal(t, "2025-06-30", *repo.gotFilter.ToDate)
}

func TestUseCase_Execute_RepoError(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{err: assert.AnError}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
