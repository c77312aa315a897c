package get_agenda

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osteosalud/booking-service/internal/domain"
)

func booking(id, date, timeLabel string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:     id,
		Date:   date,
		Time:   timeLabel,
		Status: status,
	}
}

func ids(bookings []*domain.Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

func TestValidBookings_DropsUnreadable(t *testing.T) {
	bookings := []*domain.Booking{
		booking("ok", "2025-06-10", "10:00", domain.StatusConfirmed),
		booking("bad-date", "not-a-date", "10:00", domain.StatusConfirmed),
		booking("bad-time", "2025-06-10", "morning", domain.StatusConfirmed),
		booking("empty", "", "", domain.StatusConfirmed),
	}

	valid := ValidBookings(bookings)
	assert.Equal(t, []string{"ok"}, ids(valid))
}

func TestSortChronological_ByInstantNotByLabel(t *testing.T) {
	// Лексикографически "10:00" < "9:00" - сортировка обязана
	// идти по вычисленному моменту
	bookings := []*domain.Booking{
		booking("late", "2025-06-10", "10:00", domain.StatusConfirmed),
		booking("early", "2025-06-10", "9:00", domain.StatusConfirmed),
		booking("prev-day", "2025-06-09", "19:00", domain.StatusConfirmed),
	}

	sorted := SortChronological(bookings)
	assert.Equal(t, []string{"prev-day", "early", "late"}, ids(sorted))
}

func TestSortChronological_DoesNotMutateInput(t *testing.T) {
	bookings := []*domain.Booking{
		booking("b", "2025-06-10", "10:00", domain.StatusConfirmed),
		booking("a", "2025-06-10", "9:00", domain.StatusConfirmed),
	}

	SortChronological(bookings)
	assert.Equal(t, []string{"b", "a"}, ids(bookings))
}

func TestPartitionByStatus_DisjointUnion(t *testing.T) {
	bookings := []*domain.Booking{
		booking("a1", "2025-06-10", "9:00", domain.StatusConfirmed),
		booking("c1", "2025-06-10", "10:00", domain.StatusCancelled),
		booking("a2", "2025-06-11", "9:00", domain.StatusConfirmed),
		booking("c2", "2025-06-11", "10:00", domain.StatusCancelled),
	}

	active, cancelled := PartitionByStatus(bookings)

	assert.Equal(t, []string{"a1", "a2"}, ids(active))
	assert.Equal(t, []string{"c1", "c2"}, ids(cancelled))
	assert.Equal(t, len(bookings), len(active)+len(cancelled))
}

func TestUpcomingBookings(t *testing.T) {
	today := "2025-06-10"
	bookings := []*domain.Booking{
		booking("past", "2025-06-09", "10:00", domain.StatusConfirmed),
		booking("today", today, "9:00", domain.StatusConfirmed),
		booking("future", "2025-06-11", "10:00", domain.StatusConfirmed),
	}

	upcoming := UpcomingBookings(bookings, today)

	// Сегодняшний визит остается предстоящим независимо от часа
	assert.Equal(t, []string{"today", "future"}, ids(upcoming))
}

func TestGroupByDate_PreservesOrder(t *testing.T) {
	sorted := SortChronological([]*domain.Booking{
		booking("d1-early", "2025-06-10", "9:00", domain.StatusConfirmed),
		booking("d2", "2025-06-11", "10:00", domain.StatusConfirmed),
		booking("d1-late", "2025-06-10", "17:00", domain.StatusConfirmed),
	})

	groups := GroupByDate(sorted)

	require.Len(t, groups, 2)
	assert.Equal(t, "2025-06-10", groups[0].Date)
	assert.Equal(t, []string{"d1-early", "d1-late"}, ids(groups[0].Bookings))
	assert.Equal(t, "2025-06-11", groups[1].Date)
	assert.Equal(t, []string{"d2"}, ids(groups[1].Bookings))
}

func TestRecentCancelled_Cap(t *testing.T) {
	cancelled := []*domain.Booking{
		booking("c1", "2025-06-01", "9:00", domain.StatusCancelled),
		booking("c2", "2025-06-02", "9:00", domain.StatusCancelled),
		booking("c3", "2025-06-03", "9:00", domain.StatusCancelled),
		booking("c4", "2025-06-04", "9:00", domain.StatusCancelled),
	}

	recent := RecentCancelled(cancelled, 3)
	assert.Equal(t, []string{"c2", "c3", "c4"}, ids(recent))

	assert.Len(t, RecentCancelled(cancelled[:2], 3), 2)
	assert.Empty(t, RecentCancelled(nil, 3))
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

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("past-active", "2025-06-09", "10:00", domain.StatusConfirmed),
		booking("today-late", "2025-06-10", "17:00", domain.StatusConfirmed),
		booking("today-early", "2025-06-10", "9:00", domain.StatusConfirmed),
		booking("future", "2025-06-12", "10:00", domain.StatusConfirmed),
		booking("cancelled-old", "2025-06-01", "9:00", domain.StatusCancelled),
		booking("broken", "not-a-date", "10:00", domain.StatusConfirmed),
	}}

	uc := NewUseCase(repo, fixedTime{t: time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.True(t, repo.gotFilter.IncludeCancelled)

	// Нечитаемая запись отброшена, активные - в хронологическом порядке
	assert.Equal(t, []string{"past-active", "today-early", "today-late", "future"}, ids(resp.Active))
	assert.Equal(t, 4, resp.TotalActive)
	assert.Equal(t, 1, resp.TotalCancelled)
	assert.Equal(t, []string{"cancelled-old"}, ids(resp.RecentCancelled))

	// Предстоящие начинаются с сегодняшнего дня и сгруппированы по датам
	require.Len(t, resp.Upcoming, 2)
	assert.Equal(t, "2025-06-10", resp.Upcoming[0].Date)
	assert.Equal(t, []string{"today-early", "today-late"}, ids(resp.Upcoming[0].Bookings))
	assert.Equal(t, "2025-06-12", resp.Upcoming[1].Date)
}

func TestUseCase_Execute_IncludeAllCancelled(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("c1", "2025-06-01", "9:00", domain.StatusCancelled),
		booking("c2", "2025-06-02", "9:00", domain.StatusCancelled),
		booking("c3", "2025-06-03", "9:00", domain.StatusCancelled),
		booking("c4", "2025-06-04", "9:00", domain.StatusCancelled),
	}}
	uc := NewUseCase(repo, fixedTime{t: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{IncludeAllCancelled: true})
	require.NoError(t, err)

	// Сводка остается ограниченной, полный список - без ограничения
	assert.Equal(t, []string{"c2", "c3", "c4"}, ids(resp.RecentCancelled))
	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, ids(resp.Cancelled))

	resp, err = uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Nil(t, resp.Cancelled)
}

func TestUseCase_Execute_SingleDay(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, fixedTime{t: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-06-12"})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.Date)
	assert.Equal(t, "2025-06-12", *repo.gotFilter.Date)
}

func TestUseCase_Execute_RepoError(t *testing.T) {
	repo := &fakeBookingRepo{err: assert.AnError}
	uc := NewUseCase(repo, fixedTime{t: time.Now()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
