package get_agenda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osteosalud/booking-service/internal/domain"
	getAgenda "github.com/osteosalud/booking-service/internal/usecase/get_agenda"
)

type fakeUseCase struct {
	resp   *getAgenda.Response
	err    error
	gotReq *getAgenda.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAgenda.Request) (*getAgenda.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func cancelledBooking(id string) *domain.Booking {
	return &domain.Booking{ID: id, Date: "2025-06-01", Time: "9:00", Status: domain.StatusCancelled}
}

func TestHandle_IncludeCancelledFlag(t *testing.T) {
	uc := &fakeUseCase{resp: &getAgenda.Response{
		RecentCancelled: []*domain.Booking{cancelledBooking("c2")},
		Cancelled:       []*domain.Booking{cancelledBooking("c1"), cancelledBooking("c2")},
		TotalCancelled:  2,
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/agenda?includeCancelled=true", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.True(t, uc.gotReq.IncludeAllCancelled)

	var resp AgendaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Cancelled, 2)
	assert.Equal(t, "c1", resp.Cancelled[0].ID)
	assert.Equal(t, "c2", resp.Cancelled[1].ID)
}

func TestHandle_DefaultOmitsFullCancelledList(t *testing.T) {
	uc := &fakeUseCase{resp: &getAgenda.Response{
		RecentCancelled: []*domain.Booking{cancelledBooking("c2")},
		TotalCancelled:  2,
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/agenda", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.False(t, uc.gotReq.IncludeAllCancelled)
	assert.NotContains(t, rec.Body.String(), `"cancelled"`)
}

func TestHandle_UseCaseError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: getAgenda.ErrInternal}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/agenda", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
