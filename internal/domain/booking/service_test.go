package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/capturesangli/studio-api/internal/pkg/notify"
)

type fakeRepo struct {
	createCalls int
	createErr   error
	created     *Request

	bookings []*Request

	statusCalls  int
	statusErr    error
	lastStatusID uuid.UUID
	lastStatus   Status
}

func (f *fakeRepo) Create(ctx context.Context, booking *Request) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.created = booking
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Request, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]*Request, error) {
	return f.bookings, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	f.statusCalls++
	if f.statusErr != nil {
		return f.statusErr
	}
	f.lastStatusID = id
	f.lastStatus = status
	return nil
}

type fakeNotifier struct {
	sent chan notify.Type
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan notify.Type, 1)}
}

func (f *fakeNotifier) Send(ctx context.Context, typ notify.Type, data interface{}) error {
	f.sent <- typ
	return nil
}

func validRequest(date string) *CreateBookingRequest {
	return &CreateBookingRequest{
		Name:        "Priya Sharma",
		Email:       "priya@example.com",
		Phone:       "+91 98765 43210",
		Service:     "wedding",
		BookingDate: date,
		TimeSlot:    "9:00 AM - 11:00 AM",
	}
}

func TestSubmitCreatesPendingBooking(t *testing.T) {
	repo := &fakeRepo{}
	notifier := newFakeNotifier()
	svc := NewService(repo, notifier)

	tomorrow := time.Now().AddDate(0, 0, 1).Format(DateLayout)
	booking, err := svc.Submit(context.Background(), validRequest(tomorrow))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.createCalls != 1 {
		t.Fatalf("expected exactly one create call, got %d", repo.createCalls)
	}
	if booking.Status != StatusPending {
		t.Errorf("expected status pending, got %s", booking.Status)
	}
	if booking.Service != ServiceWedding {
		t.Errorf("expected service wedding, got %s", booking.Service)
	}
	if got := booking.BookingDate.Format(DateLayout); got != tomorrow {
		t.Errorf("expected booking date %s, got %s", tomorrow, got)
	}
	if booking.ID == uuid.Nil {
		t.Error("expected generated booking ID")
	}

	select {
	case typ := <-notifier.sent:
		if typ != notify.TypeBooking {
			t.Errorf("expected booking notification, got %s", typ)
		}
	case <-time.After(2 * time.Second):
		t.Error("expected a notification to be sent")
	}
}

func TestSubmitAcceptsToday(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	today := time.Now().Format(DateLayout)
	if _, err := svc.Submit(context.Background(), validRequest(today)); err != nil {
		t.Fatalf("expected today to be accepted, got %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected one create call, got %d", repo.createCalls)
	}
}

func TestSubmitRejectsPastDate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	yesterday := time.Now().AddDate(0, 0, -1).Format(DateLayout)
	_, err := svc.Submit(context.Background(), validRequest(yesterday))
	if !errors.Is(err, ErrDateInPast) {
		t.Fatalf("expected ErrDateInPast, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected zero store calls, got %d", repo.createCalls)
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection refused")}
	notifier := newFakeNotifier()
	svc := NewService(repo, notifier)

	tomorrow := time.Now().AddDate(0, 0, 1).Format(DateLayout)
	_, err := svc.Submit(context.Background(), validRequest(tomorrow))
	if err == nil {
		t.Fatal("expected error on store failure")
	}

	select {
	case <-notifier.sent:
		t.Error("expected no notification on store failure")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{
		bookings: []*Request{{ID: id, Status: StatusPending}},
	}
	svc := NewService(repo, nil)

	tests := []struct {
		name    string
		id      uuid.UUID
		status  Status
		wantErr error
		calls   int
	}{
		{name: "pending to confirmed", id: id, status: StatusConfirmed, calls: 1},
		{name: "confirmed back to pending", id: id, status: StatusPending, calls: 1},
		{name: "to cancelled", id: id, status: StatusCancelled, calls: 1},
		{name: "unknown status", id: id, status: Status("archived"), wantErr: ErrInvalidStatus, calls: 0},
		{name: "missing booking", id: uuid.New(), status: StatusConfirmed, wantErr: ErrBookingNotFound, calls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.statusCalls = 0
			err := svc.UpdateStatus(context.Background(), tt.id, tt.status)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if repo.statusCalls != tt.calls {
				t.Errorf("expected %d update calls, got %d", tt.calls, repo.statusCalls)
			}
			if tt.wantErr == nil && repo.lastStatus != tt.status {
				t.Errorf("expected status %s, got %s", tt.status, repo.lastStatus)
			}
		})
	}
}
