package advance

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	requests map[string]Request
	decided  map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{requests: map[string]Request{}, decided: map[string]string{}}
}

func (f *fakeStore) CreateRequest(_ context.Context, employeeID string, amount float64, reason string) (string, error) {
	id := "req1"
	f.requests[id] = Request{ID: id, EmployeeID: employeeID, Amount: amount, Reason: reason, Status: StatusPending}
	return id, nil
}

func (f *fakeStore) GetRequest(_ context.Context, requestID string) (Request, error) {
	req, ok := f.requests[requestID]
	if !ok {
		return Request{}, ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeStore) Approve(_ context.Context, requestID string) error {
	req := f.requests[requestID]
	if req.Status != StatusPending {
		return ErrAlreadyDecided
	}
	f.decided[requestID] = StatusApproved
	return nil
}

func (f *fakeStore) Reject(_ context.Context, requestID string) error {
	req := f.requests[requestID]
	if req.Status != StatusPending {
		return ErrAlreadyDecided
	}
	f.decided[requestID] = StatusRejected
	return nil
}

func (f *fakeStore) ListForEmployee(_ context.Context, _ string, _, _ int) ([]Request, error) {
	return nil, nil
}

func (f *fakeStore) SumApprovedBetween(_ context.Context, _ string, _, _ time.Time) (float64, error) {
	return 0, nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) Notify(_ context.Context, _, _, _ string) error {
	f.calls++
	return f.err
}

func TestCreateRejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(newFakeStore(), nil)

	if _, err := svc.Create(context.Background(), "e1", 0, "rent"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.Create(context.Background(), "e1", -50, "rent"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
}

func TestApproveNotifies(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	id, err := svc.Create(context.Background(), "e1", 500, "school fees")
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if err := svc.Approve(context.Background(), id); err != nil {
		t.Fatalf("approve error: %v", err)
	}
	if store.decided[id] != StatusApproved {
		t.Fatalf("decided = %q", store.decided[id])
	}
	if notifier.calls != 1 {
		t.Fatalf("expected 1 notification, got %d", notifier.calls)
	}
}

func TestApproveNotifierFailureDoesNotFail(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeNotifier{err: errors.New("push down")})

	id, _ := svc.Create(context.Background(), "e1", 500, "")
	if err := svc.Approve(context.Background(), id); err != nil {
		t.Fatalf("notification failure must not fail approval: %v", err)
	}
}

func TestDecideUnknownRequest(t *testing.T) {
	svc := NewService(newFakeStore(), nil)

	if err := svc.Approve(context.Background(), "missing"); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("err = %v, want ErrRequestNotFound", err)
	}
	if err := svc.Reject(context.Background(), "missing"); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("err = %v, want ErrRequestNotFound", err)
	}
}

func TestDecideTwice(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)

	id, _ := svc.Create(context.Background(), "e1", 500, "")
	req := store.requests[id]
	req.Status = StatusApproved
	store.requests[id] = req

	if err := svc.Reject(context.Background(), id); !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("err = %v, want ErrAlreadyDecided", err)
	}
}
