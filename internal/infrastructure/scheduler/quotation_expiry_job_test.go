package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_interfaces "bond_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuotationExpiryJob_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	job := NewQuotationExpiryJob(repo, nil)
	job.now = func() time.Time { return now }

	repo.EXPECT().ExpireBefore(gomock.Any(), now).Return(3, nil)
	n, err := job.RunOnce(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("expected 3 expired, got %d, %v", n, err)
	}
}

func TestQuotationExpiryJob_RunSwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
	repo.EXPECT().ExpireBefore(gomock.Any(), gomock.Any()).Return(0, errors.New("ddb down"))

	NewQuotationExpiryJob(repo, nil).Run()
}

func TestStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	job := NewQuotationExpiryJob(mock_interfaces.NewMockIQuotationRepository(ctrl), nil)

	if _, err := Start("not a schedule", job); err == nil {
		t.Fatalf("expected invalid spec to be rejected")
	}
	c, err := Start("@hourly", job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Entries()) != 1 {
		t.Fatalf("expected one scheduled entry")
	}
	<-c.Stop().Done()
}
