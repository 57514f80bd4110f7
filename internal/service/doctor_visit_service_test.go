package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
)

func TestDoctorVisitService_Create(t *testing.T) {
	repo := NewMockDoctorVisitRepository()
	svc := NewDoctorVisitService(repo)

	resp, err := svc.Create(context.Background(), &domain.CreateDoctorVisitRequest{
		Date:          "2024-02-14",
		Notes:         "例行回診",
		Prescriptions: "安眠藥 5mg",
		FollowUpDate:  strPtr("2024-03-14"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if resp.ID == uuid.Nil {
		t.Error("Create() did not assign an ID")
	}
	if resp.FollowUpDate == nil || *resp.FollowUpDate != "2024-03-14" {
		t.Errorf("Create() FollowUpDate = %v, want 2024-03-14", resp.FollowUpDate)
	}
}

func TestDoctorVisitService_Update(t *testing.T) {
	repo := NewMockDoctorVisitRepository()
	svc := NewDoctorVisitService(repo)

	created, err := svc.Create(context.Background(), &domain.CreateDoctorVisitRequest{
		Date:  "2024-02-14",
		Notes: "初診",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("patch changes only provided fields", func(t *testing.T) {
		resp, err := svc.Update(context.Background(), created.ID, &domain.UpdateDoctorVisitRequest{
			Prescriptions: strPtr("安眠藥 10mg"),
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		if resp.Prescriptions != "安眠藥 10mg" {
			t.Errorf("Update() Prescriptions = %q", resp.Prescriptions)
		}
		if resp.Date != "2024-02-14" || resp.Notes != "初診" {
			t.Error("Update() changed untouched fields")
		}
	})

	t.Run("unknown visit", func(t *testing.T) {
		_, err := svc.Update(context.Background(), uuid.New(), &domain.UpdateDoctorVisitRequest{
			Notes: strPtr("x"),
		})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})
}

func TestDoctorVisitService_List(t *testing.T) {
	repo := NewMockDoctorVisitRepository()
	svc := NewDoctorVisitService(repo)

	repo.listResult = []domain.DoctorVisit{
		{ID: uuid.New(), Date: "2024-03-01"},
		{ID: uuid.New(), Date: "2024-02-01"},
	}

	visits, err := svc.List(context.Background(), domain.DoctorVisitFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(visits) != 2 {
		t.Errorf("List() returned %d visits, want 2", len(visits))
	}
}

func TestDoctorVisitService_Delete(t *testing.T) {
	repo := NewMockDoctorVisitRepository()
	svc := NewDoctorVisitService(repo)

	created, err := svc.Create(context.Background(), &domain.CreateDoctorVisitRequest{Date: "2024-02-14"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if err := svc.Delete(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() unknown visit error = %v, want ErrNotFound", err)
	}
}
