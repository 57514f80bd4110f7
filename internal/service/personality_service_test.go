package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
)

func seedRecord(t *testing.T, repo *MockSleepRecordRepository) *domain.SleepRecord {
	t.Helper()
	record := &domain.SleepRecord{
		Date:      "2024-03-01",
		SleepTime: "23:00",
		WakeTime:  "07:00",
		Quality:   7,
	}
	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("failed to seed record: %v", err)
	}
	return record
}

func TestPersonalityService_Create(t *testing.T) {
	recordRepo := NewMockSleepRecordRepository()
	intervalRepo := NewMockPersonalityIntervalRepository()
	svc := NewPersonalityService(intervalRepo, recordRepo)

	record := seedRecord(t, recordRepo)

	t.Run("creates interval and marks record edited", func(t *testing.T) {
		resp, err := svc.Create(context.Background(), record.ID, &domain.CreatePersonalityIntervalRequest{
			Personality: domain.PersonalityYuChen,
			StartTime:   "19:00",
			EndTime:     "22:00",
			Notes:       "情緒穩定",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if resp.Personality != domain.PersonalityYuChen {
			t.Errorf("Create() Personality = %q, want 宇辰", resp.Personality)
		}
		if resp.SleepRecordID != record.ID {
			t.Errorf("Create() SleepRecordID = %v, want %v", resp.SleepRecordID, record.ID)
		}

		stored, err := recordRepo.GetByID(context.Background(), record.ID)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if !stored.Edited {
			t.Error("Create() did not mark the owning record edited")
		}
	})

	t.Run("unknown record", func(t *testing.T) {
		_, err := svc.Create(context.Background(), uuid.New(), &domain.CreatePersonalityIntervalRequest{
			Personality: domain.PersonalityKong,
			StartTime:   "20:00",
			EndTime:     "21:00",
		})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Create() error = %v, want ErrNotFound", err)
		}
	})
}

func TestPersonalityService_Update(t *testing.T) {
	recordRepo := NewMockSleepRecordRepository()
	intervalRepo := NewMockPersonalityIntervalRepository()
	svc := NewPersonalityService(intervalRepo, recordRepo)

	record := seedRecord(t, recordRepo)
	created, err := svc.Create(context.Background(), record.ID, &domain.CreatePersonalityIntervalRequest{
		Personality: domain.PersonalityMaoMi,
		StartTime:   "18:00",
		EndTime:     "20:00",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	recordRepo.setEdited = nil

	t.Run("patch changes only provided fields", func(t *testing.T) {
		resp, err := svc.Update(context.Background(), created.ID, &domain.UpdatePersonalityIntervalRequest{
			Personality: personalityPtr(domain.PersonalityXinYi),
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		if resp.Personality != domain.PersonalityXinYi {
			t.Errorf("Update() Personality = %q, want 欣怡", resp.Personality)
		}
		if resp.StartTime != "18:00" || resp.EndTime != "20:00" {
			t.Errorf("Update() changed untouched fields: %s-%s", resp.StartTime, resp.EndTime)
		}
		if len(recordRepo.setEdited) != 1 || recordRepo.setEdited[0] != record.ID {
			t.Error("Update() did not mark the owning record edited")
		}
	})

	t.Run("unknown interval", func(t *testing.T) {
		_, err := svc.Update(context.Background(), uuid.New(), &domain.UpdatePersonalityIntervalRequest{
			Notes: strPtr("x"),
		})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})
}

func TestPersonalityService_Delete(t *testing.T) {
	recordRepo := NewMockSleepRecordRepository()
	intervalRepo := NewMockPersonalityIntervalRepository()
	svc := NewPersonalityService(intervalRepo, recordRepo)

	record := seedRecord(t, recordRepo)
	created, err := svc.Create(context.Background(), record.ID, &domain.CreatePersonalityIntervalRequest{
		Personality: domain.PersonalityKong,
		StartTime:   "20:00",
		EndTime:     "21:30",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	recordRepo.setEdited = nil

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := intervalRepo.GetByID(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("interval still present after delete, error = %v", err)
	}
	if len(recordRepo.setEdited) != 1 || recordRepo.setEdited[0] != record.ID {
		t.Error("Delete() did not mark the owning record edited")
	}

	if err := svc.Delete(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() unknown interval error = %v, want ErrNotFound", err)
	}
}
