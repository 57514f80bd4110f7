package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with a sample diary. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.SleepRecord{}, &domain.PersonalityInterval{}, &domain.DoctorVisit{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	if err := seedFixtures(db); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seedHistory(db, rng); err != nil {
		return err
	}

	log.Println("Seed completed")
	return nil
}

// seedFixtures inserts a small set of hand-written diary entries with
// stable IDs so repeated runs do not duplicate them.
func seedFixtures(db *gorm.DB) error {
	records := []domain.SleepRecord{
		{
			ID:          uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Date:        "2023-09-10",
			SleepTime:   "22:30",
			WakeTime:    "07:15",
			Quality:     8,
			Notes:       "睡前有點焦慮，但整體睡得不錯",
			Medications: "安眠藥 5mg",
			Personalities: []domain.PersonalityInterval{
				{
					ID:          uuid.MustParse("aaaaaaaa-1111-1111-1111-111111111111"),
					Personality: domain.PersonalityYuChen,
					StartTime:   "19:00",
					EndTime:     "22:00",
					Notes:       "情緒穩定",
				},
			},
		},
		{
			ID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Date:      "2023-09-11",
			SleepTime: "23:00",
			WakeTime:  "06:45",
			Quality:   6,
			Notes:     "半夜醒來一次",
			Personalities: []domain.PersonalityInterval{
				{
					ID:          uuid.MustParse("bbbbbbbb-2222-2222-2222-222222222222"),
					Personality: domain.PersonalityKong,
					StartTime:   "20:30",
					EndTime:     "22:30",
					Notes:       "比較安靜",
				},
			},
		},
	}

	for _, record := range records {
		if err := db.Where("id = ?", record.ID).FirstOrCreate(&record).Error; err != nil {
			return fmt.Errorf("failed to create sleep record %s: %w", record.ID, err)
		}
	}

	followUp := "2023-10-01"
	visit := domain.DoctorVisit{
		ID:            uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		Date:          "2023-09-01",
		Notes:         "例行回診，調整劑量",
		Prescriptions: "安眠藥 5mg",
		FollowUpDate:  &followUp,
	}
	if err := db.Where("id = ?", visit.ID).FirstOrCreate(&visit).Error; err != nil {
		return fmt.Errorf("failed to create doctor visit %s: %w", visit.ID, err)
	}

	return nil
}

// seedHistory fills the recent weeks with randomized entries so the
// analytics views have something to show. Notes are marked so reruns
// can recognize already-seeded dates.
func seedHistory(db *gorm.DB, rng *rand.Rand) error {
	now := time.Now()
	for i := 0; i < seededDays; i++ {
		day := now.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")

		var count int64
		if err := db.Model(&domain.SleepRecord{}).Where("date = ?", date).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check seeded date %s: %w", date, err)
		}
		if count > 0 {
			continue
		}

		sleepHour := 22 + rng.Intn(2)
		wakeHour := 6 + rng.Intn(3)
		record := domain.SleepRecord{
			Date:      date,
			SleepTime: fmt.Sprintf("%02d:%02d", sleepHour, rng.Intn(60)),
			WakeTime:  fmt.Sprintf("%02d:%02d", wakeHour, rng.Intn(60)),
			Quality:   5 + rng.Intn(6),
			Notes:     "seed",
		}

		if rng.Float32() < 0.6 {
			personality := domain.AllPersonalities[rng.Intn(len(domain.AllPersonalities))]
			startHour := 18 + rng.Intn(3)
			record.Personalities = []domain.PersonalityInterval{
				{
					Personality: personality,
					StartTime:   fmt.Sprintf("%02d:00", startHour),
					EndTime:     fmt.Sprintf("%02d:00", startHour+1+rng.Intn(2)),
				},
			}
		}

		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create sleep record for %s: %w", date, err)
		}
	}
	return nil
}
