package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	billingModel "schoolhub_backend/internals/features/billing/subscriptions/model"
	announcementModel "schoolhub_backend/internals/features/school/announcements/model"
	attendanceModel "schoolhub_backend/internals/features/school/attendance/model"
	cbtModel "schoolhub_backend/internals/features/school/cbt/model"
	examModel "schoolhub_backend/internals/features/school/exams/model"
	markModel "schoolhub_backend/internals/features/school/marks/model"
	resultModel "schoolhub_backend/internals/features/school/results/model"
	settingModel "schoolhub_backend/internals/features/school/settings/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolhub&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: NewGormLogger(),
		// unique violation → gorm.ErrDuplicatedKey (dipakai attendance & CBT attempt)
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] Gagal ambil sql.DB: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk seluruh model.
// Unique index komposit (attendance per hari, attempt per test) ikut dibuat di sini.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&settingModel.SchoolSettingModel{},
		&attendanceModel.AttendanceRecordModel{},
		&markModel.MarkModel{},
		&resultModel.ResultModel{},
		&cbtModel.TestModel{},
		&cbtModel.TestAttemptModel{},
		&examModel.ExamQuestionModel{},
		&examModel.ExamTimetableModel{},
		&billingModel.SubscriptionModel{},
		&billingModel.SubscriptionPaymentModel{},
		&announcementModel.AnnouncementModel{},
	); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
