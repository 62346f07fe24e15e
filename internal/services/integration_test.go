package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/dabson254/lapor-hilang/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB connects to the database named by TEST_DATABASE_URL and skips the
// test when it is unset, so the unit suite stays runnable without Postgres.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.AutoMigrate(&models.Report{}, &models.Notification{}, &models.CleanupLog{},
		&models.Region{}, &models.Category{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestReportService(db *gorm.DB) *ReportService {
	return NewReportService(db, NewNotificationService(db))
}

func cleanupReport(t *testing.T, db *gorm.DB, id uint) {
	t.Helper()
	t.Cleanup(func() {
		db.Where("id_laporan = ?", id).Delete(&models.Notification{})
		db.Delete(&models.Report{}, "id_laporan = ?", id)
	})
}

func TestReportLifecycle_Scenario(t *testing.T) {
	db := setupDB(t)
	svc := newTestReportService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Report{
		ReporterName: "Ana",
		Title:        "Lost wallet",
	}, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	cleanupReport(t, db, created.ID)

	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if created.OwnerToken == "" {
		t.Fatal("expected generated owner token")
	}
	if created.Status != models.StatusActive {
		t.Fatalf("status = %q, want %q", created.Status, models.StatusActive)
	}

	var notifCount int64
	db.Model(&models.Notification{}).Where("id_laporan = ?", created.ID).Count(&notifCount)
	if notifCount != 1 {
		t.Fatalf("notification count after create = %d, want 1", notifCount)
	}

	// Wrong token must fail with the merged signal and leave status alone.
	if err := svc.MarkFound(ctx, created.ID, "wrong-token"); !errors.Is(err, ErrNotFoundOrUnauthorized) {
		t.Fatalf("MarkFound wrong token: expected ErrNotFoundOrUnauthorized, got %v", err)
	}
	var current models.Report
	db.First(&current, "id_laporan = ?", created.ID)
	if current.Status != models.StatusActive {
		t.Fatalf("status after rejected MarkFound = %q, want unchanged", current.Status)
	}

	if err := svc.MarkFound(ctx, created.ID, created.OwnerToken); err != nil {
		t.Fatalf("MarkFound: %v", err)
	}
	db.First(&current, "id_laporan = ?", created.ID)
	if current.Status != models.StatusFound {
		t.Fatalf("status = %q, want %q", current.Status, models.StatusFound)
	}

	// Admin delete works even on a report already marked found.
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	db.First(&current, "id_laporan = ?", created.ID)
	if current.Status != models.StatusDeleted {
		t.Fatalf("status = %q, want %q", current.Status, models.StatusDeleted)
	}

	db.Model(&models.Notification{}).Where("id_laporan = ?", created.ID).Count(&notifCount)
	if notifCount != 2 {
		t.Fatalf("notification count after delete = %d, want 2", notifCount)
	}
}

func TestCreate_ReusesPresentedToken(t *testing.T) {
	db := setupDB(t)
	svc := newTestReportService(db)

	presented := "11111111-2222-3333-4444-555555555555"
	created, err := svc.Create(context.Background(), &models.Report{
		ReporterName: "Budi",
		Title:        "Kunci hilang",
	}, presented)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	cleanupReport(t, db, created.ID)

	if created.OwnerToken != presented {
		t.Fatalf("owner token = %q, want presented token reused", created.OwnerToken)
	}
}

func TestListByToken_EmptyAndUnknown(t *testing.T) {
	db := setupDB(t)
	svc := newTestReportService(db)
	ctx := context.Background()

	got, err := svc.ListByToken(ctx, "")
	if err != nil {
		t.Fatalf("ListByToken empty: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list for empty token, got %d rows", len(got))
	}

	got, err = svc.ListByToken(ctx, "no-such-token-ever")
	if err != nil {
		t.Fatalf("ListByToken unknown: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list for unknown token, got %d rows", len(got))
	}
}

func TestExpirySweep(t *testing.T) {
	db := setupDB(t)
	svc := newTestReportService(db)
	ctx := context.Background()

	stale := time.Now().AddDate(0, 0, -31)
	staleReport, err := svc.Create(ctx, &models.Report{
		ReporterName: "Citra",
		Title:        "Tas hilang lama",
		LostDate:     &stale,
	}, "")
	if err != nil {
		t.Fatalf("Create stale: %v", err)
	}
	cleanupReport(t, db, staleReport.ID)

	noDateReport, err := svc.Create(ctx, &models.Report{
		ReporterName: "Dewi",
		Title:        "Tanpa tanggal",
	}, "")
	if err != nil {
		t.Fatalf("Create no-date: %v", err)
	}
	cleanupReport(t, db, noDateReport.ID)

	affected, logged, err := svc.ExpirySweep(ctx, 30, "test-sweep")
	if err != nil {
		t.Fatalf("ExpirySweep: %v", err)
	}
	if affected < 1 {
		t.Fatalf("affected = %d, want at least the stale report", affected)
	}
	if !logged {
		t.Fatal("expected cleanup log row to be written")
	}

	var swept models.Report
	db.First(&swept, "id_laporan = ?", staleReport.ID)
	if swept.Status != models.StatusDeleted {
		t.Fatalf("stale report status = %q, want %q", swept.Status, models.StatusDeleted)
	}

	var exempt models.Report
	db.First(&exempt, "id_laporan = ?", noDateReport.ID)
	if exempt.Status != models.StatusActive {
		t.Fatalf("no-date report status = %q, want exempt from sweep", exempt.Status)
	}

	// Second run: the stale report must not match again, and the run still
	// appends its audit row.
	var logsBefore int64
	db.Model(&models.CleanupLog{}).Where("triggered_by = ?", "test-sweep").Count(&logsBefore)

	_, logged, err = svc.ExpirySweep(ctx, 30, "test-sweep")
	if err != nil {
		t.Fatalf("second ExpirySweep: %v", err)
	}
	if !logged {
		t.Fatal("expected cleanup log row on second run")
	}

	var logsAfter int64
	db.Model(&models.CleanupLog{}).Where("triggered_by = ?", "test-sweep").Count(&logsAfter)
	if logsAfter != logsBefore+1 {
		t.Fatalf("cleanup log rows = %d, want %d", logsAfter, logsBefore+1)
	}

	db.First(&swept, "id_laporan = ?", staleReport.ID)
	if swept.Status != models.StatusDeleted {
		t.Fatalf("stale report status after second sweep = %q", swept.Status)
	}

	t.Cleanup(func() {
		db.Where("triggered_by = ?", "test-sweep").Delete(&models.CleanupLog{})
	})
}
