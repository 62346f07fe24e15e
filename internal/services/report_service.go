package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dabson254/lapor-hilang/internal/dto"
	"github.com/dabson254/lapor-hilang/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFoundOrUnauthorized deliberately merges "no such report" and
	// "wrong owner token" so callers cannot probe for other users' reports.
	ErrNotFoundOrUnauthorized = errors.New("report not found or unauthorized")
	ErrReportNotFound         = errors.New("report not found")
)

// Sweep actor tags recorded in cleanup_logs. Manually triggered sweeps use
// the admin's username instead.
const (
	SweepActorStartup   = "startup"
	SweepActorScheduled = "scheduled"
)

const DefaultListLimit = 100

type ReportService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewReportService(db *gorm.DB, notifications *NotificationService) *ReportService {
	return &ReportService{db: db, notifications: notifications}
}

// Create persists a new Active report. The owner token is resolved once
// here: reused when the caller presented one, generated otherwise.
func (s *ReportService) Create(ctx context.Context, report *models.Report, presentedToken string) (*models.Report, error) {
	report.OwnerToken = IssueOrReuse(presentedToken)
	report.Status = models.StatusActive

	if err := s.db.WithContext(ctx).Create(report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	// The report row is already committed; a notification failure only logs.
	id := report.ID
	if err := s.notifications.Emit(&id, "Laporan baru: "+report.Title); err != nil {
		slog.Error("notification emit failed", "action", "report_create", "report_id", id, "error", err)
	}

	return report, nil
}

// MarkFound transitions a report to Selesai when both the id and the owner
// token match, as a single conditional UPDATE. Zero matched rows means
// wrong id or wrong token; the two are indistinguishable on purpose.
func (s *ReportService) MarkFound(ctx context.Context, id uint, token string) error {
	result := s.db.WithContext(ctx).Model(&models.Report{}).
		Where("id_laporan = ? AND token_cookie = ?", id, token).
		Update("status", models.StatusFound)
	if result.Error != nil {
		return fmt.Errorf("failed to mark report found: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFoundOrUnauthorized
	}
	return nil
}

// Delete transitions a report to Dihapus regardless of its current status.
// Authorization happens upstream: the route requires a verified admin session.
func (s *ReportService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Model(&models.Report{}).
		Where("id_laporan = ?", id).
		Update("status", models.StatusDeleted)
	if result.Error != nil {
		return fmt.Errorf("failed to delete report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}

	if err := s.notifications.Emit(&id, "Laporan dihapus oleh admin"); err != nil {
		slog.Error("notification emit failed", "action", "report_delete", "report_id", id, "error", err)
	}
	return nil
}

// reportRow is the named, typed result of the laporan/kategori/wilayah join.
type reportRow struct {
	IDLaporan     uint       `gorm:"column:id_laporan"`
	NamaPelapor   string     `gorm:"column:nama_pelapor"`
	JudulLaporan  string     `gorm:"column:judul_laporan"`
	KontakPelapor string     `gorm:"column:kontak_pelapor"`
	EmailPelapor  string     `gorm:"column:email_pelapor"`
	Deskripsi     string     `gorm:"column:deskripsi"`
	TanggalHilang *time.Time `gorm:"column:tanggal_hilang"`
	LokasiHilang  string     `gorm:"column:lokasi_hilang"`
	FotoURL       string     `gorm:"column:foto_url"`
	Status        string     `gorm:"column:status"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	NamaKategori  *string    `gorm:"column:nama_kategori"`
	NamaKota      *string    `gorm:"column:nama_kota"`
	NamaProvinsi  *string    `gorm:"column:nama_provinsi"`
}

const reportColumns = "l.id_laporan, l.nama_pelapor, l.judul_laporan, l.kontak_pelapor, " +
	"l.email_pelapor, l.deskripsi, l.tanggal_hilang, l.lokasi_hilang, l.foto_url, " +
	"l.status, l.created_at, k.nama_kategori, w.nama_kota, w.nama_provinsi"

func (s *ReportService) joined(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table("laporan l").
		Select(reportColumns).
		Joins("LEFT JOIN kategori k ON l.id_kategori = k.id_kategori").
		Joins("LEFT JOIN wilayah w ON l.id_kota = w.id_kota")
}

func (s *ReportService) GetByID(ctx context.Context, id uint) (*dto.ReportDetail, error) {
	var row reportRow
	err := s.joined(ctx).Where("l.id_laporan = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	detail := row.toDetail()
	return &detail, nil
}

// ListByToken returns all reports owned by a reporter token, newest first.
// An empty or unknown token yields an empty slice, never an error.
func (s *ReportService) ListByToken(ctx context.Context, token string) ([]dto.ReportDetail, error) {
	if token == "" {
		return []dto.ReportDetail{}, nil
	}

	var rows []reportRow
	err := s.joined(ctx).
		Where("l.token_cookie = ?", token).
		Order("l.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by token: %w", err)
	}
	return toDetails(rows), nil
}

// List is the admin view. Filters are conjunctive and applied only when set.
func (s *ReportService) List(ctx context.Context, filter dto.ReportFilter) ([]dto.ReportDetail, error) {
	query := s.joined(ctx)
	if filter.Status != "" {
		query = query.Where("l.status = ?", filter.Status)
	}
	if filter.CategoryID != 0 {
		query = query.Where("l.id_kategori = ?", filter.CategoryID)
	}
	if filter.ProvinceID != 0 {
		query = query.Where("w.id_provinsi = ?", filter.ProvinceID)
	}
	if filter.CityID != 0 {
		query = query.Where("w.id_kota = ?", filter.CityID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var rows []reportRow
	err := query.Order("l.created_at DESC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return toDetails(rows), nil
}

// ExpirySweep transitions every Active report whose lost date has aged past
// the window to Dihapus, as one set-based UPDATE. Reports without a lost
// date are exempt. A cleanup_logs row is appended for every run, count 0
// included; the sweep's success never depends on that append.
func (s *ReportService) ExpirySweep(ctx context.Context, days int, actor string) (affected int64, logged bool, err error) {
	if days <= 0 {
		days = 30
	}

	result := s.db.WithContext(ctx).Model(&models.Report{}).
		Where("status = ? AND tanggal_hilang IS NOT NULL AND tanggal_hilang <= CURRENT_DATE - ?",
			models.StatusActive, days).
		Update("status", models.StatusDeleted)
	if result.Error != nil {
		return 0, false, fmt.Errorf("expiry sweep failed: %w", result.Error)
	}
	affected = result.RowsAffected

	entry := models.CleanupLog{
		TriggeredBy:   actor,
		DaysWindow:    days,
		AffectedCount: int(affected),
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		slog.Error("cleanup log append failed", "action", "expiry_sweep", "actor", actor, "error", err)
		return affected, false, nil
	}
	return affected, true, nil
}

func toDetails(rows []reportRow) []dto.ReportDetail {
	details := make([]dto.ReportDetail, 0, len(rows))
	for _, r := range rows {
		details = append(details, r.toDetail())
	}
	return details
}

func (r *reportRow) toDetail() dto.ReportDetail {
	d := dto.ReportDetail{
		IDLaporan:     r.IDLaporan,
		NamaPelapor:   r.NamaPelapor,
		JudulLaporan:  r.JudulLaporan,
		KontakPelapor: r.KontakPelapor,
		EmailPelapor:  r.EmailPelapor,
		Deskripsi:     r.Deskripsi,
		Status:        r.Status,
		Lokasi:        displayLocation(r.NamaKota, r.NamaProvinsi, r.LokasiHilang),
		LokasiHilang:  r.LokasiHilang,
		FotoURL:       r.FotoURL,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.NamaKategori != nil {
		d.Kategori = *r.NamaKategori
	}
	if r.TanggalHilang != nil {
		d.TanggalHilang = r.TanggalHilang.Format("2006-01-02")
	}
	return d
}

// displayLocation prefers the resolved "City, Province" pair and falls back
// to the raw free-text location when the region reference is unset or
// unresolved. An empty result is fine; it is never an error.
func displayLocation(city, province *string, freeText string) string {
	if city != nil && *city != "" {
		if province != nil && *province != "" {
			return *city + ", " + *province
		}
		return *city
	}
	return freeText
}
