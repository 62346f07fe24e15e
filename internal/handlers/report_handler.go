package handlers

import (
	"errors"
	"io"
	"time"

	"github.com/dabson254/lapor-hilang/internal/config"
	"github.com/dabson254/lapor-hilang/internal/dto"
	"github.com/dabson254/lapor-hilang/internal/models"
	"github.com/dabson254/lapor-hilang/internal/services"
	"github.com/dabson254/lapor-hilang/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// CookieName carries the anonymous reporter's owner token.
const CookieName = "laporan_token"

const cookieMaxAge = 30 * 24 * time.Hour

type ReportHandler struct {
	reports *services.ReportService
	photos  *storage.PhotoStore
	cfg     *config.Config
}

func NewReportHandler(reports *services.ReportService, photos *storage.PhotoStore, cfg *config.Config) *ReportHandler {
	return &ReportHandler{reports: reports, photos: photos, cfg: cfg}
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.NamaPelapor == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "nama_pelapor is required",
		})
	}
	if req.JudulLaporan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "judul_laporan is required",
		})
	}

	var lostDate *time.Time
	if req.TanggalHilang != "" {
		parsed, err := time.Parse("2006-01-02", req.TanggalHilang)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "tanggal_hilang must be YYYY-MM-DD",
			})
		}
		lostDate = &parsed
	}

	report := models.Report{
		ReporterName: req.NamaPelapor,
		Contact:      req.KontakPelapor,
		Email:        req.EmailPelapor,
		Title:        req.JudulLaporan,
		Description:  req.Deskripsi,
		LostDate:     lostDate,
		LostLocation: req.LokasiHilang,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		CategoryID:   req.IDKategori,
		CityID:       req.IDKota,
		PhotoURL:     req.FotoURL,
	}

	created, err := h.reports.Create(c.Context(), &report, c.Cookies(CookieName))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create laporan",
		})
	}

	h.setReporterCookie(c, created.OwnerToken)

	return c.Status(fiber.StatusCreated).JSON(dto.ReportResponse{
		IDLaporan:    created.ID,
		TokenCookie:  created.OwnerToken,
		NamaPelapor:  created.ReporterName,
		JudulLaporan: created.Title,
		Status:       created.Status,
	})
}

func (h *ReportHandler) Mine(c *fiber.Ctx) error {
	details, err := h.reports.ListByToken(c.Context(), c.Cookies(CookieName))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch laporan",
		})
	}
	return c.JSON(details)
}

func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid laporan ID",
		})
	}

	detail, err := h.reports.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Laporan not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch laporan",
		})
	}
	return c.JSON(detail)
}

func (h *ReportHandler) MarkFound(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid laporan ID",
		})
	}

	token := c.Cookies(CookieName)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized: missing laporan_token cookie",
		})
	}

	if err := h.reports.MarkFound(c.Context(), uint(id), token); err != nil {
		if errors.Is(err, services.ErrNotFoundOrUnauthorized) {
			// Wrong id and wrong token answer identically.
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Laporan not found or unauthorized",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update laporan",
		})
	}

	return c.JSON(dto.ReportStatusResponse{IDLaporan: uint(id), Status: models.StatusFound})
}

func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid laporan ID",
		})
	}

	if err := h.reports.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Laporan not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete laporan",
		})
	}

	return c.JSON(dto.DeleteReportResponse{IDLaporan: uint(id), Deleted: true})
}

func (h *ReportHandler) List(c *fiber.Ctx) error {
	filter := dto.ReportFilter{
		Status:     c.Query("status"),
		CategoryID: uint(c.QueryInt("id_kategori")),
		ProvinceID: uint(c.QueryInt("id_provinsi")),
		CityID:     uint(c.QueryInt("id_kota")),
		Limit:      c.QueryInt("limit", services.DefaultListLimit),
	}

	details, err := h.reports.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list laporan",
		})
	}
	return c.JSON(details)
}

func (h *ReportHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.UploadResponse{
			Success: false, Message: "File gambar wajib diunggah",
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !storage.ValidImageType(contentType) {
		return c.JSON(dto.UploadResponse{
			Success: false, Message: "Hanya file gambar yang diizinkan",
		})
	}
	if fileHeader.Size > storage.MaxPhotoSize {
		return c.JSON(dto.UploadResponse{
			Success: false, Message: "Ukuran file tidak boleh lebih dari 5MB",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.UploadResponse{
			Success: false, Message: "Gagal membaca file",
		})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.UploadResponse{
			Success: false, Message: "Gagal membaca file",
		})
	}

	url, err := h.photos.Save(c.Context(), fileHeader.Filename, content, contentType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.UploadResponse{
			Success: false, Message: "Gagal upload file",
		})
	}

	return c.JSON(dto.UploadResponse{
		Success: true, URL: url, Message: "File berhasil diupload",
	})
}

// Logout expires the reporter cookie; the token itself stays valid
// server-side, so re-presenting it later still works.
func (h *ReportHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.cfg.SecureCookie,
	})
	return c.JSON(fiber.Map{"logged_out": true})
}

func (h *ReportHandler) setReporterCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		Expires:  time.Now().Add(cookieMaxAge),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.cfg.SecureCookie,
	})
}
