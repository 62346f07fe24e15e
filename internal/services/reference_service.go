package services

import (
	"errors"
	"fmt"

	"github.com/dabson254/lapor-hilang/internal/dto"
	"github.com/dabson254/lapor-hilang/internal/models"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

// ReferenceService serves the static wilayah and kategori lookup tables.
type ReferenceService struct {
	db *gorm.DB
}

func NewReferenceService(db *gorm.DB) *ReferenceService {
	return &ReferenceService{db: db}
}

func (s *ReferenceService) ListProvinces() ([]dto.ProvinceResponse, error) {
	var provinces []dto.ProvinceResponse
	err := s.db.Model(&models.Region{}).
		Distinct("id_provinsi", "nama_provinsi").
		Order("nama_provinsi ASC").
		Scan(&provinces).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list provinces: %w", err)
	}
	return provinces, nil
}

func (s *ReferenceService) ListCities(provinceID uint) ([]dto.CityResponse, error) {
	var cities []dto.CityResponse
	err := s.db.Model(&models.Region{}).
		Select("id_kota", "nama_kota").
		Where("id_provinsi = ?", provinceID).
		Order("nama_kota ASC").
		Scan(&cities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

func (s *ReferenceService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id_kategori ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *ReferenceService) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id_kategori = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}
