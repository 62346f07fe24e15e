package database

import (
	"log/slog"

	"github.com/dabson254/lapor-hilang/internal/models"
	"gorm.io/gorm"
)

var defaultCategories = []string{
	"Dompet", "Kunci", "Elektronik", "Dokumen", "Tas", "Perhiasan", "Pakaian", "Lainnya",
}

type regionSeed struct {
	provinceID   uint
	provinceName string
	cityName     string
}

var defaultRegions = []regionSeed{
	{1, "Aceh", "Banda Aceh"},
	{1, "Aceh", "Sabang"},
	{1, "Aceh", "Lhokseumawe"},
	{1, "Aceh", "Langsa"},
	{2, "Sumatera Utara", "Medan"},
	{2, "Sumatera Utara", "Binjai"},
	{2, "Sumatera Utara", "Tebing Tinggi"},
	{2, "Sumatera Utara", "Pematangsiantar"},
	{3, "Sumatera Barat", "Padang"},
	{3, "Sumatera Barat", "Bukittinggi"},
	{3, "Sumatera Barat", "Pariaman"},
	{3, "Sumatera Barat", "Solok"},
	{4, "Riau", "Pekanbaru"},
	{4, "Riau", "Dumai"},
	{5, "Jambi", "Jambi"},
	{5, "Jambi", "Sungai Penuh"},
	{6, "Sumatera Selatan", "Palembang"},
	{6, "Sumatera Selatan", "Lubuklinggau"},
	{6, "Sumatera Selatan", "Prabumulih"},
	{7, "Bengkulu", "Bengkulu"},
	{8, "Lampung", "Bandar Lampung"},
	{8, "Lampung", "Metro"},
	{9, "DKI Jakarta", "Jakarta Pusat"},
	{9, "DKI Jakarta", "Jakarta Utara"},
	{9, "DKI Jakarta", "Jakarta Barat"},
	{9, "DKI Jakarta", "Jakarta Selatan"},
	{9, "DKI Jakarta", "Jakarta Timur"},
	{10, "Jawa Barat", "Bandung"},
	{10, "Jawa Barat", "Bekasi"},
	{10, "Jawa Barat", "Bogor"},
	{10, "Jawa Barat", "Depok"},
	{10, "Jawa Barat", "Cimahi"},
	{11, "Jawa Tengah", "Semarang"},
	{11, "Jawa Tengah", "Surakarta"},
	{11, "Jawa Tengah", "Magelang"},
	{12, "DI Yogyakarta", "Yogyakarta"},
	{13, "Jawa Timur", "Surabaya"},
	{13, "Jawa Timur", "Malang"},
	{13, "Jawa Timur", "Kediri"},
	{13, "Jawa Timur", "Madiun"},
	{14, "Banten", "Serang"},
	{14, "Banten", "Tangerang"},
	{14, "Banten", "Tangerang Selatan"},
	{14, "Banten", "Cilegon"},
	{15, "Bali", "Denpasar"},
	{16, "Kalimantan Barat", "Pontianak"},
	{16, "Kalimantan Barat", "Singkawang"},
	{17, "Kalimantan Timur", "Samarinda"},
	{17, "Kalimantan Timur", "Balikpapan"},
	{18, "Sulawesi Selatan", "Makassar"},
	{18, "Sulawesi Selatan", "Parepare"},
	{19, "Sulawesi Utara", "Manado"},
	{19, "Sulawesi Utara", "Bitung"},
	{20, "Papua", "Jayapura"},
}

// SeedReferenceData fills the wilayah and kategori tables when empty.
// Existing rows are left untouched.
func SeedReferenceData(db *gorm.DB) error {
	var regionCount int64
	if err := db.Model(&models.Region{}).Count(&regionCount).Error; err != nil {
		return err
	}
	if regionCount == 0 {
		regions := make([]models.Region, 0, len(defaultRegions))
		for _, r := range defaultRegions {
			regions = append(regions, models.Region{
				CityName:     r.cityName,
				ProvinceID:   r.provinceID,
				ProvinceName: r.provinceName,
			})
		}
		if err := db.CreateInBatches(regions, 50).Error; err != nil {
			return err
		}
		slog.Info("seeded region reference data", "cities", len(regions))
	}

	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		categories := make([]models.Category, 0, len(defaultCategories))
		for _, name := range defaultCategories {
			categories = append(categories, models.Category{Name: name})
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
		slog.Info("seeded category reference data", "categories", len(categories))
	}

	return nil
}
