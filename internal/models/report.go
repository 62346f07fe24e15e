package models

import "time"

// Report statuses. The original database schema uses Indonesian values,
// kept here so existing rows and the frontend stay compatible.
const (
	StatusActive  = "Aktif"
	StatusFound   = "Selesai"
	StatusDeleted = "Dihapus"
)

// Report is a lost-item report (laporan) filed by an anonymous reporter.
// OwnerToken binds the report to the reporter's browser cookie; it is set
// once at creation and never reassigned.
type Report struct {
	ID           uint       `gorm:"column:id_laporan;primaryKey" json:"id_laporan"`
	ReporterName string     `gorm:"column:nama_pelapor;size:100;not null" json:"nama_pelapor"`
	Contact      string     `gorm:"column:kontak_pelapor;size:100" json:"kontak_pelapor,omitempty"`
	Email        string     `gorm:"column:email_pelapor;size:255" json:"email_pelapor,omitempty"`
	Title        string     `gorm:"column:judul_laporan;size:150;not null" json:"judul_laporan"`
	Description  string     `gorm:"column:deskripsi;type:text" json:"deskripsi,omitempty"`
	LostDate     *time.Time `gorm:"column:tanggal_hilang;type:date" json:"tanggal_hilang,omitempty"`
	LostLocation string     `gorm:"column:lokasi_hilang;size:255" json:"lokasi_hilang,omitempty"`
	Latitude     *float64   `gorm:"column:latitude;type:decimal(10,8)" json:"latitude,omitempty"`
	Longitude    *float64   `gorm:"column:longitude;type:decimal(11,8)" json:"longitude,omitempty"`
	CategoryID   *uint      `gorm:"column:id_kategori;index" json:"id_kategori,omitempty"`
	CityID       *uint      `gorm:"column:id_kota;index" json:"id_kota,omitempty"`
	PhotoURL     string     `gorm:"column:foto_url;type:text" json:"foto_url,omitempty"`
	Status       string     `gorm:"column:status;size:20;not null;default:'Aktif';index" json:"status"`
	OwnerToken   string     `gorm:"column:token_cookie;size:64;not null;index" json:"-"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Report) TableName() string { return "laporan" }
