package models

// Region is a city row with its province denormalized alongside, matching
// the wilayah reference table the reports join against.
type Region struct {
	CityID       uint   `gorm:"column:id_kota;primaryKey" json:"id_kota"`
	CityName     string `gorm:"column:nama_kota;size:100;not null" json:"nama_kota"`
	ProvinceID   uint   `gorm:"column:id_provinsi;not null;index" json:"id_provinsi"`
	ProvinceName string `gorm:"column:nama_provinsi;size:100;not null" json:"nama_provinsi"`
}

func (Region) TableName() string { return "wilayah" }

// Category is an item category (dompet, kunci, elektronik, ...).
type Category struct {
	ID   uint   `gorm:"column:id_kategori;primaryKey" json:"id_kategori"`
	Name string `gorm:"column:nama_kategori;size:100;not null" json:"nama_kategori"`
}

func (Category) TableName() string { return "kategori" }
