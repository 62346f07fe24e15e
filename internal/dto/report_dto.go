package dto

type CreateReportRequest struct {
	NamaPelapor   string   `json:"nama_pelapor"`
	KontakPelapor string   `json:"kontak_pelapor"`
	EmailPelapor  string   `json:"email_pelapor"`
	JudulLaporan  string   `json:"judul_laporan"`
	Deskripsi     string   `json:"deskripsi"`
	LokasiHilang  string   `json:"lokasi_hilang"`
	TanggalHilang string   `json:"tanggal_hilang"` // YYYY-MM-DD
	IDKota        *uint    `json:"id_kota"`
	IDKategori    *uint    `json:"id_kategori"`
	FotoURL       string   `json:"foto_url"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// ReportResponse is the creation response; the owner token is echoed in the
// body in addition to the cookie so non-browser clients can round-trip it.
type ReportResponse struct {
	IDLaporan    uint   `json:"id_laporan"`
	TokenCookie  string `json:"token_cookie"`
	NamaPelapor  string `json:"nama_pelapor"`
	JudulLaporan string `json:"judul_laporan"`
	Status       string `json:"status"`
}

// ReportDetail is the joined read model. Lokasi is computed: city+province
// when the region resolves, otherwise the raw free-text location.
type ReportDetail struct {
	IDLaporan     uint   `json:"id_laporan"`
	NamaPelapor   string `json:"nama_pelapor"`
	JudulLaporan  string `json:"judul_laporan"`
	KontakPelapor string `json:"kontak_pelapor,omitempty"`
	EmailPelapor  string `json:"email_pelapor,omitempty"`
	Deskripsi     string `json:"deskripsi,omitempty"`
	Status        string `json:"status"`
	Kategori      string `json:"kategori_nama,omitempty"`
	Lokasi        string `json:"lokasi,omitempty"`
	LokasiHilang  string `json:"lokasi_hilang,omitempty"`
	TanggalHilang string `json:"tanggal_hilang,omitempty"`
	FotoURL       string `json:"foto_url,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

type ReportStatusResponse struct {
	IDLaporan uint   `json:"id_laporan"`
	Status    string `json:"status"`
}

type DeleteReportResponse struct {
	IDLaporan uint `json:"id_laporan"`
	Deleted   bool `json:"deleted"`
}

// ReportFilter is the admin list filter set; zero values mean "not applied".
type ReportFilter struct {
	Status     string
	CategoryID uint
	ProvinceID uint
	CityID     uint
	Limit      int
}

type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Message string `json:"message"`
}

type CleanupResponse struct {
	Success  bool  `json:"success"`
	Affected int64 `json:"affected"`
	Logged   bool  `json:"logged"`
}
