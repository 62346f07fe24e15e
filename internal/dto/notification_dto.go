package dto

type NotificationResponse struct {
	IDNotifikasi uint   `json:"id_notifikasi"`
	IDLaporan    *uint  `json:"id_laporan"`
	Pesan        string `json:"pesan"`
	StatusBaca   bool   `json:"status_baca"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type MarkReadResponse struct {
	IDNotifikasi uint `json:"id_notifikasi"`
	StatusBaca   bool `json:"status_baca"`
}
