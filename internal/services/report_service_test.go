package services

import (
	"testing"
	"time"
)

func strptr(s string) *string { return &s }

func TestDisplayLocation(t *testing.T) {
	tests := []struct {
		name     string
		city     *string
		province *string
		freeText string
		want     string
	}{
		{
			name:     "city and province resolved",
			city:     strptr("Bandung"),
			province: strptr("Jawa Barat"),
			freeText: "dekat alun-alun",
			want:     "Bandung, Jawa Barat",
		},
		{
			name:     "city without province",
			city:     strptr("Bandung"),
			province: nil,
			freeText: "dekat alun-alun",
			want:     "Bandung",
		},
		{
			name:     "unresolved region falls back to free text",
			city:     nil,
			province: nil,
			freeText: "dekat alun-alun",
			want:     "dekat alun-alun",
		},
		{
			name:     "empty city string treated as unresolved",
			city:     strptr(""),
			province: strptr("Jawa Barat"),
			freeText: "stasiun",
			want:     "stasiun",
		},
		{
			name:     "nothing resolvable yields empty, not an error",
			city:     nil,
			province: nil,
			freeText: "",
			want:     "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := displayLocation(tc.city, tc.province, tc.freeText); got != tc.want {
				t.Errorf("displayLocation() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReportRowToDetail(t *testing.T) {
	lost := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC)

	row := reportRow{
		IDLaporan:     42,
		NamaPelapor:   "Ana",
		JudulLaporan:  "Lost wallet",
		Deskripsi:     "dompet coklat",
		TanggalHilang: &lost,
		LokasiHilang:  "halte bus",
		Status:        "Aktif",
		CreatedAt:     created,
		NamaKategori:  strptr("Dompet"),
		NamaKota:      strptr("Depok"),
		NamaProvinsi:  strptr("Jawa Barat"),
	}

	d := row.toDetail()
	if d.IDLaporan != 42 {
		t.Errorf("id = %d, want 42", d.IDLaporan)
	}
	if d.TanggalHilang != "2026-07-14" {
		t.Errorf("tanggal_hilang = %q, want 2026-07-14", d.TanggalHilang)
	}
	if d.CreatedAt != "2026-07-15T09:30:00Z" {
		t.Errorf("created_at = %q", d.CreatedAt)
	}
	if d.Kategori != "Dompet" {
		t.Errorf("kategori = %q, want Dompet", d.Kategori)
	}
	if d.Lokasi != "Depok, Jawa Barat" {
		t.Errorf("lokasi = %q, want resolved region", d.Lokasi)
	}
	if d.LokasiHilang != "halte bus" {
		t.Errorf("lokasi_hilang = %q, want raw free text preserved", d.LokasiHilang)
	}
}

func TestReportRowToDetail_OptionalFieldsAbsent(t *testing.T) {
	row := reportRow{
		IDLaporan:    1,
		NamaPelapor:  "Budi",
		JudulLaporan: "Kunci motor",
		Status:       "Aktif",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	d := row.toDetail()
	if d.TanggalHilang != "" {
		t.Errorf("tanggal_hilang = %q, want empty for null lost date", d.TanggalHilang)
	}
	if d.Kategori != "" {
		t.Errorf("kategori = %q, want empty", d.Kategori)
	}
	if d.Lokasi != "" {
		t.Errorf("lokasi = %q, want empty", d.Lokasi)
	}
}
