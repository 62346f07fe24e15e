package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type ProvinceResponse struct {
	IDProvinsi   uint   `json:"id_provinsi"`
	NamaProvinsi string `json:"nama_provinsi"`
}

type CityResponse struct {
	IDKota   uint   `json:"id_kota"`
	NamaKota string `json:"nama_kota"`
}
