package dto

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminResponse struct {
	IDAdmin   uint   `json:"id_admin"`
	NamaAdmin string `json:"nama_admin"`
	Username  string `json:"username"`
}

type AdminLoginResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	Admin   AdminResponse `json:"admin"`
	Message string        `json:"message"`
}

type VerifyTokenRequest struct {
	Token string `json:"token"`
}

type VerifyTokenResponse struct {
	Valid    bool   `json:"valid"`
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
}

type CreateAdminRequest struct {
	NamaAdmin string `json:"nama_admin"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type CreateAdminResponse struct {
	Success bool          `json:"success"`
	Admin   AdminResponse `json:"admin"`
	Message string        `json:"message"`
}
