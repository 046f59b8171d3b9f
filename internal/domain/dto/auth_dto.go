package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RegisterResponse struct {
	Success bool `json:"success"`
}

type UserInfo struct {
	Email           string `json:"email"`
	Plan            string `json:"plan"`
	VideosProcessed int64  `json:"videosProcessed"`
}

type LoginResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
}
