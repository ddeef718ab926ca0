package models

type APIResponse struct {
	Data    interface{} `json:"data"`
	Message interface{} `json:"message"`
}

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
