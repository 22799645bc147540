package request

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,min=5,max=50"`
	Email    string `json:"email" binding:"required,min=5,max=255,email"`
	Password string `json:"password" binding:"required,min=5,max=255"`
}
