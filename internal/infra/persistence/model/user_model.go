package model

// UserModel is the node stored under users/<userID>.
type UserModel struct {
	UserID      string `json:"userID"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}
