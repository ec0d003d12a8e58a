package entity

// User is the profile stored for an authenticated account.
// Its ID is always the subject id issued by the auth provider.
type User struct {
	ID      string `json:"userID"`
	Name    string `json:"fullName"`
	Email   string `json:"email"`
	Phone   string `json:"phoneNumber"`
	Address string `json:"address"`
}
