package dto

type LoginResponse struct {
	Token      string `json:"token"`
	UserID     string `json:"userId"`
	TenantID   string `json:"tenantId"`
	TenantName string `json:"tenantName"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
}
