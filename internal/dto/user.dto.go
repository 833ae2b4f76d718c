package dto

import "time"

type UserDTO struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	StaffID   *string   `json:"staffId,omitempty"`
	StaffName string    `json:"staffName,omitempty"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
