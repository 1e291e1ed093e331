package domain

// Admin is a regular admin account. Created and deleted by the master admin
// only; ownership of listings is tracked by email/id in CreatedBy fields.
type Admin struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      AdminRole `json:"role"`
	RoleLabel string    `json:"role_label"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// MasterAdmin is the single top-level account. Exactly one is expected to
// exist system-wide; the first-time-setup gate enforces that client side.
type MasterAdmin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Role      AdminRole `json:"role"`
	LoginTime string    `json:"login_time"`
	SessionID string    `json:"session_id"`
}
