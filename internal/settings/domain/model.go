package domain

// UserProfile identifies the operator shown on reports and in the
// header. Role is display-only and never user-editable.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AppSettings is the application branding configuration.
type AppSettings struct {
	AppName     string `json:"app_name"`
	CompanyName string `json:"company_name"`
}
