package business

import "time"

// Defaults applied when a business is auto-created during owner registration.
const (
	DefaultName    = "Yeni İşletme"
	DefaultLogoURL = "https://cdn-icons-png.flaticon.com/512/3135/3135715.png"
)

type Business struct {
	ID             string
	Name           string
	Address        string
	Phone          string
	Email          string
	LogoURL        string
	OwnerAccountID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
