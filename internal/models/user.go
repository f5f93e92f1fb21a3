package models

// User is a registered submitter. Credential is never serialized back to a
// client and is stripped before the user is handed to request handlers.
type User struct {
	UserID     string `json:"user_id" gorm:"primaryKey;column:user_id"`
	Username   string `json:"username"`
	Credential string `json:"-"`
}
