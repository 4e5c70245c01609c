package dto

// CredentialsForm is posted by both the login and the registration pages.
type CredentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
