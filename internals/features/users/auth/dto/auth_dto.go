// file: internals/features/users/auth/dto/auth_dto.go
package dto

/* =========================================================
   REQUEST
   ========================================================= */

type LoginCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ScreenSize struct {
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`
}

// LoginRequest mirrors the web app's login payload: credentials plus the
// screen dimensions recorded on failed attempts.
type LoginRequest struct {
	User       LoginCredentials `json:"user" validate:"required"`
	ScreenSize ScreenSize       `json:"screenSize"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

// EmailStatusResponse is the /login/:email probe result. The flag
// combination tells the login screen which flow to start.
type EmailStatusResponse struct {
	FirstName *string `json:"first_name"`
	Email     *string `json:"email"`
	Exists    bool    `json:"exists"`
	SSO       bool    `json:"sso"`
	Invited   bool    `json:"invited"`
	Expired   bool    `json:"expired"`
	Language  string  `json:"language,omitempty"`
}
