package auth

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	RegisterRequest struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"password_confirmation"`
		Phone           string `json:"phone_number"`
		Type            string `json:"type"`

		// Required when Type is "trainer".
		Specializations string `json:"specializations"`
		Certifications  string `json:"certifications"`
		Bio             string `json:"bio"`
	}
)
