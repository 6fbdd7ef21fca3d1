package validator

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"fitness-platform-api/internal/domain/user"
	"fitness-platform-api/internal/interface/api/rest/dto/auth"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	maxNameLen  = 255
	maxPhoneLen = 20

	maxSpecializationsLen = 500
	maxCertificationsLen  = 500
	maxBioLen             = 1000
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))
	name := strings.TrimSpace(r.Name)
	phone := strings.TrimSpace(r.Phone)

	if name == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs["name"] = "name is too long"
	}

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if msg := passwordPolicy(r.Password); msg != "" {
		errs["password"] = msg
	} else if r.Password != r.PasswordConfirm {
		errs["password_confirmation"] = "password confirmation does not match"
	}

	if phone != "" && utf8.RuneCountInString(phone) > maxPhoneLen {
		errs["phone_number"] = "phone number is too long"
	}

	switch r.Type {
	case user.TypeUser:
	case user.TypeTrainer:
		if strings.TrimSpace(r.Specializations) == "" {
			errs["specializations"] = "specializations are required for trainers"
		} else if utf8.RuneCountInString(r.Specializations) > maxSpecializationsLen {
			errs["specializations"] = "specializations are too long"
		}
		if strings.TrimSpace(r.Certifications) == "" {
			errs["certifications"] = "certifications are required for trainers"
		} else if utf8.RuneCountInString(r.Certifications) > maxCertificationsLen {
			errs["certifications"] = "certifications are too long"
		}
		if strings.TrimSpace(r.Bio) == "" {
			errs["bio"] = "bio is required for trainers"
		} else if utf8.RuneCountInString(r.Bio) > maxBioLen {
			errs["bio"] = "bio is too long"
		}
	default:
		errs["type"] = "type must be user or trainer"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// passwordPolicy mirrors the signup rules: length plus mixed case, a
// digit and a symbol.
func passwordPolicy(password string) string {
	if strings.TrimSpace(password) == "" {
		return "password is required"
	}
	if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		return "password length must be 8-72 characters"
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower {
		return "password must contain upper and lower case letters"
	}
	if !hasDigit {
		return "password must contain a number"
	}
	if !hasSymbol {
		return "password must contain a symbol"
	}

	return ""
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
