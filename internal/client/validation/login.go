package validation

// Login validates the login form. Both fields are required; everything else
// is the backend's call.
func Login(id, password string) error {
	fe := FieldErrors{}
	if id == "" {
		fe["id"] = "ID is required"
	}
	if password == "" {
		fe["password"] = "Password is required"
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}
