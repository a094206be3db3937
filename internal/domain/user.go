package domain

// User is the record returned by the auth service after a successful login.
type User struct {
	ID   string `json:"identifier"`
	Name string `json:"name"`
}

// RegistrationForm is the credential buffer: transient storage for
// user-entered auth fields. Sensitive fields must not outlive a
// successful login or registration.
type RegistrationForm struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Document string `json:"document"`
	Address  string `json:"address"`
	Card     string `json:"card"`
}

// Clear wipes every field.
func (f *RegistrationForm) Clear() {
	*f = RegistrationForm{}
}
