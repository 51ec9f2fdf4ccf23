package domain

import "time"

// User is the aggregate owned by the user API. CPF, Email and PhoneNumber
// hold plaintext in memory and ciphertext at rest; the confidentiality codec
// converts between the two on every read and write. Because the stored
// values are ciphertext, CPF/e-mail uniqueness cannot be a database
// constraint; it is enforced by decrypting and scanning all users at
// registration time.
type User struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	CPF         string    `json:"cpf"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
