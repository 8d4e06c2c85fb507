package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PhoneNumber  string   `db:"phone_number"`
	PasswordHash string   `db:"password_hash"`
	Role         UserRole `db:"role"`
}
