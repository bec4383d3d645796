package account

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
}
