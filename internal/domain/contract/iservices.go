package contract

// IUUIDGenerator issues unique identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}

// IHasher verifies admin passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

// IRandomGenerator produces the numeric suffix used for slug suggestions.
type IRandomGenerator interface {
	Intn(n int) (int, error)
}
