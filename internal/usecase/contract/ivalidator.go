package usecasecontract

// IValidator checks user-supplied identifiers.
type IValidator interface {
	ValidateEmail(email string) error
	ValidateSlug(slug string) error
}
