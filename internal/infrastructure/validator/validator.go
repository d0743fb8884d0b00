package validator

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
	"github.com/mikiasgoitom/Prompaty/internal/utils"
)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	registerDomainValidations(v)
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidateSlug checks that slug is lowercase ASCII words joined by single hyphens.
func (av *AppValidator) ValidateSlug(slug string) error {
	if err := av.validate.Var(slug, "required,max=120,slug"); err != nil {
		return fmt.Errorf("invalid slug %q: %w", slug, err)
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerDomainValidations(v)
	}
}

func registerDomainValidations(v *validator.Validate) {
	_ = v.RegisterValidation("slug", slugFL)
	_ = v.RegisterValidation("reaction", reactionFL)
}

func slugFL(fl validator.FieldLevel) bool {
	return utils.IsValidSlug(fl.Field().String())
}

func reactionFL(fl validator.FieldLevel) bool {
	return entity.ReactionType(fl.Field().String()).IsValid()
}
