package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validator provides pre-network validation for admin and reader
// submissions. Validation failures never reach storage; they surface as
// field-keyed errors the UI can localize.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// NewsForm carries the required fields of a news editor submission.
type NewsForm struct {
	Title      string
	Summary    string
	Content    string
	CategoryID string
	Author     string
}

// ValidateNewsForm checks the editor's required fields.
func (v *Validator) ValidateNewsForm(f *NewsForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&f.Summary,
			validation.Required.Error("summary_required"),
		),
		validation.Field(&f.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&f.CategoryID,
			validation.Required.Error("category_required"),
		),
		validation.Field(&f.Author,
			validation.Required.Error("author_required"),
		),
	)
}

// ValidateCategoryName checks a category manager submission.
func (v *Validator) ValidateCategoryName(name string) error {
	return validation.Validate(name,
		validation.Required.Error("name_required"),
	)
}

// CommentForm carries a reader comment submission.
type CommentForm struct {
	NewsID string
	Name   string
	Text   string
}

// ValidateCommentForm checks a reader comment before it is stored.
func (v *Validator) ValidateCommentForm(f *CommentForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.NewsID,
			validation.Required.Error("news_id_required"),
		),
		validation.Field(&f.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&f.Text,
			validation.Required.Error("text_required"),
		),
	)
}

// SignupForm carries the first-admin signup submission.
type SignupForm struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// ValidateSignupForm checks the bootstrap signup fields, including the
// password confirmation match.
func (v *Validator) ValidateSignupForm(f *SignupForm) error {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password_required"),
		),
	)
	if err != nil {
		return err
	}

	if f.Password != f.ConfirmPassword {
		return validation.Errors{
			"confirm_password": validation.NewError("password_mismatch", "passwords do not match"),
		}
	}
	return nil
}

// LoginForm carries a login submission.
type LoginForm struct {
	Email    string
	Password string
}

// ValidateLoginForm checks the login fields before any storage call.
func (v *Validator) ValidateLoginForm(f *LoginForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Email,
			validation.Required.Error("email_required"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password_required"),
		),
	)
}

// FieldErrors flattens ozzo validation errors into a field-to-reason map
// for JSON responses.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			fields[field] = fieldErr.Error()
		}
	}
	return fields
}

// IsValidationError reports whether err came from a validation rule.
func IsValidationError(err error) bool {
	_, ok := err.(validation.Errors)
	return ok
}
