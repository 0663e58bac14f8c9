package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Student number pattern - "STU" prefix or plain digits, 3 to 20 chars total
	StudentNumberPattern = `^[A-Z0-9]{3,20}$`

	// Password min length
	PasswordMinLength = 6
)

var studentNumberRegex = regexp.MustCompile(StudentNumberPattern)

// IsValidStudentNumber reports whether a student number matches the expected format.
func IsValidStudentNumber(number string) bool {
	return studentNumberRegex.MatchString(number)
}

// studentNumber is the validator.Func backing the "studentnumber" binding tag.
func studentNumber(fl validator.FieldLevel) bool {
	return IsValidStudentNumber(fl.Field().String())
}

// RegisterCustomRules registers custom validation rules with gin's binding
// validator so DTO binding tags can use them.
func RegisterCustomRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("studentnumber", studentNumber)
}
