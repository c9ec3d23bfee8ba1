package viewstate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Locally detected errors. They are shown like server errors but no call is made.
var (
	ErrDefaultPersona   = errors.New("기본 페르소나는 수정하거나 삭제할 수 없습니다.")
	ErrNoDocument       = errors.New("업로드할 파일을 선택해주세요.")
	ErrNothingStaged    = errors.New("생성할 이력서 정보가 없습니다.")
	ErrPasswordMismatch = errors.New("비밀번호가 일치하지 않습니다.")
)

// FormError lists the fields of a form that failed validation.
type FormError struct {
	Fields []string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// validateForm runs struct validation and reports failing fields by name.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &FormError{Fields: fields}
}
