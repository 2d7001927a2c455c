package validator

import (
	"context"
	"net/mail"
	"strings"

	"app/internal/domain/model"
	auth "app/internal/usecase/auth_usecase"
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() auth.RegisterValidator {
	return &authValidator{}
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, in auth.RegisterUserInput) error {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	// 必須チェック
	if name == "" || email == "" || in.Password == "" || in.Role == "" {
		return auth.ErrInvalidInput
	}

	if !isValidEmailFormat(email) {
		return auth.ErrInvalidInput
	}

	// tipoは閉じた列挙
	if _, ok := model.ParseRole(in.Role); !ok {
		return auth.ErrInvalidRole
	}

	return nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
