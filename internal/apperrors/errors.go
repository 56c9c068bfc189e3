package apperrors

import "errors"

// Терминальные ошибки домена. Хендлеры сопоставляют их с HTTP-статусами
// через errors.Is; всё остальное уходит как 500.
var (
	ErrNotFound           = errors.New("не найдено")
	ErrEmailTaken         = errors.New("адрес электронной почты уже зарегистрирован")
	ErrSlugTaken          = errors.New("slug уже занят")
	ErrAlreadySubscribed  = errors.New("этот email уже подписан")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrCategoryMissing    = errors.New("категория не существует")
)
