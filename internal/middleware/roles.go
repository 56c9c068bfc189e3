package middleware

import (
	"net/http"
)

// OnlyRole — явная проверка роли. Сейчас роль одна ("admin"), но проверка
// всё равно стоит на admin-группе, чтобы добавление новых ролей не давало
// тихой эскалации.
func OnlyRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := r.Context().Value(ContextRole)
			userRole, ok := value.(string)
			if !ok || userRole != role {
				http.Error(w, "Доступ запрещён", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
