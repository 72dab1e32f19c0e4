package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/pkg/auth"
)

// Auth требует Bearer токен и кладёт вызывающего в контекст
// Подпись не проверяется, токен проверит бэкенд клиники при проксировании.
// Кэш данных дня разделён по токенам, поэтому чужой токен не получит закэшированный день
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			handlers.RespondUnauthorized(w)
			return
		}

		principal, err := auth.ParsePrincipal(token)
		if err != nil {
			handlers.RespondUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}
