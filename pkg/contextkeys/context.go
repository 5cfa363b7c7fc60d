package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ, по которому в context лежит *gorm.DB (пул или транзакция)
	DBContextKey = contextKey("db")

	// UserIDKey - ключ аутентифицированного пользователя в gin.Context
	UserIDKey = contextKey("userID")
)
