package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HandleError пишет ошибку в ответ. Все, что не является AppError, превращается в 500
// без деталей. Логирование остается на вызывающей стороне.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
