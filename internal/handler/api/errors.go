package api

import (
	"net/http"

	"recipe-scheduler/internal/handler/httperr"
	"recipe-scheduler/internal/pkg/errs"
	"recipe-scheduler/internal/usecase/commands"
	"recipe-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgFutureDate         = "Please choose a future date"
	msgScheduleGone       = "Schedule no longer exists"
	msgAlreadyCompleted   = "Schedule is already completed"
	msgInvalidRecipe      = "Invalid recipe"
	msgInvalidRequest     = "Invalid request"
	msgInvalidID          = "Invalid schedule id"
	msgInvalidCursor      = "Invalid cursor"
	msgInvalidDevice      = "Invalid device token"
	msgUnauthorized       = "Unauthorized"
	msgSomethingWentWrong = "Something went wrong, please try again"
)

// abortWithUseCaseError maps use-case sentinels to a status; anything unrecognized is a 500
// whose message never carries the underlying cause.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.IsAny(err, commands.ErrInvalidScheduleDate, queries.ErrInvalidPreviewDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgFutureDate, nil)
	case errs.Is(err, commands.ErrInvalidRecipe):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRecipe, nil)
	case errs.Is(err, commands.ErrInvalidDeviceToken):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidDevice, nil)
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidCursor, nil)
	case errs.IsAny(err, commands.ErrScheduleNotFound, queries.ErrScheduleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgScheduleGone, nil)
	case errs.Is(err, commands.ErrScheduleCompleted):
		httperr.AbortWithError(c, http.StatusConflict, err, msgAlreadyCompleted, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgSomethingWentWrong, nil)
	}
}
