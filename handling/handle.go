package handling

import (
	"errors"
	"favour_crochet_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleError writes the response matching err. Unknown errors are logged and become a 500
// carrying msg; known ones are answered without logging.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	var ve *lib.ValidationError
	switch {
	case errors.As(err, &ve):
		return gecho.BadRequest(w, gecho.WithMessage("error.validation"), gecho.WithData(ve), gecho.Send())
	case errors.Is(err, lib.ErrNotFound):
		return gecho.NotFound(w, gecho.WithMessage("error.notFound"), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		return gecho.Conflict(w, gecho.WithMessage("error.conflict"), gecho.Send())
	case errors.Is(err, lib.ErrMissingToken), errors.Is(err, lib.ErrInvalidToken), errors.Is(err, lib.ErrExpiredToken):
		return gecho.Unauthorized(w, gecho.WithMessage("error.unauthorized"), gecho.Send())
	case errors.Is(err, lib.ErrForbidden):
		return gecho.Forbidden(w, gecho.WithMessage("error.forbidden"), gecho.Send())
	}

	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))
	return gecho.InternalServerError(w, gecho.WithMessage(msg), gecho.Send())
}
