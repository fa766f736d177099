package controller

import (
	"errors"
	"net/http"

	"adoptar/internal/assets"
	"adoptar/internal/authz"
	"adoptar/internal/common"
	"adoptar/internal/controller/models"
)

var (
	ErrorMissingCacheConnection    = errors.New("missing_cache_connection")
	ErrorMissingDatabaseConnection = errors.New("missing_database_connection")
	ErrorMissingJwtSecret          = errors.New("missing_jwt_secret")
	ErrorMissingServiceLog         = errors.New("missing_service_log")
)

// sendModelError maps domain errors to their wire code and status. Any
// error without an explicit mapping becomes an opaque SERVER_ERROR so
// internals never leak to clients.
func sendModelError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, models.ErrorValidationFailed):
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", message, err.Error())
	case errors.Is(err, models.ErrorAnimalNotAvailable):
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "ANIMAL_NOT_AVAILABLE", message)
	case errors.Is(err, models.ErrorDuplicateEntry):
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "DUPLICATE_ERROR", message)
	case errors.Is(err, models.ErrorHasDependencies):
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "HAS_DEPENDENCIES", message)
	case errors.Is(err, models.ErrorNotFound):
		common.SendHttpFailResponse(w, r, http.StatusNotFound, "NOT_FOUND", message)
	case errors.Is(err, models.ErrorCredentialsAuthenticationFailed):
		common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "INVALID_CREDENTIALS", message)
	case errors.Is(err, models.ErrorOrganizationInactive):
		common.SendHttpFailResponse(w, r, http.StatusForbidden, "ORGANIZATION_INACTIVE", message)
	case errors.Is(err, authz.ErrorForbidden):
		common.SendHttpFailResponse(w, r, http.StatusForbidden, "FORBIDDEN", message)
	case errors.Is(err, authz.ErrorUnauthenticated):
		common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "NO_TOKEN", message)
	case errors.Is(err, assets.ErrorFileTooLarge):
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "FILE_TOO_LARGE", message)
	case errors.Is(err, assets.ErrorInvalidFileFormat):
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", message)
	case errors.Is(err, assets.ErrorNotFound):
		common.SendHttpFailResponse(w, r, http.StatusNotFound, "NOT_FOUND", message)
	default:
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "SERVER_ERROR", message)
	}
}
