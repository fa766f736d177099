package controller

import (
	"fmt"
	"io"
	"net/http"

	"adoptar/internal/assets"
	"adoptar/internal/common"

	"github.com/gorilla/mux"
)

func registerUploadRoutes(opts RouteRegistrationOpts) {
	requiresAuth := getRouteAuther(opts.ServiceLogs)

	routes := opts.Router.PathPrefix("/upload").Subrouter()
	routes.Handle("", requiresAuth(http.HandlerFunc(handleUploadImageV1))).Methods(http.MethodPost)
	routes.Handle("/{publicId}", requiresAuth(http.HandlerFunc(handleDeleteImageV1))).Methods(http.MethodDelete)
}

// handleUploadImageV1 accepts a multipart form with an `imagen` field
// and forwards it to the image host.
func handleUploadImageV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	if assetsClient == nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "SERVER_ERROR", "image uploads are not enabled")
		return
	}

	if err := r.ParseMultipartForm(assets.MaxFileSizeBytes); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "FILE_TOO_LARGE", "failed to parse the uploaded file")
		return
	}
	file, header, err := r.FormFile("imagen")
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "NO_FILE", "failed to receive a file in the imagen field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, assets.MaxFileSizeBytes+1))
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read the uploaded file")
		return
	}

	output, err := assetsClient.Upload(assets.UploadOpts{
		Data:     data,
		Filename: header.Filename,
	})
	if err != nil {
		sendModelError(w, r, err, "failed to upload the image")
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("uploaded image[%s]", output.PublicId))

	common.SendHttpSuccessResponse(w, r, http.StatusCreated, output)
}

type handleDeleteImageV1Output struct {
	PublicId     string `json:"public_id"`
	IsSuccessful bool   `json:"isSuccessful"`
}

func handleDeleteImageV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	if assetsClient == nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "SERVER_ERROR", "image uploads are not enabled")
		return
	}

	publicId := assets.PublicIdFromPath(mux.Vars(r)["publicId"])
	if err := assetsClient.Destroy(publicId); err != nil {
		sendModelError(w, r, err, "failed to delete the image")
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("deleted image[%s]", publicId))

	common.SendHttpSuccessResponse(w, r, http.StatusOK, handleDeleteImageV1Output{
		PublicId:     publicId,
		IsSuccessful: true,
	})
}
