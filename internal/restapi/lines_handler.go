package restapi

import (
	"net/http"

	"metrobus.islamabad.org/internal/models"
	"metrobus.islamabad.org/internal/utils"
)

func (api *RestAPI) linesHandler(w http.ResponseWriter, r *http.Request) {
	var lines []models.LineInfo
	for _, code := range api.Directory.Lines() {
		info, ok, err := api.Planner.LineInfo(code)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		if ok {
			lines = append(lines, info)
		}
	}

	api.sendResponse(w, r, models.NewListResponse(lines))
}

func (api *RestAPI) lineHandler(w http.ResponseWriter, r *http.Request) {
	code := utils.ExtractParamFromRequest(r, "code")

	line, ok := models.ParseMetroLine(code)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	info, ok, err := api.Planner.LineInfo(line)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(info))
}
