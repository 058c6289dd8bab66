package restapi

import (
	"net/http"

	"metrobus.islamabad.org/internal/models"
	"metrobus.islamabad.org/internal/utils"
)

func (api *RestAPI) stationHandler(w http.ResponseWriter, r *http.Request) {
	name := utils.ExtractParamFromRequest(r, "name")

	if err := utils.ValidateStopName(name); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"name": {err.Error()},
		})
		return
	}

	station := api.Directory.Station(name)
	if station == nil {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(station))
}
