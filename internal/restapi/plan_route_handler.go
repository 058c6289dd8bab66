package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"metrobus.islamabad.org/internal/models"
)

// planRouteHandler plans single-route connections between two named stops.
// Malformed request bodies are a caller error; an absent connection is a
// successful response with an empty plan list.
func (api *RestAPI) planRouteHandler(w http.ResponseWriter, r *http.Request) {
	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"request body must be valid JSON"},
		})
		return
	}

	if err := api.validate.Struct(req); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			api.serverErrorResponse(w, r, err)
			return
		}

		fieldErrors := make(map[string][]string)
		for _, fieldErr := range err.(validator.ValidationErrors) {
			field := fieldErr.Field()
			fieldErrors[field] = append(fieldErrors[field],
				fmt.Sprintf("Invalid field value for field %q.", field))
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	plans, err := api.Planner.Plan(req)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if len(plans) == 0 {
		api.sendJSON(w, r, http.StatusOK, models.PlanResponse{
			Success:    false,
			Message:    "No routes found between the specified locations. Please check the stop names and try again.",
			RoutePlans: []models.RoutePlan{},
		})
		return
	}

	api.sendJSON(w, r, http.StatusOK, models.PlanResponse{
		Success:    true,
		Message:    fmt.Sprintf("Found %d route(s) from %s to %s", len(plans), req.Origin, req.Destination),
		RoutePlans: plans,
	})
}
