package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractParamFromRequest retrieves a named path parameter from the request
// context and strips a trailing ".json" extension if present.
func ExtractParamFromRequest(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawValue := params.ByName(paramName)
	return strings.Split(rawValue, ".json")[0]
}
