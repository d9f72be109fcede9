package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

func sendResponse(w http.ResponseWriter, payload any) {
	// note: w.Header after this, so we can call sendError
	b, err := json.Marshal(payload)
	if err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("in json.Marshal: %s", err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store") // do not cache (Browsers cache GET forever by default)
	w.Write(b)
}

func sendErrorResponse(w http.ResponseWriter, code int, message string) {
	logrus.Warnf("[!] %d: %s", code, message)
	// would prefer to use json.Marshal, but this avoids the need
	// to handle encoding errors arising from json.Marshal itself!
	payload := fmt.Sprintf("{\"error\":{\"code\":%d,\"message\":%q}}", code, message)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store") // do not cache (Browsers cache GET forever by default)
	w.WriteHeader(code)
	w.Write([]byte(payload))
}

func getOriginIP(r *http.Request) string {
	var originIP string

	// handle proxies
	if r.Header.Get("X-Forwarded-For") != "" {
		// If there are multiple IPs in X-Forwarded-For, take the first one
		originIP = strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0])
	} else {
		// otherwise just use the remote address
		originIP = strings.Split(r.RemoteAddr, ":")[0]
	}

	return originIP
}

// queryBool reads flags like ?rescan=true, a bare ?rescan counts as true.
func queryBool(r *http.Request, name string) (bool, error) {
	values, ok := r.URL.Query()[name]
	if !ok {
		return false, nil
	}
	if len(values) == 0 || values[0] == "" {
		return true, nil
	}
	return strconv.ParseBool(values[0])
}
