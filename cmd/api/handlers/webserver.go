package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/seqdash/seqdash/pkg/log"
	"github.com/seqdash/seqdash/pkg/source"
	"go.uber.org/zap"
)

// The one upstream client shared by every handler.
var recordSource *source.Client

func Init(client *source.Client) {
	recordSource = client
}

func setHeaders(w http.ResponseWriter, contentType string) {

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff") // MIME sniffing
	w.Header().Set("X-Frame-Options", "SAMEORIGIN")     // Clickjacking
	w.Header().Set("Referrer-Policy", "no-referrer-when-downgrade")
}

func returnJSON(w http.ResponseWriter, r *http.Request, i interface{}) {

	setHeaders(w, "application/json")

	var err error
	var b []byte

	switch v := i.(type) {
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		b, err = json.Marshal(i)
		if err != nil {
			log.ErrS(err)
			return
		}
	}

	_, err = w.Write(b)
	if err != nil && !strings.Contains(err.Error(), "write: broken pipe") {
		log.ErrS(err)
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable"`
}

// returnFetchError surfaces an upstream failure as a banner-able payload. No
// automatic retry happens server side; the client offers a retry action.
func returnFetchError(w http.ResponseWriter, r *http.Request, err error) {

	log.Err("source fetch failed", zap.Error(err), zap.String("path", r.URL.Path))

	setHeaders(w, "application/json")
	w.WriteHeader(http.StatusBadGateway)

	b, _ := json.Marshal(errorResponse{Error: "upstream fetch failed", Retryable: true})
	_, _ = w.Write(b)
}
