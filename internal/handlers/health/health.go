package health

import (
    "encoding/json"
    "net/http"
    "time"
)

type status struct {
    Status    string    `json:"status"`
    Instance  string    `json:"instance"`
    Timestamp time.Time `json:"timestamp"`
}

// Handler returns a liveness handler reporting the instance name.
func Handler(instance string) http.HandlerFunc {
    return func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "application/json")
        w.WriteHeader(http.StatusOK)
        json.NewEncoder(w).Encode(status{
            Status:    "ok",
            Instance:  instance,
            Timestamp: time.Now().UTC(),
        })
    }
}
