package listing

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Handler builds the listing service routes: a liveness line at the root and
// the vehicle listing, both unauthenticated.
func Handler(store *Store) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Car Dealership API Running"))
	})

	mux.HandleFunc("/api/vehicles", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		vehicles, err := store.AllVehicles(r.Context())
		if err != nil {
			zap.S().Errorw("vehicle listing query failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(vehicles)
	})

	return mux
}
