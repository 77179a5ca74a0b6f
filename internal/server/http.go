package server

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"

	"Emberwick/internal/game"
)

//go:embed web/index.html
var htmlIndex []byte

func startServer(h *game.Hub, addr string) {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(htmlIndex)
	})
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(h, w, r)
	})
	if err := http.ListenAndServe(addr, nil); err != nil {
		slog.Error("http server stopped", "err", err)
		os.Exit(1)
	}
}
