package mobile

import (
	"log"
	"net/http"

	"xiangqi/internal/engine"
	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
	"xiangqi/internal/storage"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// dbDir: directory for saved games; empty keeps games in memory
// depth: default AI search depth
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, dbDir string, depth int, port string) {
	var store *storage.Store
	var err error
	if dbDir != "" {
		store, err = storage.Open(dbDir)
	} else {
		store, err = storage.OpenInMemory()
	}
	if err != nil {
		log.Printf("Failed to open game store: %v", err)
		return
	}

	h := httpserver.NewHandler(game.NewManager(store), engine.NewEngine(), depth)
	srv := httpserver.NewServer(h, webDir)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		defer store.Close()
		if err := http.ListenAndServe("127.0.0.1:"+port, srv); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
