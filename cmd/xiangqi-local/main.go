package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"xiangqi/internal/engine"
	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
	"xiangqi/internal/storage"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "./web", "directory with index.html / js / svg")
	dbDir := flag.String("db", "", "badger directory for saved games (empty = memory only)")
	depth := flag.Int("depth", httpserver.DefaultDepth, "default AI search depth (ply)")
	browser := flag.Bool("browser", true, "open the default browser after start")
	flag.Parse()

	var store *storage.Store
	var err error
	if *dbDir != "" {
		store, err = storage.Open(*dbDir)
	} else {
		store, err = storage.OpenInMemory()
	}
	if err != nil {
		log.Fatalf("Failed to open game store: %v", err)
	}
	defer store.Close()

	h := httpserver.NewHandler(game.NewManager(store), engine.NewEngine(), *depth)
	srv := httpserver.NewServer(h, *webDir)

	log.Printf("listening on %s, serving static from %s, default depth %d", *addr, *webDir, *depth)

	if *browser {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
