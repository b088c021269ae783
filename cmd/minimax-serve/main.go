package main

import (
	"flag"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/nudro/adversarial-mini-max-game/internal/sim"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	width := flag.Int("width", 800, "canvas width in pixels")
	height := flag.Int("height", 600, "canvas height in pixels")
	resolution := flag.Int("resolution", 5, "pixels per landscape cell")
	speed := flag.Int("speed", 30, "simulation steps per second")
	seed := flag.Int64("seed", 1337, "base seed; each session offsets it")
	flag.Parse()

	sessions := make(map[string]*session)
	var sessionsMu sync.Mutex
	var sessionCount int64

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		defer conn.Close()

		cfg := sim.DefaultConfig()
		cfg.Width = *width
		cfg.Height = *height
		cfg.Resolution = *resolution

		sessionsMu.Lock()
		sessionCount++
		cfg.Seed = *seed + sessionCount
		sessionsMu.Unlock()

		s, err := newSession(cfg, *speed, conn)
		if err != nil {
			log.Printf("session create failed: %v", err)
			return
		}

		sessionsMu.Lock()
		sessions[s.id.String()] = s
		total := len(sessions)
		sessionsMu.Unlock()
		log.Printf("session %s attached (%d active)", s.id, total)

		go s.run()

		for {
			var msg controlMsg
			if err := conn.ReadJSON(&msg); err != nil {
				break
			}
			select {
			case s.ctrl <- msg:
			default:
				// A client flooding controls loses the extras rather
				// than blocking the read loop.
			}
		}

		close(s.done)
		sessionsMu.Lock()
		delete(sessions, s.id.String())
		total = len(sessions)
		sessionsMu.Unlock()
		log.Printf("session %s detached (%d active)", s.id, total)
	})

	http.Handle("/", http.FileServer(http.Dir("static")))

	log.Printf("serving on %s", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatalf("http serve error: %v", err)
	}
}
