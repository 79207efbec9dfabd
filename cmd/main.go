package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payments_tracker/internal/config"
	"payments_tracker/internal/handlers"
	"payments_tracker/internal/ports"
	"payments_tracker/internal/server"
	"payments_tracker/internal/services/backup"
	"payments_tracker/internal/store"
)

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.Init(setupCtx)

	st := store.New(cfg.WorkbookPath)
	log.Printf("[MAIN] workbook=%q rows=%d", cfg.WorkbookPath, len(st.Load()))

	var uploader ports.Uploader
	if cfg.Backup != nil {
		uploader = backup.New(cfg.Backup, cfg.BackupPrefix)
		log.Printf("[MAIN] backup mirror enabled bucket=%q", cfg.Backup.Bucket)
	}

	h := handlers.New(st, uploader)
	srv := server.NewServer(cfg.Port, h)

	log.Printf("[MAIN] listening on :%s", cfg.Port)
	if err := srv.Run(runCtx); err != nil {
		log.Fatal(err)
	}
}
