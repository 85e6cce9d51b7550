package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"
	router "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/http"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/notifier"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	var n notifier.Notifier = notifier.NewLog()
	if env.MQURL != "" {
		mq, err := notifier.NewAMQP(env.MQURL, env.MQExchange)
		if err != nil {
			log.Printf("warning: AMQP notifier unavailable, falling back to log: %v", err)
		} else {
			defer mq.Close()
			n = mq
		}
	}

	// Router (Gin engine)
	r := router.NewRouter(env, n)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening at http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
