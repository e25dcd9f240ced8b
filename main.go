package main

import (
	"log"
	"net/http"
	"os"

	"github.com/raflidev/go-fixmart/app/cmd"
	"github.com/raflidev/go-fixmart/app/configs"
	"github.com/raflidev/go-fixmart/app/routes"
	"github.com/raflidev/go-fixmart/app/services"
	"github.com/raflidev/go-fixmart/app/utils/sessions"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	rdb, err := configs.OpenRedis()
	if err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Println("✅ Redis connected.")

	sessions.Init(env.AppAuthKey, env.AppEncKey)
	log.Println("✅ Session store initialized.")

	router, statsService := routes.NewRouter(db, rdb)

	snapshotJob, err := services.NewSnapshotJob(statsService, env.SnapshotSpec, env.SnapshotTZ)
	if err != nil {
		log.Fatal("Snapshot job setup failed:", err)
	}
	if err := snapshotJob.Start(); err != nil {
		log.Fatal("Snapshot job start failed:", err)
	}
	defer snapshotJob.Stop()
	log.Printf("✅ Daily stats snapshot scheduled (%s, %s).", env.SnapshotSpec, env.SnapshotTZ)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
