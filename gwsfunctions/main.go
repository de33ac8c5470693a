package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is only there for local runs, absence is fine
	godotenv.Load()

	if err := initEnv(); err != nil {
		log.Fatalf("Bad environment: %v", err)
	}
	initLogger()

	deps := newDeps(env)

	if env.Production {
		gin.SetMode(gin.ReleaseMode)
		gin.DisableConsoleColor()
	}

	router := gin.New()

	if env.Production {
		router.Use(GinLogger())
	} else {
		router.Use(gin.Logger())
	}

	router.Use(gin.Recovery())

	registerRoutes(router, deps)

	runScripts(deps)

	router.Run(":8080")
}

func registerRoutes(router *gin.Engine, deps *Deps) {
	registerUserRoutes(router, deps)
	registerGroupRoutes(router, deps)
	registerLicenseRoutes(router, deps)
	registerLeaverRoutes(router, deps)
}
