package main

import (
	"crypto/tls"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/RAJAT9988/news-publisher/backend/api/handler"
	"github.com/RAJAT9988/news-publisher/backend/api/middleware"
	"github.com/RAJAT9988/news-publisher/backend/api/route"
	"github.com/RAJAT9988/news-publisher/backend/common"
	"github.com/RAJAT9988/news-publisher/backend/model"
)

func main() {
	flag.Parse()
	if *common.PrintVersion {
		fmt.Println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelpFlag {
		printHelp()
		os.Exit(0)
	}

	common.SetupGinLog()
	if err := common.LoadConfig(); err != nil {
		common.FatalLog(err)
	}
	common.SysLog("News Publisher " + common.Version + " started in " + common.Mode + " mode")

	if common.Mode != common.ModeDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := model.InitStore(); err != nil {
		common.FatalLog(err)
	}

	// Missing or unreadable TLS material is a startup error, not a request
	// time surprise.
	if _, err := tls.LoadX509KeyPair(common.CertFile, common.KeyFile); err != nil {
		common.FatalLog("failed to load TLS material: " + err.Error())
	}

	handler.RegisterValidations()

	server := gin.Default()
	server.Use(middleware.RequestId())
	server.Use(middleware.CORS())
	if common.EnableGzip {
		server.Use(middleware.GzipDecode())
		server.Use(middleware.GzipEncode())
	}
	route.SetRouter(server)

	setupSignalHandler()

	port := strconv.Itoa(*common.Port)
	common.SysLog("Server listening on port: " + port)
	if err := server.RunTLS(":"+port, common.CertFile, common.KeyFile); err != nil {
		common.FatalLog("failed to start server: " + err.Error())
	}
}

func setupSignalHandler() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-quit
		common.SysLog("received signal " + sig.String() + ", shutting down")
		os.Exit(0)
	}()
}

func printHelp() {
	fmt.Println("News Publisher " + common.Version)
	fmt.Println("An HTTPS news CRUD service with image uploads, backed by a JSON file.")
	fmt.Println()
	fmt.Println("Usage:")
	flag.PrintDefaults()
}
