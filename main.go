package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"karondoran-server/internal/config"
	"karondoran-server/internal/consts"
	"karondoran-server/internal/db"
	"karondoran-server/internal/modules"
	"karondoran-server/internal/platform/blobstore"
	"karondoran-server/internal/platform/service"
	"karondoran-server/internal/router"

	"github.com/gin-gonic/gin"
)

func main() {
	configDir := flag.String("config", "config", "directory holding config.yaml")
	exportRoutes := flag.Bool("export", false, "write the route table to routes.json and exit")
	flag.Parse()

	config.InitConfig(*configDir)
	db.InitDB()
	cfg := config.Get()

	if err := checkStorageRoot(cfg.Storage.Root); err != nil {
		log.Fatalf("❌ %v", err)
	}
	blobs, err := blobstore.NewFilesystemStore(cfg.Storage.Root, cfg.Storage.PublicURLPrefix, cfg.Storage.PublicBaseURL, cfg.Storage.Buckets()...)
	if err != nil {
		log.Fatalf("❌ Cannot open blob storage: %v", err)
	}

	stores := modules.NewStores(db.DB)
	appService := service.NewAppService(stores.Settings)
	if err := appService.InitializeSettings(); err != nil {
		log.Fatalf("❌ Cannot initialize settings: %v", err)
	}
	appModules := modules.New(appService, stores, blobs, cfg.Storage, cfg.Upload)

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	if err := router.NewRouter(appModules, appService, blobs, cfg.Storage).Init(r); err != nil {
		log.Fatalf("❌ Cannot register routes: %v", err)
	}

	if *exportRoutes {
		if err := exportAPI(r, "routes.json"); err != nil {
			log.Fatalf("❌ Route export failed: %v", err)
		}
		log.Println("✅ Routes exported to routes.json")
		return
	}

	printWelcomeMessage(cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 Server listening on :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server failed: %s\n", err)
		}
	}()

	// wait for a signal, then give in-flight requests 5 seconds
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Forced shutdown: ", err)
	}
	if err := service.CloseRedisClient(); err != nil {
		log.Printf("⚠️ %v", err)
	}
	log.Println("✅ Server exited")
}

func printWelcomeMessage(cfg config.Config) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  Version  : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🗄️   Database : %s\n", cfg.Database.Type)
	fmt.Printf(" │   🖼️   Storage  : %s -> %s\n", cfg.Storage.Root, cfg.Storage.PublicURLPrefix)
	fmt.Printf(" │   🔥  Port     : %s\n", cfg.Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

type routeInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func exportAPI(r *gin.Engine, filename string) error {
	routes := r.Routes()
	exportList := make([]routeInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, routeInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	data, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// blob roots inside the working directory must live under one of these
var allowedStorageDirs = []string{"uploads", "public", "storage", "static", "tmp"}

// checkStorageRoot refuses a storage root that would serve the working
// directory or a source directory.
func checkStorageRoot(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve storage root: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	if absPath == cwd {
		return fmt.Errorf("storage root %q must not be the working directory", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}
	first := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedStorageDirs {
		if strings.EqualFold(first, allowed) {
			return nil
		}
	}
	return fmt.Errorf("storage root %q (resolved to %q) must be inside one of %v", path, filepath.ToSlash(rel), allowedStorageDirs)
}
