package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"expensetracker/config"
	"expensetracker/database"
	"expensetracker/router"
	"expensetracker/service"
	"expensetracker/store"
)

// @title Expense Management API
// @version 1.0
// @description 记账演示 API：按 ID 管理消费记录，或按日期整体替换某日的消费记录
// @host localhost:8001
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8001 或 :8001")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("expensetracker v1.0.0")
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	config.PrintConfig()

	s, err := openStore(cfg)
	if err != nil {
		log.Fatalf("存储初始化失败: %v", err)
	}

	if cfg.Storage.SeedSample {
		if err := store.SeedSample(context.Background(), s); err != nil {
			log.Fatalf("写入示例数据失败: %v", err)
		}
	}

	r := router.SetupRouter(cfg, service.NewExpenseService(s))

	log.Printf("==========================================")
	log.Printf("  Expense Management API 已启动")
	log.Printf("==========================================")
	log.Printf("  API接口:  http://localhost%s/expenses/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("==========================================")

	ln, err := net.Listen("tcp", cfg.Server.Port)
	if err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(&http.Server{Handler: r}, ln, sigChan, shutdownTimeout); err != nil {
		log.Fatalf("服务器运行失败: %v", err)
	}
	log.Println("服务器已退出")
}

const shutdownTimeout = 10 * time.Second

// serve 在 ln 上提供服务，收到 stop 信号后优雅关闭。
// 只有在 Shutdown 完成（进行中的请求处理完毕或超时）后才返回，避免按日期替换被中途打断。
func serve(srv *http.Server, ln net.Listener, stop <-chan os.Signal, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		sig := <-stop
		log.Printf("收到退出信号: %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		done <- srv.Shutdown(ctx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-done; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.Storage.Driver != config.StorageDatabase {
		return store.NewMemoryStore(), nil
	}
	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, err
	}
	return store.NewGormStore(db), nil
}
