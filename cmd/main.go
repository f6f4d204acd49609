package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"storefront/config"
	"storefront/internal/pkg/cache"
	"storefront/internal/pkg/database"
	"storefront/internal/pkg/logger"
	"storefront/internal/pkg/middleware"
	"storefront/internal/pkg/token"
	"storefront/internal/session"

	// Camadas para Injeção de Dependências
	"storefront/internal/api/audit"
	"storefront/internal/api/auth"
	"storefront/internal/api/order"
	"storefront/internal/api/page"
	"storefront/internal/api/router"
	"storefront/internal/repository/accountrepo"
	"storefront/internal/repository/auditrepo"
	"storefront/internal/service/authservice"
	"storefront/internal/service/gateservice"
	"storefront/internal/service/orderservice"
)

func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando o gate do Storefront...")
	if err := godotenv.Load(); err != nil {
		// As variáveis podem vir do ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}
	appLog := logger.NewLogger(cfg.LogLevel)
	if zl, ok := appLog.(*logger.ZapLogger); ok {
		defer zl.Sync()
	}
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "session_store": cfg.SessionStore})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Cache (Redis): rate limiter e, opcionalmente, o store de sessão
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	defer cacheClient.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		if cfg.SessionStore == "redis" {
			appLog.Fatal("Redis indisponível e SESSION_STORE=redis.", err)
		}
		appLog.Warn("Redis indisponível; o rate limiter ficará inativo.", map[string]interface{}{"addr": cfg.RedisAddr})
	}
	cancelPing()

	// B. Banco de Dados (PostgreSQL): auditoria opcional
	var recorder middleware.AuditRecorder = auditrepo.NopRecorder{}
	var auditHandler *audit.Handler
	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao banco de dados.", err)
		}
		defer db.Close()

		auditRepo := auditrepo.NewAuditRepository(db, cfg.DBTimeout, appLog)
		recorder = auditRepo
		auditHandler = audit.NewHandler(auditRepo, appLog)
		appLog.Info("Conexão PostgreSQL estabelecida; auditoria do gate ativa.", nil)
	}

	// C. Store de sessão
	cookieOpts := session.CookieOptions{
		Name:   cfg.SessionCookieName,
		TTL:    cfg.SessionTTL,
		Secure: cfg.IsProduction(),
	}
	var store session.Store
	switch cfg.SessionStore {
	case "redis":
		store = session.NewRedisStore(cacheClient, cookieOpts, appLog)
	default:
		tokenSvc, err := token.NewService(cfg.SessionSecret, cfg.SessionTTL)
		if err != nil {
			appLog.Fatal("Falha ao inicializar o codec da sessão.", err)
		}
		store = session.NewCookieStore(tokenSvc, cookieOpts, appLog)
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	accountRepo := accountrepo.NewAccountRepository(cfg.AccountAPIURL, cfg.RemoteTimeout, appLog)
	appLog.Debug("Repositório de contas inicializado.", map[string]interface{}{"base_url": cfg.AccountAPIURL})

	gateSvc := gateservice.NewService(accountRepo, appLog)
	authSvc := authservice.NewService(accountRepo, appLog)
	orderSvc := orderservice.NewService()

	gate := middleware.NewGate(gateSvc, store, recorder, appLog)

	handlers := router.Handlers{
		Auth:  auth.NewHandler(authSvc, store, appLog),
		Page:  page.NewHandler(appLog),
		Order: order.NewHandler(orderSvc, appLog),
		Audit: auditHandler,
	}

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, gate, store, cacheClient, router.RateLimit{
		MaxRequests: cfg.RateLimitMaxRequests,
		Period:      cfg.RateLimitPeriod,
	}, appLog)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
