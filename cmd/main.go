package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	// Nossos pacotes de infraestrutura e utilitários
	"goloja/config"
	"goloja/internal/pkg/cache"
	"goloja/internal/pkg/database"
	"goloja/internal/pkg/logger"
	"goloja/internal/pkg/token"
	"goloja/internal/pkg/validation"

	// Camadas para Injeção de Dependências
	"goloja/internal/api/product" // Handlers
	"goloja/internal/api/router"  // Roteador central
	"goloja/internal/api/user"
	"goloja/internal/repository/productrepo" // Acesso a Dados
	"goloja/internal/repository/userrepo"
	"goloja/internal/service/productservice" // Lógica de Negócio
	"goloja/internal/service/userservice"
)

// @title GoLoja API
// @version 1.0
// @description API de usuários e produtos com autenticação por token.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env seguimos apenas com o ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	if err := run(); err != nil {
		log.Fatalf("GoLoja encerrado com erro: %v", err)
	}
}

func run() error {
	// 1. Configuração e Inicialização
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	var appLog logger.Logger
	if cfg.Environment == "development" {
		appLog = logger.NewDevelopmentLogger(cfg.LogLevel)
	} else {
		appLog = logger.NewLogger(cfg.LogLevel)
	}
	appLog.Info("⚡ Inicializando serviço GoLoja...", map[string]interface{}{"env": cfg.Environment})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL, appLog)
	if err != nil {
		return fmt.Errorf("falha ao conectar ao banco de dados: %w", err)
	}
	defer db.Close() // Fecha a conexão de DB ao sair
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). Sem Redis o cache cai para memória, exceto se os tokens dependem dele.
	var cacheClient cache.Client
	redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
	switch {
	case err == nil:
		defer redisClient.Close()
		cacheClient = redisClient
		appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	case cfg.TokenStore == config.TokenStoreRedis:
		return fmt.Errorf("TOKEN_STORE=redis exige Redis disponível: %w", err)
	default:
		redisClient.Close()
		cacheClient = cache.NewMemoryClient()
		appLog.Warn("Redis indisponível, usando cache em memória.", map[string]interface{}{"error": err.Error()})
	}

	// C. Registro de tokens
	var store token.Store
	if cfg.TokenStore == config.TokenStoreRedis {
		store = token.NewRedisStore(cacheClient)
	} else {
		store = token.NewMemoryStore()
	}
	authority := token.NewAuthority(store, token.NewJWTGenerator(cfg.JWTSecretKey))
	appLog.Debug("Autoridade de Tokens inicializada.", map[string]interface{}{"store": cfg.TokenStore})

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	validator := validation.New()

	productRepo := productrepo.NewProductRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, appLog)
	productSvc := productservice.NewService(productRepo, validator, appLog)
	productHandler := product.NewHandler(productSvc, appLog)
	appLog.Debug("Camadas de Produto inicializadas.", nil)

	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, appLog)
	userSvc := userservice.NewService(userRepo, authority, validator, appLog)
	userHandler := user.NewHandler(userSvc, authority, appLog)
	appLog.Debug("Camadas de Usuário inicializadas.", nil)

	// 4. Configuração do Roteador/Servidor
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(productHandler, userHandler, authority, appLog),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLog.Info("Servidor GoLoja ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("servidor falhou: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			appLog.Error("Desligamento do servidor forçado.", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
	return nil
}
