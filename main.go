package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	cartx "github.com/ordervoice/kiosk-agent/agent/cart"
	contractx "github.com/ordervoice/kiosk-agent/agent/contract"
	intentx "github.com/ordervoice/kiosk-agent/agent/intent"
	menux "github.com/ordervoice/kiosk-agent/agent/menu"
	orchestratorx "github.com/ordervoice/kiosk-agent/agent/orchestrator"
	reasonerx "github.com/ordervoice/kiosk-agent/agent/reasoner"
	toolx "github.com/ordervoice/kiosk-agent/agent/tool"
	configx "github.com/ordervoice/kiosk-agent/pkg/config"
	_ "github.com/ordervoice/kiosk-agent/pkg/logger/autoload"
	openrouterx "github.com/ordervoice/kiosk-agent/pkg/openrouter"
	serverx "github.com/ordervoice/kiosk-agent/server"
)

type AppConfig struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	DemoMode        bool          `envconfig:"DEMO_MODE" split_words:"true"`
	MenuDatabaseURL string        `envconfig:"MENU_DATABASE_URL" split_words:"true"`
	TaxRate         float64       `envconfig:"TAX_RATE" split_words:"true"`
	StartupTimeout  time.Duration `envconfig:"STARTUP_TIMEOUT" split_words:"true" default:"15s"`
}

func main() {
	appCfg := configx.MustLoad[AppConfig]("")

	ctx, cancel := context.WithTimeout(context.Background(), appCfg.StartupTimeout)
	defer cancel()

	catalog := buildCatalog(ctx, appCfg)
	store := buildStore(catalog)

	exec := toolx.NewExecutor(catalog, appCfg.TaxRate)
	matcher := intentx.New(exec)
	reasoner := buildReasoner()

	mode := orchestratorx.ModeOnline
	if appCfg.DemoMode {
		mode = orchestratorx.ModeOffline
	}

	orchestrator, err := orchestratorx.New(store, exec, matcher, reasoner,
		orchestratorx.Config{Mode: mode, TaxRate: appCfg.TaxRate})
	if err != nil {
		log.Fatal().Err(err).Msg("build orchestrator")
	}

	log.Info().
		Str("addr", appCfg.Addr).
		Str("mode", string(orchestrator.Mode())).
		Int("menuItems", len(catalog.Items())).
		Msg("kiosk agent listening")

	if err := http.ListenAndServe(appCfg.Addr, serverx.NewHandler(orchestrator).Router()); err != nil {
		log.Fatal().Err(err).Msg("http server")
	}
}

func buildCatalog(ctx context.Context, cfg *AppConfig) menux.Catalog {
	if cfg.MenuDatabaseURL == "" {
		return menux.NewStatic()
	}
	catalog, err := menux.NewPostgres(ctx, cfg.MenuDatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("load menu from postgres")
	}
	return catalog
}

func buildStore(catalog menux.Catalog) cartx.Store {
	redisCfg := configx.MustLoad[cartx.RedisConfig]("SESSION_REDIS")
	if redisCfg.URL == "" || redisCfg.Token == "" {
		log.Info().Msg("session redis not configured, using in-memory carts")
		return cartx.NewMemoryStore()
	}
	store, err := cartx.NewRedisStore(*redisCfg, catalog)
	if err != nil {
		log.Fatal().Err(err).Msg("build redis cart store")
	}
	return store
}

func buildReasoner() contractx.Reasoner {
	openRouterCfg := configx.MustLoad[openrouterx.Config]("OPENROUTER")
	client := openrouterx.NewClient(*openRouterCfg)
	if client == nil {
		log.Info().Msg("no reasoning service configured, running offline")
		return nil
	}
	r, err := reasonerx.New(client, *openRouterCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build reasoner")
	}
	return r
}
