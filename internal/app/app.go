package app

import (
	"github.com/cinematch/core/internal/config"
	http_auth "github.com/cinematch/core/internal/delivery/http/auth"
	http_discover "github.com/cinematch/core/internal/delivery/http/discover"
	http_init "github.com/cinematch/core/internal/delivery/http/init"
	http_match "github.com/cinematch/core/internal/delivery/http/match"
	http_auth_middleware "github.com/cinematch/core/internal/delivery/http/middleware/auth"
	http_proxy "github.com/cinematch/core/internal/delivery/http/proxy"
	http_watchlist "github.com/cinematch/core/internal/delivery/http/watchlist"
	infra_postgres_cache "github.com/cinematch/core/internal/infra/postgres/cache"
	infra_pg_init "github.com/cinematch/core/internal/infra/postgres/init"
	infra_postgres_profile "github.com/cinematch/core/internal/infra/postgres/profile"
	infra_postgres_watchlist "github.com/cinematch/core/internal/infra/postgres/watchlist"
	infra_genre_cache "github.com/cinematch/core/internal/infra/redis/genres"
	infra_redis_init "github.com/cinematch/core/internal/infra/redis/init"
	infra_session_cache "github.com/cinematch/core/internal/infra/redis/session"
	infra_tmdb "github.com/cinematch/core/internal/infra/tmdb"
	service_auth "github.com/cinematch/core/internal/service/auth"
	service_suggest "github.com/cinematch/core/internal/service/suggest"
	usecase_discovery "github.com/cinematch/core/internal/usecase/discovery"
	usecase_match "github.com/cinematch/core/internal/usecase/match"
	usecase_proxy "github.com/cinematch/core/internal/usecase/proxy"
	usecase_watchlist "github.com/cinematch/core/internal/usecase/watchlist"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	upstream := infra_tmdb.New(cfg.TMDB)

	cacheRepository := infra_postgres_cache.New(pgConn)
	watchlistRepository := infra_postgres_watchlist.New(pgConn)
	profileRepository := infra_postgres_profile.New(pgConn)

	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	genreCache := infra_genre_cache.New(redisConn, "genre_cache", usecase_discovery.FreshnessWindow)

	proxyUC := usecase_proxy.New(upstream)
	discoveryUC := usecase_discovery.New(cacheRepository, proxyUC, genreCache)
	watchlistUC := usecase_watchlist.New(watchlistRepository)
	matchUC := usecase_match.New(watchlistRepository, profileRepository)

	authService := service_auth.New(profileRepository, sessionCache, cfg.Auth.SessionTTL)
	suggestService := service_suggest.New(profileRepository, cfg.Suggest.IdleDelay, cfg.Suggest.Limit)

	authMiddleware := http_auth_middleware.New(authService)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_auth.New(authService, authMiddleware))
	controllerPool.Add(http_proxy.New(proxyUC))
	controllerPool.Add(http_discover.New(discoveryUC))
	controllerPool.Add(http_watchlist.New(watchlistUC, authMiddleware))
	controllerPool.Add(http_match.New(matchUC, suggestService, authMiddleware))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
