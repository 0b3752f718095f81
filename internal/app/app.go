package app

import (
	"log/slog"
	"os"

	"github.com/happydoodle/core/internal/config"
	http_battle "github.com/happydoodle/core/internal/delivery/http/battle"
	http_init "github.com/happydoodle/core/internal/delivery/http/init"
	http_room "github.com/happydoodle/core/internal/delivery/http/room"
	http_vote "github.com/happydoodle/core/internal/delivery/http/vote"
	ws_room "github.com/happydoodle/core/internal/delivery/ws/room"
	infra_pg_init "github.com/happydoodle/core/internal/infra/postgres/init"
	infra_postgres_room "github.com/happydoodle/core/internal/infra/postgres/room"
	infra_postgres_vote "github.com/happydoodle/core/internal/infra/postgres/vote"
	infra_redis_init "github.com/happydoodle/core/internal/infra/redis/init"
	infra_redis_linkcache "github.com/happydoodle/core/internal/infra/redis/linkcache"
	infra_redis_voterset "github.com/happydoodle/core/internal/infra/redis/voterset"
	infra_s3 "github.com/happydoodle/core/internal/infra/s3"
	"github.com/happydoodle/core/internal/infra/s3mock"
	usecase_battle "github.com/happydoodle/core/internal/usecase/battle"
	usecase_room "github.com/happydoodle/core/internal/usecase/room"
	usecase_vote "github.com/happydoodle/core/internal/usecase/vote"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	var snapshotRepository usecase_battle.SnapshotRepository
	if os.Getenv("AWS_ACCESS_KEY_ID") == "" {
		snapshotRepository = s3mock.New()
	} else {
		s3conn := infra_s3.MustEstablishConn()
		repo, err := infra_s3.New(cfg.S3.Bucket, s3conn, cfg.S3.Prefix, cfg.S3.PublicURL)
		if err != nil {
			panic(err)
		}
		snapshotRepository = repo
	}

	roomRepository := infra_postgres_room.New(pgConn)
	voteRepository := infra_postgres_vote.New(pgConn)
	voterSet := infra_redis_voterset.New(redisConn, "voters")
	linkCache := infra_redis_linkcache.New(redisConn, "battle_links")

	hub := ws_room.NewHub(slog.Default())

	roomUC := usecase_room.New(roomRepository)
	voteUC := usecase_vote.New(voteRepository, voterSet, hub)
	battleUC := usecase_battle.New(snapshotRepository, linkCache)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_room.New(roomUC, cfg.Game.BaseURL))
	controllerPool.Add(http_vote.New(voteUC))
	controllerPool.Add(http_battle.New(battleUC))
	controllerPool.Add(ws_room.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
