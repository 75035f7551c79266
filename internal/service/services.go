package service

import (
	"github.com/checkdaily/checkdaily/internal/auth"
	"github.com/checkdaily/checkdaily/internal/config"
	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/internal/store"
)

type Services struct {
	AuthService    AuthService
	CheckService   CheckService
	ProfileService ProfileService
	StatsService   StatsService
}

func NewServices(repos *store.Repositories, cfg config.Auth, logger *logger.Logger) *Services {
	hasher := auth.NewHasher(cfg.BcryptCost)
	codec := auth.NewTokenCodec(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration)

	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, hasher, codec, logger),
		CheckService:   NewCheckService(repos.CheckRepository, logger),
		ProfileService: NewProfileService(repos.UserRepository, hasher, logger),
		StatsService:   NewStatsService(repos.CheckRepository, logger),
	}
}
