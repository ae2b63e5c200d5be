package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/config"
	repo "github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/repository"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/pkg/helpers"
)

// app-level container to share constructed components of the reference
// session API; the router auto-wires modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	userRepo    repo.UserRepository
	redisClient *redis.Client
	jwtManager  *helpers.JWTManager
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.Load()
	}
	return cfg
}
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger {
	if logger == nil {
		logger = helpers.NewNopLogger()
	}
	return logger
}
func SetUserRepo(r repo.UserRepository) { userRepo = r }
func GetUserRepo() repo.UserRepository  { return userRepo }
func SetRedis(r *redis.Client)          { redisClient = r }
func GetRedis() *redis.Client           { return redisClient }
func SetJWT(m *helpers.JWTManager)      { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager == nil {
		c := GetConfig()
		jwtManager = helpers.NewJWTManager(c.JWTSessionSecret, c.SessionTTL, c.AppName)
	}
	return jwtManager
}

// Reset clears every singleton; tests use it between engines.
func Reset() {
	cfg, logger, userRepo, redisClient, jwtManager = nil, nil, nil, nil, nil
}
