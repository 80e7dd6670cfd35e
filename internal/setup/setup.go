package setup

import (
	"time"

	"github.com/diskusi-dev/diskusi/internal/config"
	"github.com/diskusi-dev/diskusi/internal/handler"
	"github.com/diskusi-dev/diskusi/internal/jwt"
	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/storage/pg"
	"github.com/diskusi-dev/diskusi/internal/usecase"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

// Dependencies holds everything wired at process startup. Use cases get
// their repositories here, by constructor, resolved exactly once.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.Private.JwtKey, cfg.Public.JwtTTL*time.Second)
	sanitizer := utils.NewSanitizer()

	postThread := usecase.NewPostThreadUseCase(storage, sanitizer)
	addComment := usecase.NewAddCommentUseCase(storage, storage, sanitizer)
	deleteComment := usecase.NewDeleteCommentUseCase(storage, storage)
	threadDetails := usecase.NewGetThreadDetailsUseCase(storage, storage)

	h := handler.New(postThread, addComment, deleteComment, threadDetails, storage)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}, nil
}
