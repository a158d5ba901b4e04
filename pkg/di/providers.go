package di

import (
	"context"

	searchHttp "github.com/Ruhan116/CLIR/pkg/http"
	"github.com/Ruhan116/CLIR/pkg/http/http-router/controllers"
	"github.com/Ruhan116/CLIR/pkg/http/usecases"

	"go.uber.org/zap"
)

func NewSearcherService(log *zap.Logger, searcher usecases.Searcher) controllers.SearchService {
	return usecases.New(log, searcher)
}

func NewSearchAPIServer(ctx context.Context, log *zap.Logger,
	searchService controllers.SearchService) (*searchHttp.Server, error) {
	api := searchHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, searchService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}
