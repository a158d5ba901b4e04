//go:build wireinject

//go:generate wire
package di

import (
	"github.com/Ruhan116/CLIR/pkg/di/config"
	shortcontext "github.com/Ruhan116/CLIR/pkg/di/context"
	kv_di "github.com/Ruhan116/CLIR/pkg/di/kv"
	logger_di "github.com/Ruhan116/CLIR/pkg/di/logger"
	searcher_di "github.com/Ruhan116/CLIR/pkg/di/searcher"
	searchHttp "github.com/Ruhan116/CLIR/pkg/http"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	searcher_di.New,
)

var searcherSet = wire.NewSet(
	defaultSet,
	NewSearcherService,
	NewSearchAPIServer,
)

func InitializeSearcherService() (*searchHttp.Server, func(), error) {

	panic(wire.Build(searcherSet))
}
