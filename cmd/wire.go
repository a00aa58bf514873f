package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/bnema/zclarity/internal/adapters/config"
	"github.com/bnema/zclarity/internal/adapters/i18n"
	filestore "github.com/bnema/zclarity/internal/adapters/store/file"
	"github.com/bnema/zclarity/internal/application"
	"github.com/bnema/zclarity/internal/engine"
)

type app struct {
	controller *application.Controller
	settings   config.Settings
	msgs       i18n.Messages
}

func wireApp() (*app, error) {
	settings, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	store := filestore.NewStore(settings.StoragePath)
	controller := application.NewController(engine.New(nil, nil), store)
	controller.Load()

	return &app{
		controller: controller,
		settings:   settings,
		msgs:       i18n.For(settings.Locale),
	}, nil
}
