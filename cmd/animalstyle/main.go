package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/zulem090/animal-style/internal/config"
	"github.com/zulem090/animal-style/internal/logger"
	"github.com/zulem090/animal-style/internal/migration"
	"github.com/zulem090/animal-style/internal/server"
	"github.com/zulem090/animal-style/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
