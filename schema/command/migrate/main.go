package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/beacon-app/beacon-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("beacon")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS beacon`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO beacon").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.NeighborEdge{},
		&schema.CommunityResource{},
	).Error; err != nil {
		panic(err)
	}

	// the neighbor graph never links an account to itself
	if err := db.Exec(`ALTER TABLE neighbor_edges DROP CONSTRAINT IF EXISTS neighbor_edge_no_self_loop`).Error; err != nil {
		panic(err)
	}
	if err := db.Exec(`ALTER TABLE neighbor_edges ADD CONSTRAINT neighbor_edge_no_self_loop CHECK (account_number <> neighbor_number)`).Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
