package main

import (
	"context"
	"flag"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beacon-app/beacon-api/share/geojson"
	"github.com/beacon-app/beacon-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("beacon")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var geoJSONFile string
	flag.StringVar(&geoJSONFile, "f", "shelters.json", "path of the shelter GeoJSON file")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	mongoStore := store.NewMongoStore(client, viper.GetString("mongo.database"))

	if err := geojson.ImportShelters(ctx, mongoStore, geoJSONFile); err != nil {
		panic(err)
	}
}
