package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/beacon-app/beacon-api/api"
	"github.com/beacon-app/beacon-api/background"
	"github.com/beacon-app/beacon-api/external/assistant"
	"github.com/beacon-app/beacon-api/external/routing"
	"github.com/beacon-app/beacon-api/external/usgs"
	"github.com/beacon-app/beacon-api/observability"
	"github.com/beacon-app/beacon-api/overview"
	"github.com/beacon-app/beacon-api/store"
)

var (
	server    *api.Server
	refresher *background.HazardRefresher
	ormDB     *gorm.DB
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("beacon")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if refresher != nil {
			log.Info("Stopping hazard snapshot refresher")
			refresher.Stop()
		}

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	var err error
	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	beaconStore := store.NewBeaconStore(ormDB)
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	// Hazard feed, with the last good snapshot as the fallback
	usgsClient := usgs.NewClient(viper.GetString("usgs.endpoint"), httpClient)
	hazardSource := overview.WithFallback(usgsClient, mongoStore)
	aggregator := overview.NewAggregator(hazardSource, mongoStore)

	// Route provider
	mapClient, err := maps.NewClient(maps.WithAPIKey(viper.GetString("map.key")))
	if err != nil {
		log.Panic(err)
	}
	mapsRouter := routing.NewMapsRouter(mapClient)

	// Assistant
	assistantClient := assistant.NewClient(
		viper.GetString("openai.key"),
		viper.GetString("openai.model"))

	metrics := observability.NewMetrics()

	// Keep the hazard snapshot warm so the overview survives feed outages
	refresher = background.NewHazardRefresher(usgsClient, mongoStore, metrics)
	refreshInterval := viper.GetDuration("hazard.refresh_interval")
	if refreshInterval == 0 {
		refreshInterval = 5 * time.Minute
	}
	if err := refresher.Start(refreshInterval); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Started hazard snapshot refresher")

	// Init http server
	server = api.NewServer(
		beaconStore,
		mongoStore,
		aggregator,
		mapsRouter,
		assistantClient,
		metrics)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
