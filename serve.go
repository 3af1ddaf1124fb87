package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	wi "github.com/vibeflow-io/web-api/handlers/index"
	wrat "github.com/vibeflow-io/web-api/handlers/rating"
	wrec "github.com/vibeflow-io/web-api/handlers/recommend"
	sta "github.com/vibeflow-io/web-api/handlers/static"
	wt "github.com/vibeflow-io/web-api/handlers/trailer"
	wwl "github.com/vibeflow-io/web-api/handlers/watchlist"
	"github.com/vibeflow-io/web-api/services/common"
	"github.com/vibeflow-io/web-api/services/gemini"
	"github.com/vibeflow-io/web-api/services/kv"
	"github.com/vibeflow-io/web-api/services/rating"
	"github.com/vibeflow-io/web-api/services/recommend"
	sess "github.com/vibeflow-io/web-api/services/session"
	"github.com/vibeflow-io/web-api/services/view"
	"github.com/vibeflow-io/web-api/services/watchlist"
	w "github.com/vibeflow-io/web-api/services/web"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = cs.RegisterPprofFlags(c.Flags)
	c.Flags = cs.RegisterPGFlags(c.Flags)
	c.Flags = cs.RegisterRedisClientFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = common.RegisterFlags(c.Flags)
	c.Flags = gemini.RegisterFlags(c.Flags)
	c.Flags = kv.RegisterFlags(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting HTTP Client
	cl := http.DefaultClient

	var servers []cs.Servable

	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Pprof
	pprof := cs.NewPprof(c)
	if pprof != nil {
		servers = append(servers, pprof)
		defer pprof.Close()
	}

	// Setting KV Store
	store, closeStore, err := makeStore(c)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}

	// Setting Watchlist Store
	wls := watchlist.New(store)

	// Setting Rating Store
	rts := rating.New(store)

	// Setting Gemini Api
	gapi := gemini.New(c, cl)

	// Setting Recommendation Client
	var rc *recommend.Client
	if gapi != nil {
		rc = recommend.New(gapi)
	}

	// Setting View Manager
	vm := view.NewManager()

	// Setting Gin
	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.String(common.DomainFlag)},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: false,
	}))

	// Setting Session
	sess.RegisterHandler(c, r)

	// Setting IndexHandler
	wi.RegisterHandler(r)

	// Setting Static
	sta.RegisterHandler(r)

	// Setting RecommendHandler
	if rc != nil {
		wrec.RegisterHandler(r, rc, vm, wls, rts)
	} else {
		log.Warn("gemini api key not set, recommendations disabled")
	}

	// Setting WatchlistHandler
	wwl.RegisterHandler(r, wls, rts)

	// Setting RatingHandler
	wrat.RegisterHandler(r, rts)

	// Setting TrailerHandler
	wt.RegisterHandler(r)

	// Setting Web
	web := w.New(c, r)
	servers = append(servers, web)
	defer web.Close()

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}

func makeStore(c *cli.Context) (kv.Store, func(), error) {
	switch kv.Backend(c) {
	case kv.BackendBadger:
		s, err := kv.NewBadger(kv.Dir(c))
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case kv.BackendRedis:
		redis := cs.NewRedisClient(c)
		s := kv.NewRedis(redis)
		if s == nil {
			return nil, nil, errors.New("redis not configured")
		}
		return s, redis.Close, nil
	case kv.BackendPG:
		if err := pgMigrate(c); err != nil {
			return nil, nil, err
		}
		pg := cs.NewPG(c)
		s := kv.NewPG(pg)
		if s == nil {
			return nil, nil, errors.New("pg not configured")
		}
		return s, pg.Close, nil
	case kv.BackendMemory:
		return kv.NewMemory(), nil, nil
	}
	return nil, nil, errors.Errorf("unknown store backend %v", kv.Backend(c))
}
