package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	netconfd "github.com/dogeorg/netconfd/pkg"
	"github.com/dogeorg/netconfd/pkg/utils"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func RESTAPI(
	config netconfd.ServerConfig,
	networkManager netconfd.NetworkManager,
	log logrus.FieldLogger,
) api {
	a := api{
		mux:    http.NewServeMux(),
		config: config,
		nm:     networkManager,
		log:    utils.OrStandardLogger(log),
	}

	routes := map[string]http.HandlerFunc{
		"GET /system/network/list":         a.getNetwork,
		"GET /system/network/wifi/{iface}": a.getWirelessNetworks,
		"GET /system/version":              a.getVersion,
	}

	for p, h := range routes {
		a.mux.HandleFunc(p, a.logRequest(h))
	}
	a.log.Debugf("Loaded %d API routes", len(routes))

	return a
}

type api struct {
	mux    *http.ServeMux
	config netconfd.ServerConfig
	nm     netconfd.NetworkManager
	log    logrus.FieldLogger
}

func (t api) Handler() http.Handler {
	return cors.AllowAll().Handler(t.mux)
}

// Run serves until ctx is cancelled, then shuts the server down.
func (t api) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", t.config.Bind, t.config.Port),
		Handler:           t.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		t.log.Infof("REST API listening on %s", srv.Addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("REST API ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (t api) logRequest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.log.WithField("origin", getOriginIP(r)).Debugf("%s %s", r.Method, r.URL.Path)
		next(w, r)
	}
}
