package main

import (
	"context"
	"net/http"
	"time"

	"overcooked-console/config"
	httpapi "overcooked-console/console-svc/internal/api/http"
	"overcooked-console/console-svc/internal/orders"
	"overcooked-console/console-svc/internal/service"
	"overcooked-console/console-svc/internal/session"
	"overcooked-console/console-svc/internal/storage"
	"overcooked-console/console-svc/internal/transport"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var _ httpapi.Backend = (*transport.Client)(nil)

// exportLocation resolves EXPORT_TIMEZONE, falling back to UTC.
func exportLocation(name string, log *logrus.Entry) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.WithError(err).WithField("timezone", name).Warn("unknown export timezone, using UTC")
		return time.UTC
	}
	return loc
}

func backendFactory(client *transport.Client) httpapi.BackendFactory {
	return func(token string) httpapi.Backend {
		return client.WithToken(token)
	}
}

func main() {
	// the ordering API expects prices as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()
	log := config.NewLogger("console-svc")

	rdb := config.MustInitRedis(log)
	defer rdb.Close()

	api := transport.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout}, log)
	sessions := session.NewManager(api, storage.NewSessionStore(rdb), cfg.SessionTTL)

	var (
		observers []orders.Observer
		audit     httpapi.AuditLog
	)

	if cfg.AuditEnabled {
		db := config.MustInitPostgres(log)
		defer db.Close()

		repo := storage.NewAuditRepository(db)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.WithError(err).Fatal("failed to prepare audit schema")
		}
		observers = append(observers, repo)
		audit = repo
	}

	if cfg.EventsEnabled {
		writer := config.NewKafkaWriter(cfg.OrderEventsTopic)
		defer writer.Close()
		observers = append(observers, storage.NewOrderEventPublisher(writer))
	}

	workspaces := httpapi.NewWorkspaces(backendFactory(api), exportLocation(cfg.ExportTimezone, log), log, observers...)
	handler := httpapi.NewHandler(sessions, workspaces, service.NewOrderQRGenerator(cfg.PublicURL), audit, log)

	log.WithField("api", cfg.APIBaseURL).
		WithField("audit", cfg.AuditEnabled).
		WithField("events", cfg.EventsEnabled).
		Info("console configured")
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler), log)
}
