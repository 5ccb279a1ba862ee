package integration_test

import (
	"log/slog"
	"os"

	"github.com/cinetick/movie-ticket-booking/internal/app"
	"github.com/cinetick/movie-ticket-booking/internal/mailer"
	"github.com/cinetick/movie-ticket-booking/internal/payment"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	mockMailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		mockMailer,
		app.NewSessionManager(redisClient),
		decimal.RequireFromString(ticketPrice),
		payment.NewSimulatedProvider(),
	)

	return &TestApp{
		App:    application,
		DB:     db,
		Mailer: mockMailer,
	}, nil
}
