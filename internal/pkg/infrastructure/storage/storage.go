package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows = errors.New("no rows in result set")
	ErrNoID   = errors.New("data contains no id")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS threshold_config (
			key 		TEXT 	NOT NULL,
			value 		NUMERIC NOT NULL,
			unit 		TEXT 	NOT NULL DEFAULT '',
			description TEXT 	NULL,
			created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_threshold_config PRIMARY KEY (key)
		);

		CREATE TABLE IF NOT EXISTS rack_threshold_overrides (
			rack_id 	TEXT 	NOT NULL,
			key 		TEXT 	NOT NULL,
			value 		NUMERIC NOT NULL,
			unit 		TEXT 	NOT NULL DEFAULT '',
			description TEXT 	NULL,
			created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_rack_threshold_overrides PRIMARY KEY (rack_id, key)
		);

		CREATE TABLE IF NOT EXISTS active_alerts (
			alert_id 		TEXT 	NOT NULL,
			pdu_id 			TEXT 	NOT NULL,
			metric_type 	TEXT 	NOT NULL,
			alert_reason 	TEXT 	NOT NULL,
			severity 		TEXT 	NOT NULL,
			value 			NUMERIC NOT NULL,
			threshold 		NUMERIC NOT NULL,
			rack_id 		TEXT 	NOT NULL,
			chain 			TEXT 	NULL,
			node 			TEXT 	NULL,
			site 			TEXT 	NULL,
			dc 				TEXT 	NULL,
			country 		TEXT 	NULL,
			gw_name 		TEXT 	NULL,
			gw_ip 			TEXT 	NULL,
			started_at 		timestamp with time zone NOT NULL,
			last_updated_at timestamp with time zone NOT NULL,
			uuid_open 		TEXT 	NULL,
			CONSTRAINT pkey_active_alerts PRIMARY KEY (pdu_id, metric_type, alert_reason)
		);

		CREATE TABLE IF NOT EXISTS alert_history (
			alert_id 		 TEXT 	 NOT NULL,
			pdu_id 			 TEXT 	 NOT NULL,
			metric_type 	 TEXT 	 NOT NULL,
			alert_reason 	 TEXT 	 NOT NULL,
			severity 		 TEXT 	 NOT NULL,
			value 			 NUMERIC NOT NULL,
			threshold 		 NUMERIC NOT NULL,
			rack_id 		 TEXT 	 NOT NULL,
			chain 			 TEXT 	 NULL,
			node 			 TEXT 	 NULL,
			site 			 TEXT 	 NULL,
			dc 				 TEXT 	 NULL,
			country 		 TEXT 	 NULL,
			gw_name 		 TEXT 	 NULL,
			gw_ip 			 TEXT 	 NULL,
			started_at 		 timestamp with time zone NOT NULL,
			resolved_at 	 timestamp with time zone NOT NULL,
			resolved_by 	 TEXT 	 NOT NULL DEFAULT 'system',
			resolution_type  TEXT 	 NOT NULL DEFAULT 'auto',
			duration_minutes BIGINT  NOT NULL DEFAULT 0,
			uuid_open 		 TEXT 	 NULL,
			uuid_closed 	 TEXT 	 NULL,
			CONSTRAINT pkey_alert_history PRIMARY KEY (alert_id)
		);

		CREATE TABLE IF NOT EXISTS maintenance_entries (
			entry_id 	TEXT NOT NULL,
			type 		TEXT NOT NULL,
			rack_id 	TEXT NULL,
			chain 		TEXT NULL,
			dc 			TEXT NULL,
			site 		TEXT NULL,
			reason 		TEXT NULL,
			started_by 	TEXT NOT NULL,
			started_at 	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_maintenance_entries PRIMARY KEY (entry_id)
		);

		CREATE TABLE IF NOT EXISTS maintenance_rack_details (
			entry_id 	TEXT NOT NULL,
			rack_id 	TEXT NOT NULL,
			pdu_id 		TEXT NULL,
			added_at 	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_maintenance_rack_details PRIMARY KEY (entry_id, rack_id)
		);

		CREATE TABLE IF NOT EXISTS maintenance_history (
			entry_id 		 TEXT 	NOT NULL,
			rack_id 		 TEXT 	NOT NULL,
			type 			 TEXT 	NOT NULL,
			chain 			 TEXT 	NULL,
			dc 				 TEXT 	NULL,
			site 			 TEXT 	NULL,
			reason 			 TEXT 	NULL,
			started_by 		 TEXT 	NOT NULL,
			ended_by 		 TEXT 	NOT NULL,
			started_at 		 timestamp with time zone NOT NULL,
			ended_at 		 timestamp with time zone NOT NULL,
			duration_minutes BIGINT NOT NULL DEFAULT 0,
			CONSTRAINT pkey_maintenance_history PRIMARY KEY (entry_id, rack_id)
		);

		CREATE TABLE IF NOT EXISTS correlation_outbox (
			alert_id 		TEXT NOT NULL,
			kind 			TEXT NOT NULL,
			pdu_id 			TEXT NOT NULL,
			metric_type 	TEXT NOT NULL,
			alert_reason 	TEXT NOT NULL,
			rack_id 		TEXT NOT NULL,
			attempts 		INT  NOT NULL DEFAULT 0,
			next_attempt_at timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			created_on 		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_correlation_outbox PRIMARY KEY (alert_id, kind)
		);

		CREATE INDEX IF NOT EXISTS active_alerts_rack_idx ON active_alerts (rack_id);
		CREATE INDEX IF NOT EXISTS alert_history_resolved_idx ON alert_history (resolved_at);
		CREATE INDEX IF NOT EXISTS maintenance_rack_details_rack_idx ON maintenance_rack_details (rack_id);
		CREATE INDEX IF NOT EXISTS correlation_outbox_due_idx ON correlation_outbox (next_attempt_at);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
